package storage

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is the MySQL row backing one collection slot.
type Slot struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"column:value"`
	UpdatedAt int64          `gorm:"autoUpdateTime:milli"`
}

func (Slot) TableName() string {
	return "slots"
}

// GormStore persists slots through the shared gorm connection, one upsert per
// save.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (g *GormStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var slot Slot
	err := g.db.WithContext(ctx).First(&slot, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "load slot %s", key)
	}
	return []byte(slot.Value), true, nil
}

func (g *GormStore) Save(ctx context.Context, key string, value []byte) error {
	slot := Slot{Key: key, Value: datatypes.JSON(value)}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&slot).Error
	return errors.Wrapf(err, "save slot %s", key)
}

func (g *GormStore) Delete(ctx context.Context, key string) error {
	err := g.db.WithContext(ctx).Delete(&Slot{}, "`key` = ?", key).Error
	return errors.Wrapf(err, "delete slot %s", key)
}
