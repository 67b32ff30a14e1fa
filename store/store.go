// Package store owns every domain collection and is the only writer of the
// persisted slots. All invariants live here: cascade rules, review approval,
// booking/payment correlation, input validation and the admin session check.
// HTTP handlers are thin callers.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"hotel-infinity/models"
	"hotel-infinity/payment"
	"hotel-infinity/storage"
	"hotel-infinity/utils"
)

// Config carries the fixed admin identity. There is exactly one admin
// account; no registration path creates more.
type Config struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

type Store struct {
	mu       sync.Mutex
	slots    storage.SlotStore
	gateway  payment.Gateway
	validate *validator.Validate

	adminEmail string
	adminHash  []byte
	adminName  string

	rooms    []models.Room
	halls    []models.PartyHall
	reviews  []models.Review
	bookings []models.Booking
	payments []models.Payment
	settings models.HotelSettings
	session  *models.Session

	now   func() time.Time
	newID func() string
}

// New builds the store from the persisted slots, seeding the built-in sample
// data for slots that have never been written. The load is strict: a slot
// that exists but cannot be decoded aborts startup rather than silently
// dropping data.
func New(ctx context.Context, slots storage.SlotStore, gateway payment.Gateway, cfg Config) (*Store, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash admin password")
	}

	s := &Store{
		slots:      slots,
		gateway:    gateway,
		validate:   validator.New(),
		adminEmail: normalizeEmail(cfg.AdminEmail),
		adminHash:  hash,
		adminName:  cfg.AdminName,
		now:        time.Now,
		newID:      uuid.NewString,
	}

	if s.rooms, err = loadSlot(ctx, slots, storage.SlotRooms, models.SeedRooms()); err != nil {
		return nil, err
	}
	if s.halls, err = loadSlot(ctx, slots, storage.SlotHalls, models.SeedHalls()); err != nil {
		return nil, err
	}
	if s.reviews, err = loadSlot(ctx, slots, storage.SlotReviews, models.SeedReviews()); err != nil {
		return nil, err
	}
	if s.bookings, err = loadSlot(ctx, slots, storage.SlotBookings, []models.Booking{}); err != nil {
		return nil, err
	}
	if s.payments, err = loadSlot(ctx, slots, storage.SlotPayments, []models.Payment{}); err != nil {
		return nil, err
	}
	if s.settings, err = loadSlot(ctx, slots, storage.SlotSettings, models.DefaultSettings()); err != nil {
		return nil, err
	}
	if err = s.loadSession(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// loadSlot reads one collection, writing the seed back on first run so a
// restart sees the same data it served.
func loadSlot[T any](ctx context.Context, slots storage.SlotStore, key string, seed T) (T, error) {
	raw, ok, err := slots.Load(ctx, key)
	if err != nil {
		return seed, err
	}
	if !ok {
		encoded, err := storage.EncodeSlot(seed)
		if err != nil {
			return seed, err
		}
		if err := slots.Save(ctx, key, encoded); err != nil {
			return seed, err
		}
		return seed, nil
	}

	var value T
	if err := storage.DecodeSlot(raw, &value); err != nil {
		return seed, err
	}
	return value, nil
}

func (s *Store) loadSession(ctx context.Context) error {
	raw, ok, err := s.slots.Load(ctx, storage.SlotSession)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	var sess models.Session
	if err := storage.DecodeSlot(raw, &sess); err != nil {
		return err
	}
	if sess.Token != "" {
		s.session = &sess
	}
	return nil
}

// persistSlot flushes one collection. Mutations call it after applying the
// change in memory; on failure the in-memory state stays authoritative and
// the error is surfaced to the caller.
func (s *Store) persistSlot(ctx context.Context, key string, v interface{}) error {
	raw, err := storage.EncodeSlot(v)
	if err != nil {
		return err
	}
	if err := s.slots.Save(ctx, key, raw); err != nil {
		log.Error().Err(err).Str("slot", key).Msg("slot write failed; in-memory state retained")
		return errors.Wrapf(err, "persist %s", key)
	}
	return nil
}

func (s *Store) persistRooms(ctx context.Context) error {
	return s.persistSlot(ctx, storage.SlotRooms, s.rooms)
}

func (s *Store) persistHalls(ctx context.Context) error {
	return s.persistSlot(ctx, storage.SlotHalls, s.halls)
}

func (s *Store) persistReviews(ctx context.Context) error {
	return s.persistSlot(ctx, storage.SlotReviews, s.reviews)
}

func (s *Store) persistBookings(ctx context.Context) error {
	return s.persistSlot(ctx, storage.SlotBookings, s.bookings)
}

func (s *Store) persistPayments(ctx context.Context) error {
	return s.persistSlot(ctx, storage.SlotPayments, s.payments)
}

func (s *Store) persistSettings(ctx context.Context) error {
	return s.persistSlot(ctx, storage.SlotSettings, s.settings)
}

// validateInput runs the store-boundary validation and converts violations
// into a 400-coded failure.
func (s *Store) validateInput(v interface{}) error {
	if err := s.validate.Struct(v); err != nil {
		return utils.BadRequestErr(err)
	}
	return nil
}
