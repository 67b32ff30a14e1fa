package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-infinity/utils"
)

func TestUpdateSettings_MergesIntoSingleton(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	token := loginTestAdmin(t, s)

	before := s.Settings()

	updated, err := s.UpdateSettings(ctx, token, SettingsPatch{
		Phone:   strPtr("+91 99999 00000"),
		TaxRate: floatPtr(12),
	})
	require.NoError(t, err)

	assert.Equal(t, "+91 99999 00000", updated.Phone)
	assert.Equal(t, 12.0, updated.TaxRate)
	assert.Equal(t, before.HotelName, updated.HotelName)
	assert.Equal(t, before.Email, updated.Email)

	// The read view reflects the merge.
	assert.Equal(t, *updated, s.Settings())
}

func TestUpdateSettings_Validates(t *testing.T) {
	s, _ := newTestStore(t)
	token := loginTestAdmin(t, s)

	_, err := s.UpdateSettings(context.Background(), token, SettingsPatch{
		Email: strPtr("not-an-email"),
	})
	require.Error(t, err)
	assert.Equal(t, 400, utils.GetCode(err))

	_, err = s.UpdateSettings(context.Background(), token, SettingsPatch{
		TaxRate: floatPtr(180),
	})
	require.Error(t, err)
	assert.Equal(t, 400, utils.GetCode(err))
}

func TestUpdateSettings_RequiresAuth(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.UpdateSettings(context.Background(), "nope", SettingsPatch{
		Phone: strPtr("123"),
	})
	require.Error(t, err)
	assert.Equal(t, 401, utils.GetCode(err))
}
