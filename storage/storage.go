// Package storage is the persistence boundary: each domain collection is
// written as one JSON document to a named slot, fully overwriting the prior
// value. Backends only move bytes; serialization and seeding belong to the
// store.
package storage

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

// Slot names. One slot per collection plus the singleton settings and the
// current admin session.
const (
	SlotRooms    = "rooms"
	SlotHalls    = "halls"
	SlotReviews  = "reviews"
	SlotBookings = "bookings"
	SlotPayments = "payments"
	SlotSettings = "settings"
	SlotSession  = "current-session"
)

// SchemaVersion is embedded in every envelope so a future layout change can
// migrate old slots instead of misreading them.
const SchemaVersion = 1

type SlotStore interface {
	// Load returns the raw envelope for key. The bool reports whether the
	// slot has ever been written; a missing slot is not an error.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save fully overwrites the slot value.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes the slot entirely.
	Delete(ctx context.Context, key string) error
}

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// EncodeSlot wraps v in a versioned envelope and marshals it.
func EncodeSlot(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode slot data")
	}
	raw, err := json.Marshal(envelope{Version: SchemaVersion, Data: data})
	if err != nil {
		return nil, errors.Wrap(err, "encode slot envelope")
	}
	return raw, nil
}

// DecodeSlot unwraps an envelope produced by EncodeSlot into v.
func DecodeSlot(raw []byte, v interface{}) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Wrap(err, "decode slot envelope")
	}
	if env.Version != SchemaVersion {
		return errors.Errorf("unsupported slot schema version %d", env.Version)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return errors.Wrap(err, "decode slot data")
	}
	return nil
}
