// Package statestore persists snapshots of built state property maps.
package statestore

import (
	"context"
	"time"

	"git.home.luguber.info/inful/sansstate/internal/typed"
)

// Snapshot is a stored property map of one built state.
type Snapshot struct {
	ID         string
	Model      string
	Instrument string
	Run        string
	CreatedAt  time.Time
	Properties typed.PropertyMap
}

// Filter narrows List results. Zero fields match everything.
type Filter struct {
	Model      string
	Instrument string
	Limit      int
}

// Store defines the interface for persisting and retrieving snapshots.
type Store interface {
	// Save stores s under a new ID and returns it. s.ID and s.CreatedAt are
	// assigned by the store.
	Save(ctx context.Context, s Snapshot) (string, error)

	// Get retrieves one snapshot by ID.
	Get(ctx context.Context, id string) (Snapshot, error)

	// List returns snapshots newest first.
	List(ctx context.Context, f Filter) ([]Snapshot, error)

	// Close closes the store and releases resources.
	Close() error
}
