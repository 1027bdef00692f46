package service

import (
	"context"
	"fmt"

	"github.com/pkordes/rsvp-import/internal/repo"
)

// Deduplicator answers whether a guest record was already ingested.
//
// The check is a fast path only. Two uploads racing on the same hash can both
// see false here; GuestRepo.Insert settles that case through the unique index.
type Deduplicator struct {
	guests repo.GuestRepo
}

// NewDeduplicator constructs a Deduplicator backed by the provided GuestRepo.
func NewDeduplicator(guests repo.GuestRepo) *Deduplicator {
	return &Deduplicator{guests: guests}
}

// IsDuplicate reports whether a record with this hash is stored.
// An empty hash carries no identity and is never a duplicate; no query is made.
func (d *Deduplicator) IsDuplicate(ctx context.Context, hash string) (bool, error) {
	if hash == "" {
		return false, nil
	}
	exists, err := d.guests.ExistsByHash(ctx, hash)
	if err != nil {
		return false, fmt.Errorf("service.Deduplicator.IsDuplicate: %w", err)
	}
	return exists, nil
}
