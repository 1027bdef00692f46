package service

import (
	"context"
	"fmt"

	"github.com/pkordes/rsvp-import/internal/domain"
	"github.com/pkordes/rsvp-import/internal/repo"
)

// GuestService serves read-only views over stored guest records.
type GuestService struct {
	guests repo.GuestRepo
}

// NewGuestService constructs a GuestService backed by the provided GuestRepo.
func NewGuestService(guests repo.GuestRepo) *GuestService {
	return &GuestService{guests: guests}
}

// List returns up to limit records, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *GuestService) List(ctx context.Context, limit int) ([]domain.GuestRecord, error) {
	guests, err := s.guests.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service.GuestService.List: %w", err)
	}
	if guests == nil {
		return []domain.GuestRecord{}, nil
	}
	return guests, nil
}

// Headcount tallies expected attendance over every stored record.
// A record counts only if its attend_status is affirmative; it then stands
// for the invitee plus the companions announced in with_guest.
func (s *GuestService) Headcount(ctx context.Context) (domain.Headcount, error) {
	guests, err := s.guests.ListAll(ctx)
	if err != nil {
		return domain.Headcount{}, fmt.Errorf("service.GuestService.Headcount: %w", err)
	}

	h := domain.Headcount{Responses: len(guests)}
	for _, g := range guests {
		if !domain.IsAttending(g.AttendStatus) {
			continue
		}
		h.Attending++
		h.Total += domain.AttendCount(g.WithGuest)
	}
	return h, nil
}
