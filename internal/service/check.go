package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/rsvp-import/internal/domain"
	"github.com/pkordes/rsvp-import/internal/repo"
)

// CheckService records and lists venue check-ins.
type CheckService struct {
	checks repo.CheckRepo
}

// NewCheckService constructs a CheckService backed by the provided CheckRepo.
func NewCheckService(checks repo.CheckRepo) *CheckService {
	return &CheckService{checks: checks}
}

// Create persists a check-in.
// Returns domain.ErrValidation if UserID is blank.
func (s *CheckService) Create(ctx context.Context, c domain.Check) (domain.Check, error) {
	if strings.TrimSpace(c.UserID) == "" {
		return domain.Check{}, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}
	result, err := s.checks.Create(ctx, c)
	if err != nil {
		return domain.Check{}, fmt.Errorf("service.CheckService.Create: %w", err)
	}
	return result, nil
}

// List returns all check-ins, oldest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CheckService) List(ctx context.Context) ([]domain.Check, error) {
	checks, err := s.checks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CheckService.List: %w", err)
	}
	if checks == nil {
		return []domain.Check{}, nil
	}
	return checks, nil
}
