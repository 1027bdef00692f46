package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/rsvp-import/internal/domain"
)

// CheckRepo defines the persistence operations for venue check-ins.
type CheckRepo interface {
	// Create inserts a check-in and returns it with id and created_at set.
	Create(ctx context.Context, c domain.Check) (domain.Check, error)

	// List returns all check-ins, oldest first.
	List(ctx context.Context) ([]domain.Check, error)
}

// pgCheckRepo is the Postgres implementation of CheckRepo.
type pgCheckRepo struct {
	db db
}

// NewCheckRepo constructs a CheckRepo backed by the provided db connection.
func NewCheckRepo(db db) CheckRepo {
	return &pgCheckRepo{db: db}
}

func (r *pgCheckRepo) Create(ctx context.Context, c domain.Check) (domain.Check, error) {
	const q = `
		INSERT INTO checks (user_id, name, number)
		VALUES (@user_id, @name, @number)
		RETURNING id, user_id, name, number, created_at`

	args := pgx.NamedArgs{"user_id": c.UserID, "name": c.Name, "number": c.Number}
	result, err := scanCheck(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Check{}, fmt.Errorf("repo.CheckRepo.Create: %w", classify(err))
	}
	return result, nil
}

func (r *pgCheckRepo) List(ctx context.Context) ([]domain.Check, error) {
	const q = `
		SELECT id, user_id, name, number, created_at
		FROM checks
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CheckRepo.List: %w", classify(err))
	}
	defer rows.Close()

	checks := []domain.Check{}
	for rows.Next() {
		c, err := scanCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CheckRepo.List: scan: %w", classify(err))
		}
		checks = append(checks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CheckRepo.List: rows: %w", classify(err))
	}
	return checks, nil
}

func scanCheck(s scanner) (domain.Check, error) {
	var (
		c  domain.Check
		id pgtype.UUID
	)
	if err := s.Scan(&id, &c.UserID, &c.Name, &c.Number, &c.CreatedAt); err != nil {
		return domain.Check{}, err
	}
	c.ID = uuid.UUID(id.Bytes)
	return c, nil
}
