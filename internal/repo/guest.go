package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/rsvp-import/internal/domain"
)

// GuestRepo defines the persistence operations for guest records.
// Records are append-only: there is no update or delete.
type GuestRepo interface {
	// ExistsByHash reports whether a record with exactly this hash is stored.
	ExistsByHash(ctx context.Context, hash string) (bool, error)

	// Insert stores a new record and returns it with id and created_at set.
	// A non-empty hash that is already stored yields domain.ErrDuplicate;
	// the unique index decides, so concurrent inserts cannot both succeed.
	// Records with an empty hash are always inserted.
	Insert(ctx context.Context, g domain.GuestRecord) (domain.GuestRecord, error)

	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]domain.GuestRecord, error)

	// ListAll returns every stored record, oldest first.
	ListAll(ctx context.Context) ([]domain.GuestRecord, error)
}

// pgGuestRepo is the Postgres implementation of GuestRepo.
type pgGuestRepo struct {
	db db
}

// NewGuestRepo constructs a GuestRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewGuestRepo(db db) GuestRepo {
	return &pgGuestRepo{db: db}
}

const guestColumns = `id, name, relation, attend_status, with_guest,
	need_child_seat, need_vegetarian, need_invitation, email, address,
	phone, message, answer_time, answer_seconds, ip, full_flag,
	user_record, member_time, hash, created_at`

func (r *pgGuestRepo) ExistsByHash(ctx context.Context, hash string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM guests WHERE hash = @hash)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"hash": hash}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.GuestRepo.ExistsByHash: %w", classify(err))
	}
	return exists, nil
}

// Insert relies on ON CONFLICT … DO NOTHING: when the hash is taken no row
// is returned, which scanGuest reports as pgx.ErrNoRows.
func (r *pgGuestRepo) Insert(ctx context.Context, g domain.GuestRecord) (domain.GuestRecord, error) {
	const q = `
		INSERT INTO guests (
			name, relation, attend_status, with_guest,
			need_child_seat, need_vegetarian, need_invitation, email, address,
			phone, message, answer_time, answer_seconds, ip, full_flag,
			user_record, member_time, hash)
		VALUES (
			@name, @relation, @attend_status, @with_guest,
			@need_child_seat, @need_vegetarian, @need_invitation, @email, @address,
			@phone, @message, @answer_time, @answer_seconds, @ip, @full_flag,
			@user_record, @member_time, @hash)
		ON CONFLICT (hash) WHERE hash <> '' DO NOTHING
		RETURNING ` + guestColumns

	args := pgx.NamedArgs{
		"name":            g.Name,
		"relation":        g.Relation,
		"attend_status":   g.AttendStatus,
		"with_guest":      g.WithGuest,
		"need_child_seat": g.NeedChildSeat,
		"need_vegetarian": g.NeedVegetarian,
		"need_invitation": g.NeedInvitation,
		"email":           g.Email,
		"address":         g.Address,
		"phone":           g.Phone,
		"message":         g.Message,
		"answer_time":     g.AnswerTime,
		"answer_seconds":  g.AnswerSeconds,
		"ip":              g.IP,
		"full_flag":       g.FullFlag,
		"user_record":     g.UserRecord,
		"member_time":     g.MemberTime,
		"hash":            g.Hash,
	}

	result, err := scanGuest(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.GuestRecord{}, fmt.Errorf("repo.GuestRepo.Insert: %w", domain.ErrDuplicate)
		}
		return domain.GuestRecord{}, fmt.Errorf("repo.GuestRepo.Insert: %w", classify(err))
	}
	return result, nil
}

func (r *pgGuestRepo) List(ctx context.Context, limit int) ([]domain.GuestRecord, error) {
	q := `SELECT ` + guestColumns + `
		FROM guests
		ORDER BY created_at DESC, id
		LIMIT @limit`

	guests, err := r.query(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.GuestRepo.List: %w", err)
	}
	return guests, nil
}

func (r *pgGuestRepo) ListAll(ctx context.Context) ([]domain.GuestRecord, error) {
	q := `SELECT ` + guestColumns + `
		FROM guests
		ORDER BY created_at, id`

	guests, err := r.query(ctx, q, pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("repo.GuestRepo.ListAll: %w", err)
	}
	return guests, nil
}

// query runs a multi-row SELECT over guestColumns.
// Always returns a non-nil slice on success.
func (r *pgGuestRepo) query(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.GuestRecord, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	guests := []domain.GuestRecord{}
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", classify(err))
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", classify(err))
	}
	return guests, nil
}

// scanGuest maps a single database row into a domain.GuestRecord.
func scanGuest(s scanner) (domain.GuestRecord, error) {
	var (
		g  domain.GuestRecord
		id pgtype.UUID
	)
	err := s.Scan(&id, &g.Name, &g.Relation, &g.AttendStatus, &g.WithGuest,
		&g.NeedChildSeat, &g.NeedVegetarian, &g.NeedInvitation, &g.Email, &g.Address,
		&g.Phone, &g.Message, &g.AnswerTime, &g.AnswerSeconds, &g.IP, &g.FullFlag,
		&g.UserRecord, &g.MemberTime, &g.Hash, &g.CreatedAt)
	if err != nil {
		return domain.GuestRecord{}, err
	}
	g.ID = uuid.UUID(id.Bytes)
	return g, nil
}
