package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/pkordes/rsvp-import/internal/domain"
)

func TestClassify(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", Message: "null value in column"}

	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{name: "nil", err: nil},
		{name: "server rejected statement", err: fmt.Errorf("insert: %w", pgErr)},
		{name: "no rows", err: pgx.ErrNoRows},
		{name: "duplicate", err: domain.ErrDuplicate},
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), unavailable: true},
		{name: "context canceled", err: context.Canceled, unavailable: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.err)
			if tc.err == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.err, "wrapped error must stay reachable")
			assert.Equal(t, tc.unavailable, errors.Is(got, domain.ErrUnavailable))
		})
	}
}
