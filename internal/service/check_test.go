package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rsvp-import/internal/domain"
	"github.com/pkordes/rsvp-import/internal/service"
)

func TestCheckService_Create_OK(t *testing.T) {
	svc := service.NewCheckService(&mockCheckRepo{
		create: func(_ context.Context, c domain.Check) (domain.Check, error) {
			c.ID = uuid.New()
			return c, nil
		},
	})

	got, err := svc.Create(context.Background(), domain.Check{UserID: "u-1", Name: "Amy", Number: "2"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "u-1", got.UserID)
}

func TestCheckService_Create_MissingUserID(t *testing.T) {
	svc := service.NewCheckService(&mockCheckRepo{
		create: func(_ context.Context, _ domain.Check) (domain.Check, error) {
			t.Fatal("repo must not be called for invalid input")
			return domain.Check{}, nil
		},
	})

	_, err := svc.Create(context.Background(), domain.Check{UserID: "  "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCheckService_List_NilBecomesEmpty(t *testing.T) {
	svc := service.NewCheckService(&mockCheckRepo{
		list: func(_ context.Context) ([]domain.Check, error) { return nil, nil },
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
