package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rsvp-import/internal/domain"
)

func TestDefaultHeaderMapping_CoversEveryField(t *testing.T) {
	m := domain.DefaultHeaderMapping()

	assert.Len(t, m, 18)
	assert.Len(t, domain.Fields, 18)
	require.NoError(t, m.Validate())
	assert.Equal(t, "請問您的大名：", m[domain.FieldName])
	assert.Equal(t, "Hash", m[domain.FieldHash])
}

func TestHeaderMapping_Merge(t *testing.T) {
	base := domain.DefaultHeaderMapping()

	merged := base.Merge(domain.HeaderMapping{domain.FieldName: "Full name"})

	assert.Equal(t, "Full name", merged[domain.FieldName])
	assert.Equal(t, base[domain.FieldHash], merged[domain.FieldHash])
	assert.Equal(t, "請問您的大名：", base[domain.FieldName], "receiver is not modified")
}

func TestHeaderMapping_Validate(t *testing.T) {
	tests := []struct {
		name     string
		override domain.HeaderMapping
		drop     domain.Field
	}{
		{name: "unknown field", override: domain.HeaderMapping{"nickname": "Nick"}},
		{name: "blank label", override: domain.HeaderMapping{domain.FieldEmail: "   "}},
		{name: "duplicate label", override: domain.HeaderMapping{domain.FieldEmail: "Hash"}},
		{name: "missing field", drop: domain.FieldPhone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := domain.DefaultHeaderMapping().Merge(tc.override)
			if tc.drop != "" {
				delete(m, tc.drop)
			}

			err := m.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
