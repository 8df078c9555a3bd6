//go:build unit

package pgconv_test

import (
	"testing"

	"royalbike/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, raw := range []string{"0", "0.01", "899.99", "1000.00", "-42.50", "9999999.99"} {
		d := decimal.RequireFromString(raw)

		n := pgconv.DecimalToNumeric(d)
		require.True(t, n.Valid)

		back, err := pgconv.DecimalFromNumeric(n)
		require.NoError(t, err)
		assert.True(t, d.Equal(back), "round trip of %s gave %s", raw, back)
	}
}

func TestDecimalFromInvalidNumeric(t *testing.T) {
	t.Run("null value", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
	})

	t.Run("NaN", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
	})
}

func TestDecimalPtrFromNumeric(t *testing.T) {
	t.Run("null maps to nil without error", func(t *testing.T) {
		ptr, err := pgconv.DecimalPtrFromNumeric(pgtype.Numeric{})
		require.NoError(t, err)
		assert.Nil(t, ptr)
	})

	t.Run("present value maps to pointer", func(t *testing.T) {
		n := pgconv.DecimalToNumeric(decimal.RequireFromString("8.50"))
		ptr, err := pgconv.DecimalPtrFromNumeric(n)
		require.NoError(t, err)
		require.NotNil(t, ptr)
		assert.Equal(t, "8.50", ptr.StringFixed(2))
	})
}
