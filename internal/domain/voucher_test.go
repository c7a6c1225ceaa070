package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVoucherVariants(t *testing.T) {
	for _, tag := range []string{"percent", "PERCENT", "Percent"} {
		v, err := NewVoucher("p", 10, tag)
		require.NoError(t, err)
		assert.IsType(t, PercentDiscountVoucher{}, v)
		assert.Equal(t, VoucherTypePercent, v.Type())
	}

	v, err := NewVoucher("f", 10, "fixed")
	require.NoError(t, err)
	assert.IsType(t, FixedAmountVoucher{}, v)
	assert.NotEqual(t, [16]byte{}, [16]byte(v.ID()))
	assert.False(t, v.CreatedAt().IsZero())
}

func TestNewVoucherInvalidType(t *testing.T) {
	v, err := NewVoucher("x", 10, "bogus")
	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrInvalidVoucherType)
}

func TestVoucherDiscount(t *testing.T) {
	fixed, err := NewVoucher("f", 30, "FIXED")
	require.NoError(t, err)
	assert.Equal(t, 70.0, fixed.Discount(100))
	assert.Equal(t, 0.0, fixed.Discount(20))

	pct, err := NewVoucher("p", 25, "PERCENT")
	require.NoError(t, err)
	assert.Equal(t, 75.0, pct.Discount(100))

	all, err := NewVoucher("p", 100, "PERCENT")
	require.NoError(t, err)
	assert.Equal(t, 0.0, all.Discount(100))
}
