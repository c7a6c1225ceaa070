package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type VoucherType string

const (
	VoucherTypeFixed   VoucherType = "FIXED"
	VoucherTypePercent VoucherType = "PERCENT"
)

// ParseVoucherType is case-insensitive on the tag.
func ParseVoucherType(s string) (VoucherType, error) {
	switch t := VoucherType(strings.ToUpper(strings.TrimSpace(s))); t {
	case VoucherTypeFixed, VoucherTypePercent:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidVoucherType, s)
	}
}

func (t VoucherType) String() string { return string(t) }

// Voucher is implemented by one type per discount policy.
type Voucher interface {
	ID() uuid.UUID
	Name() string
	DiscountAmount() float64
	CreatedAt() time.Time
	Type() VoucherType
	// Discount returns the price left after the voucher is applied.
	Discount(price float64) float64
}

type VoucherRepository interface {
	FindAll(ctx context.Context) ([]Voucher, error)
	FindByID(ctx context.Context, id uuid.UUID) (Voucher, bool, error)
	Save(ctx context.Context, v Voucher) (Voucher, error)
}

type voucherBase struct {
	id        uuid.UUID
	name      string
	amount    float64
	createdAt time.Time
}

func (b voucherBase) ID() uuid.UUID           { return b.id }
func (b voucherBase) Name() string            { return b.name }
func (b voucherBase) DiscountAmount() float64 { return b.amount }
func (b voucherBase) CreatedAt() time.Time    { return b.createdAt }

// FixedAmountVoucher takes an absolute amount off the price.
type FixedAmountVoucher struct{ voucherBase }

func (FixedAmountVoucher) Type() VoucherType { return VoucherTypeFixed }

func (v FixedAmountVoucher) Discount(price float64) float64 {
	if price <= v.amount {
		return 0
	}
	return price - v.amount
}

// PercentDiscountVoucher takes amount percent off the price.
type PercentDiscountVoucher struct{ voucherBase }

func (PercentDiscountVoucher) Type() VoucherType { return VoucherTypePercent }

func (v PercentDiscountVoucher) Discount(price float64) float64 {
	if v.amount >= 100 {
		return 0
	}
	return price * (100 - v.amount) / 100
}
