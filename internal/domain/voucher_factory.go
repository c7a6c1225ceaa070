package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewVoucher creates a voucher of the variant named by typ with a fresh id
// and creation time.
func NewVoucher(name string, amount float64, typ string) (Voucher, error) {
	return RestoreVoucher(uuid.New(), name, amount, Now(), typ)
}

// RestoreVoucher rebuilds a persisted voucher, keeping its id and creation time.
// A zero createdAt means the record never carried one.
func RestoreVoucher(id uuid.UUID, name string, amount float64, createdAt time.Time, typ string) (Voucher, error) {
	t, err := ParseVoucherType(typ)
	if err != nil {
		return nil, err
	}
	base := voucherBase{id: id, name: name, amount: amount, createdAt: createdAt}
	switch t {
	case VoucherTypePercent:
		return PercentDiscountVoucher{base}, nil
	default:
		return FixedAmountVoucher{base}, nil
	}
}
