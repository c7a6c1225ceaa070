package voucher

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"voucher-management/internal/domain"
)

type VoucherModel struct {
	ID             string     `gorm:"primaryKey;type:varchar(36)"`
	Name           string     `gorm:"size:255;not null"`
	DiscountAmount float64    `gorm:"not null"`
	Type           string     `gorm:"size:16;not null"`
	CreatedAt      *time.Time `gorm:"autoCreateTime:false"`
}

func (VoucherModel) TableName() string { return "vouchers" }

func FromDomain(v domain.Voucher) VoucherModel {
	m := VoucherModel{
		ID:             v.ID().String(),
		Name:           v.Name(),
		DiscountAmount: v.DiscountAmount(),
		Type:           v.Type().String(),
	}
	if ts := v.CreatedAt(); !ts.IsZero() {
		m.CreatedAt = &ts
	}
	return m
}

func (m VoucherModel) ToDomain() (domain.Voucher, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: voucher id %q: %v", domain.ErrMalformedRecord, m.ID, err)
	}
	var createdAt time.Time
	if m.CreatedAt != nil {
		createdAt = m.CreatedAt.Local()
	}
	v, err := domain.RestoreVoucher(id, m.Name, m.DiscountAmount, createdAt, m.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedRecord, err)
	}
	return v, nil
}
