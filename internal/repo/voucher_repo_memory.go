package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"voucher-management/internal/domain"
)

type MemoryVoucherRepo struct {
	index *Index[domain.Voucher]
}

func NewMemoryVoucherRepo() *MemoryVoucherRepo {
	return &MemoryVoucherRepo{index: NewIndex[domain.Voucher]()}
}

func (r *MemoryVoucherRepo) FindAll(_ context.Context) ([]domain.Voucher, error) {
	return r.index.Values(), nil
}

func (r *MemoryVoucherRepo) FindByID(_ context.Context, id uuid.UUID) (domain.Voucher, bool, error) {
	v, ok := r.index.Get(id)
	return v, ok, nil
}

func (r *MemoryVoucherRepo) Save(_ context.Context, v domain.Voucher) (domain.Voucher, error) {
	if err := r.index.Insert(v.ID(), v); err != nil {
		return nil, fmt.Errorf("save voucher %s: %w", v.ID(), err)
	}
	return v, nil
}

var _ domain.VoucherRepository = (*MemoryVoucherRepo)(nil)
