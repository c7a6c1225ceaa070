package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voucher-management/internal/domain"
	"voucher-management/internal/feature/voucher"
)

type GormVoucherRepo struct{ db *gorm.DB }

func NewGormVoucherRepo(db *gorm.DB) *GormVoucherRepo { return &GormVoucherRepo{db: db} }

func (r *GormVoucherRepo) FindAll(ctx context.Context) ([]domain.Voucher, error) {
	var ms []voucher.VoucherModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&ms).Error; err != nil {
		return nil, persistErr("list vouchers", err)
	}
	out := make([]domain.Voucher, 0, len(ms))
	for _, m := range ms {
		v, err := m.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *GormVoucherRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Voucher, bool, error) {
	var m voucher.VoucherModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, persistErr("find voucher", err)
	}
	v, err := m.ToDomain()
	return v, err == nil, err
}

func (r *GormVoucherRepo) Save(ctx context.Context, v domain.Voucher) (domain.Voucher, error) {
	m := voucher.FromDomain(v)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDupKey(err) {
			return nil, fmt.Errorf("save voucher %s: %w", v.ID(), domain.ErrDuplicateKey)
		}
		return nil, persistErr("save voucher", err)
	}
	return v, nil
}

var _ domain.VoucherRepository = (*GormVoucherRepo)(nil)
