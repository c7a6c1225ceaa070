package repo

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"voucher-management/internal/core/cache"
	"voucher-management/internal/domain"
)

type RedisVoucherRepo struct {
	h *hashStore[domain.Voucher]
}

func NewRedisVoucherRepo(c *cache.Cache) *RedisVoucherRepo {
	return &RedisVoucherRepo{h: &hashStore[domain.Voucher]{
		c:      c,
		key:    c.Key("vouchers"),
		encode: domain.VoucherRecord,
		decode: domain.VoucherFromRecord,
	}}
}

func (r *RedisVoucherRepo) FindAll(ctx context.Context) ([]domain.Voucher, error) {
	all, err := r.h.all(ctx)
	if err != nil {
		return nil, err
	}
	sortByCreated(all)
	return all, nil
}

// sortByCreated orders vouchers oldest first; vouchers without a creation
// time come first and keep their relative order.
func sortByCreated(vs []domain.Voucher) {
	sort.SliceStable(vs, func(i, j int) bool { return vs[i].CreatedAt().Before(vs[j].CreatedAt()) })
}

func (r *RedisVoucherRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Voucher, bool, error) {
	return r.h.get(ctx, id.String())
}

func (r *RedisVoucherRepo) Save(ctx context.Context, v domain.Voucher) (domain.Voucher, error) {
	if err := r.h.insert(ctx, v.ID().String(), v); err != nil {
		return nil, fmt.Errorf("save voucher %s: %w", v.ID(), err)
	}
	return v, nil
}

var _ domain.VoucherRepository = (*RedisVoucherRepo)(nil)
