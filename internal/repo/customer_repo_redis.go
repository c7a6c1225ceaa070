package repo

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"voucher-management/internal/core/cache"
	"voucher-management/internal/domain"
)

type RedisCustomerRepo struct {
	h *hashStore[domain.Customer]
}

func NewRedisCustomerRepo(c *cache.Cache) *RedisCustomerRepo {
	return &RedisCustomerRepo{h: &hashStore[domain.Customer]{
		c:      c,
		key:    c.Key("customers"),
		encode: domain.Customer.Record,
		decode: domain.CustomerFromRecord,
	}}
}

func (r *RedisCustomerRepo) FindAll(ctx context.Context) ([]domain.Customer, error) {
	return r.filter(ctx, nil)
}

func (r *RedisCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Customer, bool, error) {
	return r.h.get(ctx, id.String())
}

func (r *RedisCustomerRepo) FindByName(ctx context.Context, name string) ([]domain.Customer, error) {
	return r.filter(ctx, func(c domain.Customer) bool { return c.Name == name })
}

func (r *RedisCustomerRepo) FindBannedCustomers(ctx context.Context) ([]domain.Customer, error) {
	return r.filter(ctx, func(c domain.Customer) bool { return c.Banned })
}

func (r *RedisCustomerRepo) Save(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if err := r.h.insert(ctx, c.ID.String(), c); err != nil {
		return domain.Customer{}, fmt.Errorf("save customer %s: %w", c.ID, err)
	}
	return c, nil
}

func (r *RedisCustomerRepo) Update(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if err := r.h.replace(ctx, c.ID.String(), c); err != nil {
		return domain.Customer{}, fmt.Errorf("update customer %s: %w", c.ID, err)
	}
	return c, nil
}

func (r *RedisCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.h.remove(ctx, id.String()); err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	return nil
}

func (r *RedisCustomerRepo) filter(ctx context.Context, keep func(domain.Customer) bool) ([]domain.Customer, error) {
	all, err := r.h.all(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, c := range all {
		if keep == nil || keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

var _ domain.CustomerRepository = (*RedisCustomerRepo)(nil)
