package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"voucher-management/internal/domain"
)

type MemoryCustomerRepo struct {
	index *Index[domain.Customer]
}

func NewMemoryCustomerRepo() *MemoryCustomerRepo {
	return &MemoryCustomerRepo{index: NewIndex[domain.Customer]()}
}

func (r *MemoryCustomerRepo) FindAll(_ context.Context) ([]domain.Customer, error) {
	return r.index.Values(), nil
}

func (r *MemoryCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (domain.Customer, bool, error) {
	c, ok := r.index.Get(id)
	return c, ok, nil
}

func (r *MemoryCustomerRepo) FindByName(_ context.Context, name string) ([]domain.Customer, error) {
	return r.index.Filter(func(c domain.Customer) bool { return c.Name == name }), nil
}

func (r *MemoryCustomerRepo) FindBannedCustomers(_ context.Context) ([]domain.Customer, error) {
	return r.index.Filter(func(c domain.Customer) bool { return c.Banned }), nil
}

func (r *MemoryCustomerRepo) Save(_ context.Context, c domain.Customer) (domain.Customer, error) {
	if err := r.index.Insert(c.ID, c); err != nil {
		return domain.Customer{}, fmt.Errorf("save customer %s: %w", c.ID, err)
	}
	return c, nil
}

func (r *MemoryCustomerRepo) Update(_ context.Context, c domain.Customer) (domain.Customer, error) {
	if _, err := r.index.Replace(c.ID, c); err != nil {
		return domain.Customer{}, fmt.Errorf("update customer %s: %w", c.ID, err)
	}
	return c, nil
}

func (r *MemoryCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, err := r.index.Remove(id); err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	return nil
}

var _ domain.CustomerRepository = (*MemoryCustomerRepo)(nil)
