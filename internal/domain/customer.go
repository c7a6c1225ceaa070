package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Banned    bool      `json:"banned"`
}

// NewCustomer builds a customer with a fresh id and creation time.
func NewCustomer(name string) Customer {
	return Customer{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: Now(),
	}
}

// RestoreCustomer rebuilds a customer from persisted fields.
func RestoreCustomer(id uuid.UUID, name string, createdAt time.Time, banned bool) Customer {
	return Customer{ID: id, Name: name, CreatedAt: createdAt, Banned: banned}
}

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (Customer, bool, error)
	FindByName(ctx context.Context, name string) ([]Customer, error)
	FindBannedCustomers(ctx context.Context) ([]Customer, error)
	Save(ctx context.Context, c Customer) (Customer, error)
	Update(ctx context.Context, c Customer) (Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
