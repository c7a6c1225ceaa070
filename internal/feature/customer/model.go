package customer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"voucher-management/internal/domain"
)

type CustomerModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Name      string    `gorm:"size:255;not null;index"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	Banned    bool      `gorm:"not null;default:false;index"`
}

func (CustomerModel) TableName() string { return "customers" }

func FromDomain(c domain.Customer) CustomerModel {
	return CustomerModel{
		ID:        c.ID.String(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		Banned:    c.Banned,
	}
}

func (m CustomerModel) ToDomain() (domain.Customer, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("%w: customer id %q: %v", domain.ErrMalformedRecord, m.ID, err)
	}
	return domain.RestoreCustomer(id, m.Name, m.CreatedAt.Local(), m.Banned), nil
}
