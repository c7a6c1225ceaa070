package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voucher-management/internal/domain"
	"voucher-management/internal/feature/customer"
)

type GormCustomerRepo struct{ db *gorm.DB }

func NewGormCustomerRepo(db *gorm.DB) *GormCustomerRepo { return &GormCustomerRepo{db: db} }

func (r *GormCustomerRepo) FindAll(ctx context.Context) ([]domain.Customer, error) {
	return r.find(ctx, r.db.WithContext(ctx))
}

func (r *GormCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Customer, bool, error) {
	var m customer.CustomerModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Customer{}, false, nil
	}
	if err != nil {
		return domain.Customer{}, false, persistErr("find customer", err)
	}
	c, err := m.ToDomain()
	return c, err == nil, err
}

func (r *GormCustomerRepo) FindByName(ctx context.Context, name string) ([]domain.Customer, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("name = ?", name))
}

func (r *GormCustomerRepo) FindBannedCustomers(ctx context.Context) ([]domain.Customer, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("banned = ?", true))
}

func (r *GormCustomerRepo) Save(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	m := customer.FromDomain(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDupKey(err) {
			return domain.Customer{}, fmt.Errorf("save customer %s: %w", c.ID, domain.ErrDuplicateKey)
		}
		return domain.Customer{}, persistErr("save customer", err)
	}
	return c, nil
}

func (r *GormCustomerRepo) Update(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	m := customer.FromDomain(c)
	res := r.db.WithContext(ctx).Model(&customer.CustomerModel{}).Where("id = ?", m.ID).
		Updates(map[string]any{"name": m.Name, "created_at": m.CreatedAt, "banned": m.Banned})
	if res.Error != nil {
		return domain.Customer{}, persistErr("update customer", res.Error)
	}
	if res.RowsAffected == 0 {
		// MySQL reports zero affected rows when nothing changed
		ok, err := r.exists(ctx, m.ID)
		if err != nil {
			return domain.Customer{}, err
		}
		if !ok {
			return domain.Customer{}, fmt.Errorf("update customer %s: %w", c.ID, domain.ErrNotFound)
		}
	}
	return c, nil
}

func (r *GormCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&customer.CustomerModel{}, "id = ?", id.String())
	if res.Error != nil {
		return persistErr("delete customer", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete customer %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *GormCustomerRepo) find(ctx context.Context, tx *gorm.DB) ([]domain.Customer, error) {
	var ms []customer.CustomerModel
	if err := tx.Order("created_at").Find(&ms).Error; err != nil {
		return nil, persistErr("list customers", err)
	}
	out := make([]domain.Customer, 0, len(ms))
	for _, m := range ms {
		c, err := m.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *GormCustomerRepo) exists(ctx context.Context, id string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&customer.CustomerModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, persistErr("count customers", err)
	}
	return n > 0, nil
}

func persistErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
}

func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// not every driver translates, fall back to the message
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}

var _ domain.CustomerRepository = (*GormCustomerRepo)(nil)
