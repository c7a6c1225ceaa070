package repo

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"voucher-management/internal/core/cache"
	"voucher-management/internal/core/database"
	"voucher-management/internal/domain"
	"voucher-management/internal/feature/customer"
	"voucher-management/internal/feature/voucher"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverGorm   = "gorm"
	DriverRedis  = "redis"
)

type Options struct {
	Driver       string
	CustomerPath string
	VoucherPath  string

	DB          database.Opts
	AutoMigrate bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Repositories is the pair of repositories backed by one driver.
type Repositories struct {
	Customers domain.CustomerRepository
	Vouchers  domain.VoucherRepository

	ping  func(context.Context) error
	close func() error
}

// Ping reports whether the backing store is reachable.
func (r *Repositories) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}

func (r *Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

func Open(o Options, l *zap.Logger) (*Repositories, error) {
	if l == nil {
		l = zap.NewNop()
	}
	switch o.Driver {
	case DriverMemory:
		return &Repositories{
			Customers: NewMemoryCustomerRepo(),
			Vouchers:  NewMemoryVoucherRepo(),
		}, nil

	case DriverFile, "":
		customers, err := NewFileCustomerRepo(o.CustomerPath, l)
		if err != nil {
			return nil, fmt.Errorf("load customers: %w", err)
		}
		vouchers, err := NewFileVoucherRepo(o.VoucherPath, l)
		if err != nil {
			return nil, fmt.Errorf("load vouchers: %w", err)
		}
		return &Repositories{Customers: customers, Vouchers: vouchers}, nil

	case DriverGorm:
		db, err := database.NewGorm(o.DB, l)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if o.AutoMigrate {
			if err := db.AutoMigrate(&customer.CustomerModel{}, &voucher.VoucherModel{}); err != nil {
				_ = database.Close(db)
				return nil, fmt.Errorf("automigrate: %w", err)
			}
			l.Info("automigrate done")
		}
		return &Repositories{
			Customers: NewGormCustomerRepo(db),
			Vouchers:  NewGormVoucherRepo(db),
			ping:      func(ctx context.Context) error { return database.Ping(ctx, db) },
			close:     func() error { return database.Close(db) },
		}, nil

	case DriverRedis:
		c := cache.New(o.RedisAddr, o.RedisPassword, o.RedisDB, o.RedisPrefix)
		return &Repositories{
			Customers: NewRedisCustomerRepo(c),
			Vouchers:  NewRedisVoucherRepo(c),
			ping:      c.Ping,
			close:     c.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", o.Driver)
}
