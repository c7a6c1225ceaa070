package domain

import "errors"

var (
	ErrDuplicateKey       = errors.New("entity already exists")
	ErrNotFound           = errors.New("entity not found")
	ErrInvalidVoucherType = errors.New("invalid voucher type")
	ErrMalformedRecord    = errors.New("malformed record")
	ErrPersistence        = errors.New("persistence failure")
)
