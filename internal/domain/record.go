package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	timestampLayout       = "2006-01-02T15:04:05.999999999"
	timestampMinuteLayout = "2006-01-02T15:04"
)

// Now is the creation clock for new entities. Values are truncated to
// microseconds so they survive every backing store unchanged.
var Now = func() time.Time { return time.Now().Truncate(time.Microsecond) }

// FormatTimestamp renders a local date-time without zone.
func FormatTimestamp(t time.Time) string { return t.Local().Format(timestampLayout) }

func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(timestampLayout, s, time.Local)
	if err == nil {
		return t, nil
	}
	if t, err2 := time.ParseInLocation(timestampMinuteLayout, s, time.Local); err2 == nil {
		return t, nil
	}
	return time.Time{}, err
}

// Record returns the customer fields in persisted order:
// id, name, createdAt, banned.
func (c Customer) Record() []string {
	return []string{
		c.ID.String(),
		c.Name,
		FormatTimestamp(c.CreatedAt),
		strconv.FormatBool(c.Banned),
	}
}

// CustomerFromRecord is the inverse of Customer.Record.
func CustomerFromRecord(rec []string) (Customer, error) {
	if len(rec) != 4 {
		return Customer{}, fmt.Errorf("%w: customer wants 4 fields, got %d", ErrMalformedRecord, len(rec))
	}
	id, err := uuid.Parse(rec[0])
	if err != nil {
		return Customer{}, fmt.Errorf("%w: customer id: %v", ErrMalformedRecord, err)
	}
	createdAt, err := ParseTimestamp(rec[2])
	if err != nil {
		return Customer{}, fmt.Errorf("%w: customer createdAt: %v", ErrMalformedRecord, err)
	}
	banned, err := parseBool(rec[3])
	if err != nil {
		return Customer{}, fmt.Errorf("%w: customer banned: %v", ErrMalformedRecord, err)
	}
	return RestoreCustomer(id, rec[1], createdAt, banned), nil
}

// VoucherRecord returns the voucher fields in persisted order:
// id, name, discountAmount, type and, when known, createdAt.
func VoucherRecord(v Voucher) []string {
	rec := []string{
		v.ID().String(),
		v.Name(),
		strconv.FormatFloat(v.DiscountAmount(), 'f', -1, 64),
		v.Type().String(),
	}
	if !v.CreatedAt().IsZero() {
		rec = append(rec, FormatTimestamp(v.CreatedAt()))
	}
	return rec
}

// VoucherFromRecord is the inverse of VoucherRecord. Four-field records
// load with a zero creation time.
func VoucherFromRecord(rec []string) (Voucher, error) {
	if len(rec) != 4 && len(rec) != 5 {
		return nil, fmt.Errorf("%w: voucher wants 4 or 5 fields, got %d", ErrMalformedRecord, len(rec))
	}
	id, err := uuid.Parse(rec[0])
	if err != nil {
		return nil, fmt.Errorf("%w: voucher id: %v", ErrMalformedRecord, err)
	}
	amount, err := strconv.ParseFloat(rec[2], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: voucher amount: %v", ErrMalformedRecord, err)
	}
	var createdAt time.Time
	if len(rec) == 5 {
		if createdAt, err = ParseTimestamp(rec[4]); err != nil {
			return nil, fmt.Errorf("%w: voucher createdAt: %v", ErrMalformedRecord, err)
		}
	}
	v, err := RestoreVoucher(id, rec[1], amount, createdAt, rec[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return v, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("want true or false, got %q", s)
}
