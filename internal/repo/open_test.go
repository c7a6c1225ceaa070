package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"voucher-management/internal/domain"
)

func TestOpenMemory(t *testing.T) {
	repos, err := Open(Options{Driver: DriverMemory}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryCustomerRepo{}, repos.Customers)
	assert.IsType(t, &MemoryVoucherRepo{}, repos.Vouchers)
	assert.NoError(t, repos.Ping(context.Background()))
	assert.NoError(t, repos.Close())
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	repos, err := Open(Options{
		Driver:       DriverFile,
		CustomerPath: filepath.Join(dir, "customers.csv"),
		VoucherPath:  filepath.Join(dir, "vouchers.csv"),
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.IsType(t, &FileCustomerRepo{}, repos.Customers)
	assert.IsType(t, &FileVoucherRepo{}, repos.Vouchers)
}

func TestOpenFileMalformed(t *testing.T) {
	dir := t.TempDir()
	vouchers := filepath.Join(dir, "vouchers.csv")
	require.NoError(t, os.WriteFile(vouchers, []byte("garbage\n"), 0o644))

	_, err := Open(Options{
		Driver:       DriverFile,
		CustomerPath: filepath.Join(dir, "customers.csv"),
		VoucherPath:  vouchers,
	}, zaptest.NewLogger(t))
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(Options{Driver: "etcd"}, nil)
	assert.Error(t, err)
}
