package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "file", c.Store.Driver)
	assert.Equal(t, "data/customers.csv", c.Store.File.CustomerPath)
	assert.Equal(t, "data/vouchers.csv", c.Store.File.VoucherPath)
	assert.Equal(t, 8080, c.App.HTTP.Port)
	assert.Equal(t, "voucher:", c.Redis.KeyPrefix)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
app:
  http:
    port: 9090
store:
  driver: memory
  file:
    customerPath: /var/lib/vm/customers.csv
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("APP_STORE_FILE_VOUCHERPATH", "/tmp/v.csv")
	t.Setenv("APP_LOG_JSON", "true")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, c.App.HTTP.Port)
	assert.Equal(t, "memory", c.Store.Driver)
	assert.Equal(t, "/var/lib/vm/customers.csv", c.Store.File.CustomerPath)
	assert.Equal(t, "/tmp/v.csv", c.Store.File.VoucherPath)
	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Log.JSON)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
