package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"voucher-management/internal/repo"
	resp "voucher-management/internal/transport/http/response"
)

func init() { gin.SetMode(gin.TestMode) }

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func do(t *testing.T, h http.Handler, method, path string, body any) envelope {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func newFileEngine(t *testing.T, dir string) *gin.Engine {
	t.Helper()
	repos, err := repo.Open(repo.Options{
		Driver:       repo.DriverFile,
		CustomerPath: filepath.Join(dir, "customers.csv"),
		VoucherPath:  filepath.Join(dir, "vouchers.csv"),
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	return NewAPIEngine(zaptest.NewLogger(t), repos)
}

type customerJSON struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Banned bool   `json:"banned"`
}

func TestHealth(t *testing.T) {
	repos, err := repo.Open(repo.Options{Driver: repo.DriverMemory}, nil)
	require.NoError(t, err)
	env := do(t, NewAPIEngine(zaptest.NewLogger(t), repos), http.MethodGet, "/health", nil)
	assert.Equal(t, resp.CodeOK, env.Code)
}

func TestCustomerLifecycle(t *testing.T) {
	dir := t.TempDir()
	h := newFileEngine(t, dir)

	env := do(t, h, http.MethodPost, "/api/v1/customers", gin.H{"name": "Alice"})
	require.Equal(t, resp.CodeOK, env.Code, env.Msg)
	var alice customerJSON
	require.NoError(t, json.Unmarshal(env.Data, &alice))
	assert.Equal(t, "Alice", alice.Name)

	env = do(t, h, http.MethodPost, "/api/v1/customers", gin.H{"name": "Bob"})
	require.Equal(t, resp.CodeOK, env.Code)

	env = do(t, h, http.MethodPut, "/api/v1/customers/"+alice.ID, gin.H{"name": "Alice", "banned": true})
	require.Equal(t, resp.CodeOK, env.Code, env.Msg)

	env = do(t, h, http.MethodGet, "/api/v1/customers/banned", nil)
	var banned []customerJSON
	require.NoError(t, json.Unmarshal(env.Data, &banned))
	require.Len(t, banned, 1)
	assert.Equal(t, alice.ID, banned[0].ID)

	env = do(t, h, http.MethodGet, "/api/v1/customers?name=Bob", nil)
	var bobs []customerJSON
	require.NoError(t, json.Unmarshal(env.Data, &bobs))
	require.Len(t, bobs, 1)
	assert.Equal(t, "Bob", bobs[0].Name)

	// a fresh engine over the same files sees the persisted state
	h2 := newFileEngine(t, dir)
	env = do(t, h2, http.MethodGet, "/api/v1/customers/"+alice.ID, nil)
	require.Equal(t, resp.CodeOK, env.Code)
	var got customerJSON
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.True(t, got.Banned)

	env = do(t, h2, http.MethodDelete, "/api/v1/customers/"+alice.ID, nil)
	require.Equal(t, resp.CodeOK, env.Code)
	env = do(t, h2, http.MethodDelete, "/api/v1/customers/"+alice.ID, nil)
	assert.Equal(t, resp.CodeNotFound, env.Code)
	env = do(t, newFileEngine(t, dir), http.MethodGet, "/api/v1/customers/"+alice.ID, nil)
	assert.Equal(t, resp.CodeNotFound, env.Code)
}

func TestCustomerValidation(t *testing.T) {
	h := newFileEngine(t, t.TempDir())

	assert.Equal(t, resp.CodeBadRequest, do(t, h, http.MethodPost, "/api/v1/customers", gin.H{}).Code)
	assert.Equal(t, resp.CodeBadRequest, do(t, h, http.MethodPost, "/api/v1/customers", gin.H{"name": "   "}).Code)
	assert.Equal(t, resp.CodeBadRequest, do(t, h, http.MethodGet, "/api/v1/customers/not-a-uuid", nil).Code)
	assert.Equal(t, resp.CodeNotFound,
		do(t, h, http.MethodPut, "/api/v1/customers/a1111111-1111-1111-1111-111111111111", gin.H{"name": "x"}).Code)
}

func TestVoucherEndpoints(t *testing.T) {
	dir := t.TempDir()
	h := newFileEngine(t, dir)

	env := do(t, h, http.MethodPost, "/api/v1/vouchers", gin.H{"name": "half", "discountAmount": 50, "type": "percent"})
	require.Equal(t, resp.CodeOK, env.Code, env.Msg)
	var v struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &v))
	assert.Equal(t, "PERCENT", v.Type)

	env = do(t, h, http.MethodPost, "/api/v1/vouchers", gin.H{"name": "x", "discountAmount": 5, "type": "bogus"})
	assert.Equal(t, resp.CodeBadRequest, env.Code)
	env = do(t, h, http.MethodPost, "/api/v1/vouchers", gin.H{"name": "x", "discountAmount": 150, "type": "PERCENT"})
	assert.Equal(t, resp.CodeBadRequest, env.Code)
	env = do(t, h, http.MethodPost, "/api/v1/vouchers", gin.H{"name": "x", "discountAmount": -1, "type": "FIXED"})
	assert.Equal(t, resp.CodeBadRequest, env.Code)

	env = do(t, newFileEngine(t, dir), http.MethodGet, "/api/v1/vouchers", nil)
	var all []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Len(t, all, 1)

	env = do(t, h, http.MethodGet, "/api/v1/vouchers/"+v.ID, nil)
	assert.Equal(t, resp.CodeOK, env.Code)
}
