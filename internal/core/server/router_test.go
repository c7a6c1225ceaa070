package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestOptionsAddr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8080", Options{Host: "0.0.0.0", Port: 8080}.Addr())
	assert.Equal(t, ":9000", Options{Port: 9000}.Addr())
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := BuildServer(Options{Host: "127.0.0.1", Port: 0}, http.NotFoundHandler())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Run(ctx, srv, time.Second, zaptest.NewLogger(t)) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunReturnsListenError(t *testing.T) {
	srv := BuildServer(Options{Host: "127.0.0.1", Port: -1}, http.NotFoundHandler())
	err := Run(context.Background(), srv, time.Second, zaptest.NewLogger(t))
	assert.Error(t, err)
}
