//go:build !integration

package app

import (
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func sendTermSignal(t *testing.T) {
	t.Helper()
	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, proc.Signal(syscall.SIGTERM))
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	server := NewServer(okHandler(), "8080")

	require.NotNil(t, server)
	require.NotNil(t, server.httpServer)
	assert.Equal(t, ":8080", server.httpServer.Addr)
	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 15*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
	assert.Equal(t, 10*time.Second, server.shutdownTimeout)
}

func TestServer_ShutdownBeforeRun(t *testing.T) {
	server := NewServer(okHandler(), "8080")

	assert.NoError(t, server.Shutdown())
}

func TestServer_ShutdownRunsHooks(t *testing.T) {
	server := NewServer(okHandler(), "8080")

	var order []string
	server.OnShutdown(func() { order = append(order, "sessions") })
	server.OnShutdown(func() { order = append(order, "menu-cache") })

	require.NoError(t, server.Shutdown())
	assert.Equal(t, []string{"sessions", "menu-cache"}, order)
}

func TestServer_RunStopsOnSIGTERM(t *testing.T) {
	server := NewServer(okHandler(), "0")

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	// Give the listener a moment to come up before signaling.
	time.Sleep(100 * time.Millisecond)
	sendTermSignal(t)

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down after SIGTERM")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	server := NewServer(okHandler(), "not-a-port")

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	select {
	case err := <-errChan:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("expected listen error for invalid port")
	}
}
