package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/config"
	"github.com/stretchr/testify/require"
)

func TestServer_ShutdownStopsStartCleanly(t *testing.T) {
	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: 0}
	s := NewServer(cfg, http.NotFoundHandler(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	require.NoError(t, s.Shutdown(context.Background()))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}

func TestServer_AppliesConfig(t *testing.T) {
	cfg := &config.ServerConfig{Host: "0.0.0.0", Port: 8081, ReadTimeout: 2 * time.Second, WriteTimeout: 3 * time.Second}
	s := NewServer(cfg, http.NotFoundHandler(), nil)

	require.Equal(t, "0.0.0.0:8081", s.httpServer.Addr)
	require.Equal(t, 2*time.Second, s.httpServer.ReadTimeout)
	require.Equal(t, 3*time.Second, s.httpServer.WriteTimeout)
	require.NotNil(t, s.logger)
}
