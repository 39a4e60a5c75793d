package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeShutsDownOnContextCancel(t *testing.T) {
	app, err := newApplication(context.Background(), newTestConfig("http://localhost:8000/generate/"), discardLogger())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.serve(ctx, ln, app.setupRouter())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestStartHTTPServerPortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()

	cfg := newTestConfig("http://localhost:8000/generate/")
	cfg.Server.Port = ln.Addr().(*net.TCPAddr).Port
	app, err := newApplication(context.Background(), cfg, discardLogger())
	require.NoError(t, err)

	err = app.startHTTPServer(context.Background(), app.setupRouter())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
