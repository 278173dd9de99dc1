package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownOnSignal_CallbackGetsBoundedContext(t *testing.T) {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	sig := make(chan os.Signal, 1)
	received := make(chan context.Context, 1)
	done := make(chan struct{})

	go func() {
		shutdownOnSignal(ctx, sig, time.Minute, stop, func(shutdownCtx context.Context) {
			received <- shutdownCtx
		})
		close(done)
	}()

	assert.Never(t, func() bool { return len(received) > 0 }, 50*time.Millisecond, 10*time.Millisecond)

	sig <- syscall.SIGTERM

	var shutdownCtx context.Context
	select {
	case shutdownCtx = <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("callback was not invoked after signal")
	}

	_, parentHasDeadline := ctx.Deadline()
	assert.False(t, parentHasDeadline)

	deadline, ok := shutdownCtx.Deadline()
	require.True(t, ok, "shutdown context must carry a deadline")
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)

	<-done
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.ErrorIs(t, shutdownCtx.Err(), context.Canceled)
}

func TestShutdownOnSignal_StopsHTTPServer(t *testing.T) {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	httpServer := &http.Server{Handler: http.NotFoundHandler()}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve(listener)
	}()

	sig := make(chan os.Signal, 1)
	shutdownErr := make(chan error, 1)
	go shutdownOnSignal(ctx, sig, 5*time.Second, stop, func(shutdownCtx context.Context) {
		shutdownErr <- httpServer.Shutdown(shutdownCtx)
	})

	sig <- syscall.SIGINT

	select {
	case err := <-shutdownErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server shutdown did not complete")
	}

	assert.ErrorIs(t, <-serveErr, http.ErrServerClosed)

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("main context was not cancelled after shutdown")
	}
}
