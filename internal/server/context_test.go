package server

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct{}

func (stubClient) Get(context.Context, string, time.Duration) ([]byte, error) {
	return []byte(`{}`), nil
}

func newServerContext(t *testing.T) *ServerContext {
	t.Helper()
	sc, err := NewServerContext(context.Background(),
		WithLibraryClient(stubClient{}),
		WithLogger(slog.New(slog.DiscardHandler)),
		WithConfig(NewDefaultConfig()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func TestNewServerContextRequiredOptions(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	_, err := NewServerContext(context.Background(),
		WithLogger(logger), WithConfig(NewDefaultConfig()))
	assert.ErrorIs(t, err, ErrMissingClient)

	_, err = NewServerContext(context.Background(),
		WithLibraryClient(stubClient{}), WithConfig(NewDefaultConfig()))
	assert.ErrorIs(t, err, ErrMissingLogger)

	_, err = NewServerContext(context.Background(),
		WithLibraryClient(stubClient{}), WithLogger(logger))
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestServerContextDefaultsInstrumentation(t *testing.T) {
	sc := newServerContext(t)
	require.NotNil(t, sc.Instrumentation())
	assert.False(t, sc.Instrumentation().Enabled())
	assert.NotNil(t, sc.Instrumentation().Metrics(), "metrics recorder is nil-safe but never nil")
}

func TestShutdownIsIdempotent(t *testing.T) {
	sc := newServerContext(t)
	assert.False(t, sc.IsShutdown())

	require.NoError(t, sc.Shutdown())
	require.NoError(t, sc.Shutdown())
	assert.True(t, sc.IsShutdown())

	select {
	case <-sc.Context().Done():
	default:
		t.Fatal("lifecycle context must be cancelled after Shutdown")
	}
}
