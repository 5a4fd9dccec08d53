package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/symtab/internal/app"
	"go.trai.ch/symtab/internal/core/domain"
	"go.trai.ch/symtab/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T) (ComponentProvider, *mocks.MockSnapshotStore, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockSources := mocks.NewMockSourceReader(ctrl)
	mockStore := mocks.NewMockSnapshotStore(ctrl)
	mockDigester := mocks.NewMockDigester(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(mockLoader, mockSources, mockStore, mockDigester, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}
	return provider, mockStore, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _, _ := newProvider(t)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"demo"}, stdout, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), `"hello"`)
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	provider, mockStore, mockLogger := newProvider(t)

	table := domain.NewTable()
	table.Intern("hello")
	mockStore.EXPECT().Load("state.json").Return(table, nil)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrSymbolNotFound)
	})

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(),
		[]string{"lookup", "--state", "state.json", "--strict", "hello", "world"},
		stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "0\t\"hello\"\n-\t\"world\"\n", stdout.String())
}

// TestRun_CleanupCalled verifies that the provider cleanup runs after the command.
func TestRun_CleanupCalled(t *testing.T) {
	inner, _, _ := newProvider(t)
	cleaned := false
	provider := func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := inner(ctx)
		return c, func() { cleaned = true }, err
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned)
}
