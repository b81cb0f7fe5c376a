package rollover

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		expectErr bool
	}{
		{name: "Standard spec", spec: "0 0 * * *"},
		{name: "Descriptor", spec: "@daily"},
		{name: "Garbage", spec: "every day", expectErr: true},
		{name: "Too many fields", spec: "0 0 0 * * * *", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := New(tt.spec, time.UTC, nil)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, service)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, service)
			}
		})
	}
}

func TestService_run(t *testing.T) {
	tests := []struct {
		name     string
		resetErr error
	}{
		{name: "Reset succeeds"},
		{name: "Reset fails", resetErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resetter := NewMockResetter(ctrl)
			service, err := New("@daily", time.UTC, resetter)
			require.NoError(t, err)

			resetter.EXPECT().ResetAll(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
				_, ok := ctx.Deadline()
				assert.True(t, ok)
				return tt.resetErr
			})

			service.run(context.Background())
		})
	}
}

func TestService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	resetter := NewMockResetter(ctrl)
	service, err := New("@every 1s", time.UTC, resetter)
	require.NoError(t, err)

	var calls atomic.Int32
	resetter.EXPECT().ResetAll(gomock.Any()).DoAndReturn(func(context.Context) error {
		calls.Add(1)
		return nil
	}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, service.Start(ctx))

	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	cancel()

	select {
	case <-service.Stopped():
	case <-time.After(3 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestService_StoppedWaitsForRunningReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	resetter := NewMockResetter(ctrl)
	service, err := New("@every 1s", time.UTC, resetter)
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool
	resetter.EXPECT().ResetAll(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(started)
		<-release
		finished.Store(true)
		return nil
	}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, service.Start(ctx))

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("reset did not start")
	}
	cancel()

	select {
	case <-service.Stopped():
		t.Fatal("stopped while a reset was still running")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	select {
	case <-service.Stopped():
	case <-time.After(3 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.True(t, finished.Load())
}
