package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type blockingWorker struct {
	*BaseWorker
	startErr error
	ignore   bool // не реагирует на Stop
}

func newBlockingWorker(name string) *blockingWorker {
	return &blockingWorker{BaseWorker: NewBaseWorker(name, "group", zap.NewNop())}
}

func (w *blockingWorker) Start(ctx context.Context) error {
	if w.startErr != nil {
		return w.startErr
	}
	if w.ignore {
		time.Sleep(time.Second)
		return nil
	}
	select {
	case <-w.StopChan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	a, b := newBlockingWorker("a"), newBlockingWorker("b")
	m.Register(a)
	m.Register(b)

	require.NoError(t, m.Start(context.Background()))
	require.NoError(t, m.Stop())

	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())
}

func TestWorkerManager_WorkerError(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	failing := newBlockingWorker("failing")
	failing.startErr = errors.New("consumer group")
	m.Register(failing)

	require.NoError(t, m.Start(context.Background()))

	err := m.Stop()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing: consumer group")
}

func TestWorkerManager_ShutdownTimeout(t *testing.T) {
	m := NewWorkerManager(zap.NewNop()).WithShutdownTimeout(50 * time.Millisecond)
	stuck := newBlockingWorker("stuck")
	stuck.ignore = true
	m.Register(stuck)

	require.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Stop())
}
