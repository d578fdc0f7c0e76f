package worker

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countJob struct {
	runs *int32
}

func (j *countJob) Name() string { return "count" }

func (j *countJob) Run(ctx context.Context) error {
	atomic.AddInt32(j.runs, 1)
	return nil
}

func TestPoolStopDrainsQueue(t *testing.T) {
	p := NewPool(1, 16)
	var runs int32

	// Queue up work before the worker starts so the queue is provably
	// non-empty when Stop is called.
	for i := 0; i < 8; i++ {
		require.True(t, p.Submit(&countJob{runs: &runs}))
	}

	p.Start(context.Background())
	p.Stop()

	assert.Equal(t, int32(8), atomic.LoadInt32(&runs), "queued jobs must run before shutdown completes")
}

func TestPoolSubmitFullQueue(t *testing.T) {
	p := NewPool(1, 2)
	var runs int32

	assert.True(t, p.Submit(&countJob{runs: &runs}))
	assert.True(t, p.Submit(&countJob{runs: &runs}))
	assert.False(t, p.Submit(&countJob{runs: &runs}), "submit must not block on a full queue")
	assert.Equal(t, 2, p.QueueSize())
}
