// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quiz-timer/internal/logger"
)

const waitTimeout = 2 * time.Second

// blockingWorker runs until its context is cancelled and counts runs.
type blockingWorker struct {
	started atomic.Int64
	stopped atomic.Int64
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.started.Add(1)
	<-ctx.Done()
	b.stopped.Add(1)
}

// ── IntervalWorker ──

func TestIntervalWorker_CallsFnOnEveryTick(t *testing.T) {
	clock := clockwork.NewFakeClock()
	calls := make(chan struct{}, 10)
	w := NewIntervalWorker("tick", time.Second, clock, func(context.Context) {
		calls <- struct{}{}
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), waitTimeout)
	defer waitCancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))

	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
		select {
		case <-calls:
		case <-time.After(waitTimeout):
			t.Fatalf("tick %d was not delivered", i+1)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestIntervalWorker_NoCallBeforeFirstInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var calls atomic.Int64
	w := NewIntervalWorker("resync", 10*time.Second, clock, func(context.Context) {
		calls.Add(1)
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	waitCtx, waitCancel := context.WithTimeout(context.Background(), waitTimeout)
	defer waitCancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))

	clock.Advance(9 * time.Second)
	time.Sleep(20 * time.Millisecond)

	assert.Zero(t, calls.Load())
}

func TestNewIntervalWorker_DefaultsToRealClock(t *testing.T) {
	w := NewIntervalWorker("tick", time.Second, nil, func(context.Context) {}, logger.Nop())
	assert.NotNil(t, w.clock)
}

// ── Group ──

func TestGroup_StartRunsAllWorkers(t *testing.T) {
	w1, w2 := &blockingWorker{}, &blockingWorker{}
	g := NewGroup(w1, w2)

	g.Start(context.Background())
	assert.True(t, g.Running())

	assert.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1
	}, waitTimeout, 5*time.Millisecond)

	g.Stop()

	assert.False(t, g.Running())
	assert.Equal(t, int64(1), w1.stopped.Load())
	assert.Equal(t, int64(1), w2.stopped.Load())
}

func TestGroup_CancelDoesNotBlock(t *testing.T) {
	w := &blockingWorker{}
	g := NewGroup(w)
	g.Start(context.Background())

	g.Cancel()
	assert.False(t, g.Running())

	// workers exit asynchronously after Cancel
	assert.Eventually(t, func() bool { return w.stopped.Load() == 1 }, waitTimeout, 5*time.Millisecond)
	g.Stop()
}

// TestGroup_CancelFromInsideWorker checks that a worker callback may tear
// down its own group.
func TestGroup_CancelFromInsideWorker(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var g *Group
	var calls atomic.Int64
	tick := NewIntervalWorker("tick", time.Second, clock, func(context.Context) {
		calls.Add(1)
		g.Cancel()
	}, logger.Nop())
	g = NewGroup(tick)

	g.Start(context.Background())

	waitCtx, waitCancel := context.WithTimeout(context.Background(), waitTimeout)
	defer waitCancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))
	clock.Advance(time.Second)

	done := make(chan struct{})
	go func() {
		g.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("group did not stop")
	}

	assert.Equal(t, int64(1), calls.Load())
}

func TestGroup_RestartStopsPreviousRun(t *testing.T) {
	w := &blockingWorker{}
	g := NewGroup(w)

	g.Start(context.Background())
	g.Start(context.Background())
	g.Stop()

	assert.Equal(t, int64(2), w.started.Load())
	assert.Equal(t, int64(2), w.stopped.Load())
}

func TestGroup_StopsWhenParentContextCancelled(t *testing.T) {
	w := &blockingWorker{}
	g := NewGroup(w)

	ctx, cancel := context.WithCancel(context.Background())
	g.Start(ctx)
	cancel()

	assert.Eventually(t, func() bool { return w.stopped.Load() == 1 }, waitTimeout, 5*time.Millisecond)
	g.Stop()
}

func TestGroup_StopIdempotent(t *testing.T) {
	g := NewGroup()

	assert.NotPanics(t, func() {
		g.Stop()
		g.Stop()
		g.Cancel()
	})
}

// TestGroup_ConcurrentStartStop запускается с -race: Stop, пересекающийся со
// Start, не должен ждать WaitGroup во время Add.
func TestGroup_ConcurrentStartStop(t *testing.T) {
	w := &blockingWorker{}
	g := NewGroup(w, &blockingWorker{})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			g.Start(context.Background())
		}()
		go func() {
			defer wg.Done()
			g.Stop()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		g.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("concurrent Start/Stop did not settle")
	}

	assert.False(t, g.Running())
	assert.Equal(t, w.started.Load(), w.stopped.Load())
}
