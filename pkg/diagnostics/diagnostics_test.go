package diagnostics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/opd-ai/go-asteroids/pkg/logging"
)

func TestFrameWindow_Empty(t *testing.T) {
	var w FrameWindow

	assert.Zero(t, w.Average())
	assert.Zero(t, w.FPS())
	assert.Zero(t, w.Frames())
}

func TestFrameWindow_AverageAndFPS(t *testing.T) {
	var w FrameWindow
	w.Push(0.02)
	w.Push(0.03)

	assert.Equal(t, 2, w.Len())
	assert.InDelta(t, 0.025, w.Average(), 1e-6)
	assert.InDelta(t, 40, w.FPS(), 1e-3)
	assert.Equal(t, float32(0.03), w.Last())
}

func TestFrameWindow_KeepsOnlyLatestSamples(t *testing.T) {
	var w FrameWindow
	for i := 0; i < WindowSize; i++ {
		w.Push(1)
	}
	for i := 0; i < WindowSize; i++ {
		w.Push(0.5)
	}

	assert.Equal(t, WindowSize, w.Len())
	assert.Equal(t, uint64(2*WindowSize), w.Frames())
	assert.InDelta(t, 0.5, w.Average(), 1e-6)
	assert.InDelta(t, 2, w.FPS(), 1e-4)
}

func TestFrameWindow_NegativeCountsAsZero(t *testing.T) {
	var w FrameWindow
	w.Push(-1)
	w.Push(0.1)

	assert.InDelta(t, 0.05, w.Average(), 1e-6)
}

func TestFuelPercent(t *testing.T) {
	assert.Equal(t, float32(50), FuelPercent(30, 60))
	assert.Equal(t, float32(150), FuelPercent(90, 60))
	assert.Zero(t, FuelPercent(30, 0))
}

func TestReport_String(t *testing.T) {
	r := Report{
		Score:       12,
		FuelPercent: 75,
		FPS:         60,
		FrameAvg:    16 * time.Millisecond,
		Frame:       17 * time.Millisecond,
		Frames:      300,
		Elapsed:     5 * time.Second,
	}

	assert.Equal(t, "score: 12 fuel: 75% fps: 60 (16.000ms, 17.000ms) frames: 300 time: 5.000", r.String())
	assert.Len(t, r.Fields(), 22)
}

func TestMonitor_PublishLatest(t *testing.T) {
	m := NewMonitor(0, nil)

	_, ok := m.Latest()
	assert.False(t, ok)

	m.Publish(Report{Score: 1})
	m.Publish(Report{Score: 2})

	r, ok := m.Latest()
	require.True(t, ok)
	assert.Equal(t, uint64(2), r.Score)
	assert.Equal(t, uint64(2), m.Published())
}

func TestMonitor_RunLogsAndStops(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := NewMonitor(5*time.Millisecond, logging.NewFromZap(zap.New(core)))
	m.Publish(Report{Score: 7, Asteroids: 3})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	require.Eventually(t, func() bool {
		return logs.FilterMessage("Diagnostics").Len() > 0
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}

	entry := logs.FilterMessage("Diagnostics").All()[0]
	assert.Equal(t, uint64(7), entry.ContextMap()["score"])
	assert.Contains(t, entry.ContextMap(), "heap_mb")
}

func TestMonitor_RunTwice(t *testing.T) {
	m := NewMonitor(0, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = m.Run(ctx) }()
	require.Eventually(t, m.running.Load, time.Second, time.Millisecond)

	assert.Error(t, m.Run(ctx))
}
