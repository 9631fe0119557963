package platform

import (
	"context"
	"testing"
	"time"

	"github.com/spaghettifunk/easel/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Host = (*Headless)(nil)

func TestHeadlessMeasurements(t *testing.T) {
	h := NewHeadless(640, 480)

	w, hh := h.DocumentSize()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, hh)

	h.Resize(800, 600, 0, 700)
	w, hh = h.DocumentSize()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, hh)
	w, hh = h.WindowSize()
	assert.Equal(t, 0, w)
	assert.Equal(t, 700, hh)
}

func TestHeadlessResizeListeners(t *testing.T) {
	h := NewHeadless(10, 10)

	calls := 0
	id := h.AddResizeListener(func() { calls++ })
	require.Equal(t, 1, h.ResizeListeners())

	h.Resize(20, 20, 20, 20)
	assert.Equal(t, 1, calls)

	assert.True(t, h.RemoveResizeListener(id))
	assert.Equal(t, 0, h.ResizeListeners())

	h.Resize(30, 30, 30, 30)
	assert.Equal(t, 1, calls)

	assert.Zero(t, h.AddResizeListener(nil))
}

func TestHeadlessStepRunsPendingOnly(t *testing.T) {
	h := NewHeadless(10, 10)

	var stamps []float64
	var loop FrameCallback
	loop = func(ts float64) {
		stamps = append(stamps, ts)
		h.RequestAnimationFrame(loop)
	}
	h.RequestAnimationFrame(loop)
	require.Equal(t, 1, h.Pending())

	assert.Equal(t, 1, h.Step(16))
	assert.Equal(t, 1, h.Pending())
	assert.Equal(t, 1, h.Step(32))

	assert.Equal(t, []float64{16, 32}, stamps)
}

func TestHeadlessStepWithNothingPending(t *testing.T) {
	h := NewHeadless(10, 10)
	h.RequestAnimationFrame(nil)

	assert.Equal(t, 0, h.Pending())
	assert.Equal(t, 0, h.Step(1))
}

func TestHeadlessRunStopsAfterFrames(t *testing.T) {
	h := NewHeadless(10, 10)

	var stamps []float64
	var loop FrameCallback
	loop = func(ts float64) {
		stamps = append(stamps, ts)
		h.RequestAnimationFrame(loop)
	}
	h.RequestAnimationFrame(loop)

	n, err := h.Run(context.Background(), 3, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Len(t, stamps, 3)
	assert.Less(t, stamps[0], stamps[1])
	assert.Less(t, stamps[1], stamps[2])
}

func TestHeadlessRunHonoursContext(t *testing.T) {
	h := NewHeadless(10, 10)

	var loop FrameCallback
	loop = func(float64) { h.RequestAnimationFrame(loop) }
	h.RequestAnimationFrame(loop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := h.Run(ctx, 1000, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestHeadlessRunEndsWhenChainStops(t *testing.T) {
	h := NewHeadless(10, 10)
	h.RequestAnimationFrame(func(float64) {})

	n, err := h.Run(context.Background(), 10, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHeadlessRunRejectsNonPositiveInterval(t *testing.T) {
	h := NewHeadless(10, 10)
	h.RequestAnimationFrame(func(float64) {})

	for _, interval := range []time.Duration{0, -time.Millisecond} {
		n, err := h.Run(context.Background(), 1, interval)
		assert.ErrorIs(t, err, core.ErrInvalidInterval)
		assert.Equal(t, 0, n)
	}
	assert.Equal(t, 1, h.Pending())
}
