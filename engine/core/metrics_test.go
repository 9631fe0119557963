package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsAverageFrameTime(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(20)
	}

	assert.InDelta(t, 20.0, m.FrameTime(), 1e-9)
}

func TestMetricsFPS(t *testing.T) {
	m := NewMetrics()
	// 51 frames of 20ms crosses the one second mark on the last one.
	for i := 0; i < 51; i++ {
		m.Update(20)
	}

	fps, _ := m.Frame()
	assert.Equal(t, 50.0, fps)
	assert.Equal(t, 50.0, m.FPS())
}
