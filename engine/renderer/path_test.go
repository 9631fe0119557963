package renderer

import (
	"image/color"
	"testing"

	"github.com/spaghettifunk/easel/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathClosedTriangle(t *testing.T) {
	var p Path
	p.MoveTo(50, 140)
	p.LineTo(150, 60)
	p.LineTo(250, 140)
	p.Close()

	segments := p.Segments()
	require.Len(t, segments, 3)
	assert.Equal(t, Segment{From: math.NewVec2(50, 140), To: math.NewVec2(150, 60)}, segments[0])
	assert.Equal(t, Segment{From: math.NewVec2(250, 140), To: math.NewVec2(50, 140)}, segments[2])
}

func TestPathLineToWithoutMoveTo(t *testing.T) {
	var p Path
	p.LineTo(10, 10)
	p.LineTo(20, 10)

	segments := p.Segments()
	require.Len(t, segments, 1)
	assert.Equal(t, math.NewVec2(10, 10), segments[0].From)
}

func TestPathContinuesAfterClose(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.Close()
	p.LineTo(0, 10)

	segments := p.Segments()
	require.Len(t, segments, 3)
	assert.Equal(t, Segment{From: math.NewVec2(0, 0), To: math.NewVec2(0, 10)}, segments[2])
}

func TestPathReset(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	p.Reset()

	assert.Empty(t, p.Segments())
	p.Close()
	assert.Empty(t, p.Subpaths())
}

func TestStateDefaults(t *testing.T) {
	s := NewState()

	assert.Equal(t, DefaultLineWidth, s.LineWidth())
	assert.Equal(t, color.Black, s.StrokeColor())
	assert.Equal(t, color.Black, s.FillColor())

	s.SetLineWidth(10)
	s.SetLineWidth(-1)
	s.SetLineWidth(0)
	assert.Equal(t, 10.0, s.LineWidth())

	s.SetFillColor(nil)
	assert.Equal(t, color.Black, s.FillColor())
}
