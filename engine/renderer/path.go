package renderer

import "github.com/spaghettifunk/easel/engine/math"

// Subpath is a polyline, optionally closed back to its first point.
type Subpath struct {
	Points []math.Vec2
	Closed bool
}

// Segment is a straight line between two points.
type Segment struct {
	From, To math.Vec2
}

// Path is a list of subpaths built with canvas semantics: MoveTo starts a new
// subpath, LineTo extends the current one (or starts one if there is none) and
// Close joins the current subpath back to its first point.
type Path struct {
	subpaths []Subpath
}

func (p *Path) Reset() {
	p.subpaths = p.subpaths[:0]
}

func (p *Path) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, Subpath{Points: []math.Vec2{math.NewVec2(x, y)}})
}

func (p *Path) LineTo(x, y float64) {
	if len(p.subpaths) == 0 {
		p.MoveTo(x, y)
		return
	}
	last := &p.subpaths[len(p.subpaths)-1]
	last.Points = append(last.Points, math.NewVec2(x, y))
}

// Close marks the current subpath closed and starts a new one at its first
// point, so that a following LineTo continues from there.
func (p *Path) Close() {
	if len(p.subpaths) == 0 {
		return
	}
	last := &p.subpaths[len(p.subpaths)-1]
	if last.Closed {
		return
	}
	last.Closed = true
	start := last.Points[0]
	p.subpaths = append(p.subpaths, Subpath{Points: []math.Vec2{start}})
}

// Subpaths returns the subpaths that have at least one segment.
func (p *Path) Subpaths() []Subpath {
	out := make([]Subpath, 0, len(p.subpaths))
	for _, sp := range p.subpaths {
		if len(sp.Points) > 1 {
			out = append(out, sp)
		}
	}
	return out
}

// Segments flattens the path into line segments, including closing segments.
func (p *Path) Segments() []Segment {
	var segments []Segment
	for _, sp := range p.Subpaths() {
		for i := 1; i < len(sp.Points); i++ {
			segments = append(segments, Segment{From: sp.Points[i-1], To: sp.Points[i]})
		}
		if sp.Closed {
			segments = append(segments, Segment{From: sp.Points[len(sp.Points)-1], To: sp.Points[0]})
		}
	}
	return segments
}
