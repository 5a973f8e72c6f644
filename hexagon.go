package main

import (
	"math"

	"github.com/gogpu/gg"
)

type SegmentKind int

const (
	MoveTo SegmentKind = iota
	LineTo
	QuadTo
	ClosePath
)

// Segment is one step of a path. Ctrl is only used by QuadTo.
type Segment struct {
	Kind SegmentKind
	Ctrl Pt
	To   Pt
}

// Gradient is a sweep gradient around Center. The angle 0 is the +X axis and
// angles grow clockwise (the Y axis points down). Positions are fractions of
// a full turn.
type Gradient struct {
	Center    Pt
	Colors    []gg.RGBA
	Positions []float64
}

// NewHexGradient returns the gradient used for the outline: from, to, from,
// at 1/8, 5/8 and 9/8 of a turn. The last stop is never reached, so the color
// at the end of the turn is halfway between to and from.
func NewHexGradient(from, to gg.RGBA) Gradient {
	return Gradient{
		Colors:    []gg.RGBA{from, to, from},
		Positions: []float64{0.125, 0.625, 1.125},
	}
}

type ShapeParams struct {
	SurfaceWidth   int
	Density        float64
	From           gg.RGBA
	To             gg.RGBA
	StrokeWidth    float64
	CornerRadiusDp float64
}

// Shape is the hexagon outline, centered on the origin. It is computed once
// from the size of the surface and shared by all polygons; each polygon only
// applies its own transform and opacity.
//
// The hexagon has two vertices on the X axis (Y points down):
//
//	   5 ____ 4
//	    /    \
//	 0 /      \ 3
//	   \      /
//	    \____/
//	   1      2
//
// Corners are rounded: each straight edge stops CornerRadius short of the
// vertex and a quadratic curve, with the vertex as its control point, joins it
// to the next edge.
type Shape struct {
	SurfaceWidth int
	Side         float64
	HalfHeight   float64
	CornerRadius float64
	StrokeWidth  float64
	Vertices     []Pt
	Path         []Segment
	Gradient     Gradient
}

// DpToPx converts density-independent pixels to pixels, rounding to the
// nearest whole pixel.
func DpToPx(dp float64, density float64) float64 {
	return math.Trunc(dp*density + 0.5)
}

func NewShape(p ShapeParams) *Shape {
	s := &Shape{}
	s.SurfaceWidth = p.SurfaceWidth
	// The side of the hexagon is half the width, so at full size the hexagon
	// touches the left and right edges of the surface. Integer divisions keep
	// the vertices on whole pixels.
	side := p.SurfaceWidth / 2
	halfHeight := int(math.Sqrt(3)*float64(side)) / 2
	s.Side = float64(side)
	s.HalfHeight = float64(halfHeight)
	s.StrokeWidth = p.StrokeWidth
	s.CornerRadius = DpToPx(p.CornerRadiusDp, p.Density)

	halfSide := float64(side / 2)
	s.Vertices = []Pt{
		{-s.Side, 0},
		{-halfSide, s.HalfHeight},
		{halfSide, s.HalfHeight},
		{s.Side, 0},
		{halfSide, -s.HalfHeight},
		{-halfSide, -s.HalfHeight},
	}
	s.Path = RoundedPolygonPath(s.Vertices, s.CornerRadius)
	s.Gradient = NewHexGradient(p.From, p.To)
	return s
}

// RoundedPolygonPath builds a closed path through vertices with every corner
// rounded by radius. The radius is reduced on edges shorter than twice the
// radius, so that two corners never overlap.
func RoundedPolygonPath(vertices []Pt, radius float64) []Segment {
	n := len(vertices)
	if n < 3 {
		return nil
	}

	// For corner i, before[i] is where the curve starts (on the edge coming
	// from the previous vertex) and after[i] is where it ends (on the edge
	// going to the next vertex).
	before := make([]Pt, n)
	after := make([]Pt, n)
	for i, v := range vertices {
		prev := vertices[(i+n-1)%n]
		next := vertices[(i+1)%n]
		before[i] = v.Towards(prev, min(radius, v.To(prev).Len()/2))
		after[i] = v.Towards(next, min(radius, v.To(next).Len()/2))
	}

	path := make([]Segment, 0, 2*n+2)
	path = append(path, Segment{Kind: MoveTo, To: after[0]})
	for k := 1; k <= n; k++ {
		i := k % n
		path = append(path, Segment{Kind: LineTo, To: before[i]})
		path = append(path, Segment{Kind: QuadTo, Ctrl: vertices[i], To: after[i]})
	}
	path = append(path, Segment{Kind: ClosePath})
	return path
}

// Extent is the distance from the origin to the farthest pixel the stroked
// outline can touch.
func (s *Shape) Extent() float64 {
	return s.Side + s.StrokeWidth/2
}
