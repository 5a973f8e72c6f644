package main

import (
	"github.com/gogpu/gg"
)

// Names of the colors a Surface must know about.
const (
	ColorGradientFrom = "gradient_color_from"
	ColorGradientTo   = "gradient_color_to"
)

// Transform places one polygon on the surface: the shape (centered on its
// origin) is scaled, then rotated clockwise by Rotation degrees, then moved
// to (X, Y).
type Transform struct {
	X        float64
	Y        float64
	Scale    float64
	Rotation float64
}

// Surface is whatever the animation gets drawn on. The Animator only talks to
// the host through this interface (plus Timers), which is what allows the
// same animation to run in a window, in a terminal or offline.
type Surface interface {
	// Width and Height are in pixels. A value <= 0 means the surface isn't
	// ready yet.
	Width() int
	Height() int
	// Density is the number of pixels per density-independent pixel.
	Density() float64
	Color(name string) gg.RGBA
	// RequestRedraw asks for a render pass. Many requests before the next
	// pass result in a single pass.
	RequestRedraw()
	Now() int64
	DrawShape(s *Shape, alpha uint8, t Transform)
}

// DrawCall is a draw request as seen by HeadlessSurface.
type DrawCall struct {
	Shape     *Shape
	Alpha     uint8
	Transform Transform
}

// HeadlessSurface is a Surface that draws nothing. It remembers the draw
// calls of the last render pass, which is all regression checks and tests
// need to know about what would have appeared on screen.
type HeadlessSurface struct {
	Loop            *Loop
	W               int
	H               int
	Dens            float64
	Colors          map[string]gg.RGBA
	Calls           []DrawCall
	RedrawRequested bool
	NRedrawRequests int
}

func NewHeadlessSurface(loop *Loop, width, height int) *HeadlessSurface {
	return &HeadlessSurface{
		Loop: loop,
		W:    width,
		H:    height,
		Dens: 1,
		Colors: map[string]gg.RGBA{
			ColorGradientFrom: gg.Hex("#FF4F8B"),
			ColorGradientTo:   gg.Hex("#4FC3F7"),
		},
	}
}

func (s *HeadlessSurface) Width() int       { return s.W }
func (s *HeadlessSurface) Height() int      { return s.H }
func (s *HeadlessSurface) Density() float64 { return s.Dens }
func (s *HeadlessSurface) Now() int64       { return s.Loop.Now() }

func (s *HeadlessSurface) Color(name string) gg.RGBA {
	return s.Colors[name]
}

func (s *HeadlessSurface) RequestRedraw() {
	s.RedrawRequested = true
	s.NRedrawRequests++
}

func (s *HeadlessSurface) DrawShape(shape *Shape, alpha uint8, t Transform) {
	s.Calls = append(s.Calls, DrawCall{shape, alpha, t})
}

// Frame advances the loop to the clock's current time and, if a render pass
// was requested, runs one. It returns true if a pass ran.
func (s *HeadlessSurface) Frame(a *Animator) bool {
	s.Loop.Advance()
	if !s.RedrawRequested {
		return false
	}
	s.RedrawRequested = false
	s.Calls = s.Calls[:0]
	a.RenderPass(s.Loop.Now())
	return true
}
