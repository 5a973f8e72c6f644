package main

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// Sprite is the stroked hexagon rasterized once, at full size. The origin of
// the Shape is at (Center, Center) in Img. Hosts draw this image under each
// polygon's transform, so the gradient turns together with the outline.
type Sprite struct {
	Img    *image.RGBA
	Center float64
	Shape  *Shape
}

// SpriteSize is the width and height of the square image that holds the
// stroked shape, with a pixel of margin for anti-aliasing.
func SpriteSize(s *Shape) int {
	return 2*int(math.Ceil(s.Extent())) + 2
}

// RenderSprite rasterizes the outline of s with its sweep gradient.
func RenderSprite(s *Shape) (*Sprite, error) {
	size := SpriteSize(s)
	c := float64(size) / 2

	dc := gg.NewContext(size, size)
	defer func() { _ = dc.Close() }()
	dc.Clear()

	brush := gg.NewSweepGradientBrush(c+s.Gradient.Center.X,
		c+s.Gradient.Center.Y, 0)
	for i := range s.Gradient.Colors {
		brush.AddColorStop(s.Gradient.Positions[i], s.Gradient.Colors[i])
	}
	dc.SetStrokeBrush(brush)
	dc.SetLineWidth(s.StrokeWidth)
	dc.SetLineJoin(gg.LineJoinRound)

	for _, seg := range s.Path {
		switch seg.Kind {
		case MoveTo:
			dc.MoveTo(c+seg.To.X, c+seg.To.Y)
		case LineTo:
			dc.LineTo(c+seg.To.X, c+seg.To.Y)
		case QuadTo:
			dc.QuadraticTo(c+seg.Ctrl.X, c+seg.Ctrl.Y, c+seg.To.X, c+seg.To.Y)
		case ClosePath:
			dc.ClosePath()
		}
	}
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("stroking hexagon: %w", err)
	}

	src := dc.Image()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.Copy(img, image.Point{}, src, src.Bounds(), xdraw.Src, nil)
	return &Sprite{Img: img, Center: c, Shape: s}, nil
}
