package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"
)

// Aff3 maps a point of a sprite to the surface. The sprite's center (h, h)
// is the shape's origin: it is scaled, rotated clockwise (the y axis points
// down) and moved to (t.X, t.Y).
//
//	| a b c |   | s*cos  -s*sin  X - h*(a+b) |
//	| d e f | = | s*sin   s*cos  Y - h*(d+e) |
func (t Transform) Aff3(h float64) f64.Aff3 {
	rad := t.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	a := t.Scale * cos
	b := -t.Scale * sin
	d := t.Scale * sin
	e := t.Scale * cos
	return f64.Aff3{
		a, b, t.X - h*(a+b),
		d, e, t.Y - h*(d+e),
	}
}

// GeoM is the same transform as Aff3, for ebiten.
func (t Transform) GeoM(h float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-h, -h)
	m.Scale(t.Scale, t.Scale)
	m.Rotate(t.Rotation * math.Pi / 180)
	m.Translate(t.X, t.Y)
	return m
}

// Apply maps a point of the shape (origin at its center) to the surface.
func (t Transform) Apply(p Pt) Pt {
	m := t.Aff3(0)
	return Pt{
		m[0]*p.X + m[1]*p.Y + m[2],
		m[3]*p.X + m[4]*p.Y + m[5],
	}
}
