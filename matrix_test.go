package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func assertPtInDelta(t *testing.T, expected, actual Pt) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, 1e-9)
	assert.InDelta(t, expected.Y, actual.Y, 1e-9)
}

func TestTransform_Apply(t *testing.T) {
	tr := Transform{X: 100, Y: 50, Scale: 2, Rotation: 90}
	// Clockwise on screen: +X turns into +Y.
	assertPtInDelta(t, Pt{100, 70}, tr.Apply(Pt{10, 0}))
	assertPtInDelta(t, Pt{80, 50}, tr.Apply(Pt{0, 10}))
	assertPtInDelta(t, Pt{100, 50}, tr.Apply(Pt{0, 0}))
}

func TestTransform_Aff3SpriteCenter(t *testing.T) {
	tr := Transform{X: 30, Y: 40, Scale: 0.5, Rotation: -30}
	m := tr.Aff3(54)
	// The center of the sprite lands on (X, Y) whatever the rotation.
	x := m[0]*54 + m[1]*54 + m[2]
	y := m[3]*54 + m[4]*54 + m[5]
	assert.InDelta(t, 30.0, x, 1e-9)
	assert.InDelta(t, 40.0, y, 1e-9)
}

func TestTransform_GeoMMatchesAff3(t *testing.T) {
	tr := Transform{X: 200, Y: 300, Scale: 0.75, Rotation: 37}
	m := tr.Aff3(54)
	g := tr.GeoM(54)
	for _, p := range []Pt{{0, 0}, {54, 54}, {108, 3}, {17, 90}} {
		gx, gy := g.Apply(p.X, p.Y)
		assert.InDelta(t, m[0]*p.X+m[1]*p.Y+m[2], gx, 1e-6)
		assert.InDelta(t, m[3]*p.X+m[4]*p.Y+m[5], gy, 1e-6)
	}
}
