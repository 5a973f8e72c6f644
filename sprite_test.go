package main

import (
	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestSpriteSize(t *testing.T) {
	s := NewShape(ShapeParams{SurfaceWidth: 100, Density: 1, StrokeWidth: 5,
		CornerRadiusDp: 6})
	// Extent is 52.5, rounded up to 53 on each side of the center.
	assert.Equal(t, 108, SpriteSize(s))
}

func TestRenderSprite(t *testing.T) {
	s := NewShape(ShapeParams{
		SurfaceWidth:   100,
		Density:        1,
		From:           gg.Hex("#FF0000"),
		To:             gg.Hex("#0000FF"),
		StrokeWidth:    5,
		CornerRadiusDp: 6,
	})
	sprite, err := RenderSprite(s)
	require.NoError(t, err)
	require.Equal(t, 108, sprite.Img.Bounds().Dx())
	require.Equal(t, 108, sprite.Img.Bounds().Dy())
	assert.Equal(t, 54.0, sprite.Center)
	assert.Same(t, s, sprite.Shape)

	// Inside and outside the outline nothing is drawn.
	assert.Equal(t, uint8(0), sprite.Img.RGBAAt(54, 54).A)
	assert.Equal(t, uint8(0), sprite.Img.RGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), sprite.Img.RGBAAt(107, 107).A)

	// On the top edge (y = -43), the bottom edge (y = 43) and near the
	// rounded right corner the outline is opaque.
	top := sprite.Img.RGBAAt(54, 54-43)
	bottom := sprite.Img.RGBAAt(54, 54+43)
	right := sprite.Img.RGBAAt(54+48, 54)
	assert.Greater(t, top.A, uint8(200))
	assert.Greater(t, bottom.A, uint8(200))
	assert.Greater(t, right.A, uint8(128))

	// The sweep starts on the +X axis and turns clockwise: the bottom edge is
	// a quarter turn in (mostly the first color), the top edge three quarters
	// (mostly the second).
	assert.Greater(t, bottom.R, bottom.B)
	assert.Greater(t, top.B, top.R)
}
