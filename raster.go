package main

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// RasterSurface draws into an in-memory image. Export uses it to produce
// frames and the terminal host downsamples its image into character cells.
type RasterSurface struct {
	Loop       *Loop
	Img        *image.RGBA
	Dens       float64
	Colors     map[string]gg.RGBA
	Background color.Color

	redraw bool
	sprite *Sprite
}

func NewRasterSurface(loop *Loop, width, height int, density float64,
	colors map[string]gg.RGBA, background gg.RGBA) *RasterSurface {
	s := &RasterSurface{
		Loop:       loop,
		Dens:       density,
		Colors:     colors,
		Background: background.Color(),
	}
	s.Resize(width, height)
	return s
}

// Resize replaces the frame with a blank one of the new size. The caller is
// responsible for telling the Animator (InvalidateShape).
func (s *RasterSurface) Resize(width, height int) {
	s.Img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	s.Clear()
}

func (s *RasterSurface) Width() int       { return s.Img.Bounds().Dx() }
func (s *RasterSurface) Height() int      { return s.Img.Bounds().Dy() }
func (s *RasterSurface) Density() float64 { return s.Dens }
func (s *RasterSurface) Now() int64       { return s.Loop.Now() }
func (s *RasterSurface) RequestRedraw()   { s.redraw = true }

func (s *RasterSurface) Color(name string) gg.RGBA {
	c, ok := s.Colors[name]
	if !ok {
		slog.Warn("unknown color", "name", name)
	}
	return c
}

func (s *RasterSurface) Clear() {
	xdraw.Draw(s.Img, s.Img.Bounds(), image.NewUniform(s.Background),
		image.Point{}, xdraw.Src)
}

// Frame advances the loop and, if the Animator asked for it, renders a new
// frame. When nothing was requested the previous frame stays as it is.
func (s *RasterSurface) Frame(a *Animator) bool {
	s.Loop.Advance()
	if !s.redraw {
		return false
	}
	s.redraw = false
	s.Clear()
	a.RenderPass(s.Loop.Now())
	return true
}

func (s *RasterSurface) spriteFor(shape *Shape) *Sprite {
	if s.sprite != nil && s.sprite.Shape == shape {
		return s.sprite
	}
	sprite, err := RenderSprite(shape)
	if err != nil {
		slog.Error("failed to render sprite", "err", err)
		return nil
	}
	s.sprite = sprite
	return sprite
}

func (s *RasterSurface) DrawShape(shape *Shape, alpha uint8, t Transform) {
	if alpha == 0 {
		return
	}
	sprite := s.spriteFor(shape)
	if sprite == nil {
		return
	}
	opts := &xdraw.Options{
		SrcMask: image.NewUniform(color.Alpha{A: alpha}),
	}
	xdraw.BiLinear.Transform(s.Img, t.Aff3(sprite.Center), sprite.Img,
		sprite.Img.Bounds(), xdraw.Over, opts)
}
