package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

func (g *Gui) Draw(screen *ebiten.Image) {
	screen.Fill(g.BackgroundColor().Color())

	for _, c := range g.calls {
		g.DrawPolygon(screen, c)
	}

	if g.ShowDebug {
		g.DrawDebugInfo(screen)
	}
}

// spriteFor returns the rasterized outline of s, rendering it again only
// when the shape changed (after a resize).
func (g *Gui) spriteFor(s *Shape) *ebiten.Image {
	if g.sprite != nil && g.spriteShape == s {
		return g.sprite
	}
	sprite, err := RenderSprite(s)
	Check(err)
	if g.sprite != nil {
		g.sprite.Deallocate()
	}
	g.sprite = ebiten.NewImageFromImage(sprite.Img)
	g.spriteCenter = sprite.Center
	g.spriteShape = s
	return g.sprite
}

func (g *Gui) DrawPolygon(screen *ebiten.Image, c DrawCall) {
	img := g.spriteFor(c.Shape)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = c.Transform.GeoM(g.spriteCenter)
	op.GeoM.Translate(float64(screen.Bounds().Min.X),
		float64(screen.Bounds().Min.Y))
	op.ColorScale.ScaleAlpha(float32(c.Alpha) / 255)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (g *Gui) DrawDebugInfo(screen *ebiten.Image) {
	var status string
	switch g.state {
	case Play:
		status = "play"
	case Playback:
		status = "playback"
		if g.playbackPaused {
			status += " (paused)"
		}
	}
	msg := fmt.Sprintf("%s  t=%dms  frame=%d  live=%d  spawner=%v  "+
		"ticks=%d  min=%.2f  TPS=%.0f",
		status, g.loop.Now(), g.frameIdx, g.anim.Pool.Len(),
		g.anim.SpawnerState(), g.anim.TickCount(),
		g.anim.Config().MinSizeInGroup, ebiten.ActualTPS())
	g.DrawText(screen, msg, false, false, color.NRGBA{200, 200, 200, 255})
}

func (g *Gui) DrawText(screen *ebiten.Image, message string, centerX bool, centerY bool, color color.Color) {
	// The origin of the text is roughly the lower-left corner of its bounds:
	// most of it is drawn above y, a bit of it under y. To have all of the
	// text above y, draw it at y - text.BoundString().Max.Y.
	textSize := text.BoundString(g.defaultFont, message)
	var offsetX int
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	} else {
		offsetX = 0
	}

	var offsetY int
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	} else {
		offsetY = 0
	}

	textX := screen.Bounds().Min.X + offsetX
	textY := screen.Bounds().Max.Y - offsetY - textSize.Max.Y
	text.Draw(screen, message, g.defaultFont, textX, textY, color)
}
