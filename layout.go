package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// LayoutSize is the size in pixels of the bitmap drawn in a window of
// outsideWidth x outsideHeight device-independent pixels.
func LayoutSize(outsideWidth, outsideHeight int, scale float64) (int, int) {
	w := int(float64(outsideWidth) * scale)
	h := int(float64(outsideHeight) * scale)
	return max(w, 1), max(h, 1)
}

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// I receive the application window's size via outsideWidth and
	// outsideHeight and return the size of the bitmap that Draw gets. Ebiten
	// scales that bitmap to fit the window, preserving its aspect ratio.
	//
	// When playing, the bitmap has as many pixels as the window really has on
	// the screen, so the outline stays sharp. Every change in size is an event
	// of the session: the hexagon is sized after the surface, so a replay must
	// resize at the same moments.
	//
	// During playback the size of the bitmap comes from the session and ebiten
	// stretches it to whatever the window looks like now.
	if g.state == Playback {
		return max(g.width, 1), max(g.height, 1)
	}

	if m := ebiten.Monitor(); m != nil {
		g.density = m.DeviceScaleFactor()
		g.session.Density = g.density
	}
	screenWidth, screenHeight = LayoutSize(outsideWidth, outsideHeight,
		g.density)
	if screenWidth != g.width || screenHeight != g.height {
		g.apply(SessionEvent{
			Kind:   EventResize,
			Width:  screenWidth,
			Height: screenHeight,
		})
	}
	return
}
