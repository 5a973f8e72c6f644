package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"image/color"
	"testing"
	"time"
)

func newTestTermHost(t *testing.T) (*ManualClock, tcell.SimulationScreen, *TermHost) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 40)

	cfg := testExportConfig(t)
	cfg.StartState = "Terminal"
	cfg.TermDensity = 0.25
	cfg.TermStrokeWidth = 2
	var clock ManualClock
	h, err := NewTermHost(screen, &clock, cfg)
	require.NoError(t, err)
	return &clock, screen, h
}

func TestBlitHalfBlocks(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(2, 2)

	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 2, color.RGBA{0, 255, 0, 255})
	BlitHalfBlocks(screen, img)

	mainc, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, '▀', mainc)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)

	// The last row has no pixel below it.
	_, _, style, _ = screen.GetContent(1, 1)
	fg, bg, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)
}

func TestTermHost_Size(t *testing.T) {
	_, _, h := newTestTermHost(t)
	assert.Equal(t, 80, h.Surface.Width())
	assert.Equal(t, 80, h.Surface.Height())
	assert.Equal(t, 2.0, h.Anim.Config().StrokeWidth)
}

func TestTermHost_Keys(t *testing.T) {
	_, _, h := newTestTermHost(t)

	assert.True(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', 0)))
	assert.True(t, h.Anim.IsAnimating())
	assert.True(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', 0)))
	assert.False(t, h.Anim.IsAnimating())
	assert.True(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', 0)))
	assert.True(t, h.Anim.IsAnimating())

	h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '+', 0))
	assert.InDelta(t, 0.55, h.Anim.Config().MinSizeInGroup, 1e-9)
	h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '-', 0))
	h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '-', 0))
	assert.InDelta(t, 0.45, h.Anim.Config().MinSizeInGroup, 1e-9)

	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0)))
	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, 0)))
	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, 0)))
}

func TestTermHost_Resize(t *testing.T) {
	clock, _, h := newTestTermHost(t)
	h.Anim.StartAnim()
	h.Step()
	require.NotNil(t, h.Anim.Shape())
	assert.Equal(t, 40.0, h.Anim.Shape().Side)

	assert.True(t, h.HandleEvent(tcell.NewEventResize(60, 20)))
	assert.Equal(t, 60, h.Surface.Width())
	assert.Equal(t, 40, h.Surface.Height())
	clock.Set(16)
	h.Step()
	assert.Equal(t, 30.0, h.Anim.Shape().Side)
}

func TestTermHost_Step(t *testing.T) {
	clock, screen, h := newTestTermHost(t)
	h.Anim.StartAnim()
	clock.Set(1000)
	h.Step()

	// Some cell shows a bright pixel of the outline.
	cells, w, hgt := screen.GetContents()
	require.Equal(t, 80*40, w*hgt)
	lit := false
	for _, c := range cells {
		fg, _, _ := c.Style.Decompose()
		r, g, b := fg.RGB()
		if r+g+b > 200 {
			lit = true
			break
		}
	}
	assert.True(t, lit)
}

func TestTermHost_RunUntilQuit(t *testing.T) {
	clock, screen, h := newTestTermHost(t)
	h.Anim.StartAnim()

	ticks := make(chan time.Time)
	done := make(chan struct{})
	go func() {
		h.Run(ticks)
		close(done)
	}()

	clock.Set(300)
	ticks <- time.Time{}
	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, ' ', 0)))
	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0)))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "Run didn't return after q")
	}
	assert.False(t, h.Anim.IsAnimating())
	assert.Equal(t, 2, h.Anim.Pool.Len())
}
