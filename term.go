package main

import (
	"image"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TermHost runs the animation in a terminal. Every character cell shows two
// pixels stacked vertically: the upper half block gets the top pixel as its
// foreground color and the bottom pixel as its background color.
type TermHost struct {
	Screen  tcell.Screen
	Loop    *Loop
	Surface *RasterSurface
	Anim    *Animator
	Chime   *Chime
	MinStep float64
}

func NewTermHost(screen tcell.Screen, clock Clock, cfg *Config) (*TermHost, error) {
	loop := NewLoop(clock)
	cols, rows := screen.Size()
	surface := NewRasterSurface(loop, cols, rows*2, cfg.TermDensity,
		cfg.Palette(), cfg.BackgroundColor())

	anim := cfg.Anim
	if cfg.TermStrokeWidth > 0 {
		anim.StrokeWidth = cfg.TermStrokeWidth
	}
	a, err := NewAnimator(surface, loop, anim)
	if err != nil {
		return nil, err
	}
	h := &TermHost{
		Screen:  screen,
		Loop:    loop,
		Surface: surface,
		Anim:    a,
		Chime:   NewChime(cfg.SpawnChime),
		MinStep: 0.05,
	}
	a.OnSpawn = h.Chime.Play
	return h, nil
}

// HandleEvent reacts to a key or a resize. It returns false when the user
// asked to quit.
func (h *TermHost) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			if h.Anim.IsAnimating() {
				h.Anim.StopAnim()
			} else {
				h.Anim.StartAnim()
			}
		case 'r':
			h.Anim.StartAnim()
		case '+':
			h.changeMinSize(h.MinStep)
		case '-':
			h.changeMinSize(-h.MinStep)
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.Surface.Resize(cols, rows*2)
		h.Anim.InvalidateShape()
		h.Surface.RequestRedraw()
		h.Screen.Sync()
	}
	return true
}

func (h *TermHost) changeMinSize(delta float64) {
	size := h.Anim.Config().MinSizeInGroup + delta
	if err := h.Anim.SetMinSizeInGroup(max(size, 0)); err != nil {
		slog.Debug("min size not changed", "err", err)
	}
}

// Step runs the loop and, if a new frame was rendered, shows it.
func (h *TermHost) Step() {
	if !h.Surface.Frame(h.Anim) {
		return
	}
	BlitHalfBlocks(h.Screen, h.Surface.Img)
	h.Screen.Show()
}

// BlitHalfBlocks copies img to the screen, two rows of pixels per line of
// text. A missing last row (odd height) is treated as black.
func BlitHalfBlocks(screen tcell.Screen, img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := img.RGBAAt(x, y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G),
					int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G),
					int32(bottom.B)))
			screen.SetContent(x-b.Min.X, (y-b.Min.Y)/2, '▀', nil, style)
		}
	}
}

// RunTerminal takes over the terminal until the user quits.
func RunTerminal(cfg *Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	h, err := NewTermHost(screen, NewWallClock(), cfg)
	if err != nil {
		return err
	}
	h.Anim.StartAnim()

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()
	h.Run(ticker.C)
	return nil
}

// Run handles events and steps the animation on every tick, until the user
// quits or the screen is finalized.
func (h *TermHost) Run(ticks <-chan time.Time) {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	// ChannelEvents returns, and closes events, once quit is closed.
	defer close(quit)
	go h.Screen.ChannelEvents(events, quit)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !h.HandleEvent(ev) {
				return
			}
		case <-ticks:
			h.Step()
		}
	}
}
