package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"log/slog"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

// ExportPalette returns the colors an exported GIF may use: the two gradient
// colors, every mix in between, each faded towards the background.
func ExportPalette(from, to, background gg.RGBA) color.Palette {
	const hues = 16
	const levels = 16
	p := make(color.Palette, 0, hues*levels)
	for h := range hues {
		hue := from.Lerp(to, float64(h)/(hues-1))
		for l := range levels {
			p = append(p, background.Lerp(hue, float64(l)/(levels-1)).Color())
		}
	}
	return p
}

// RenderFrames plays a session offline, on a manual clock, and calls emit
// for every frame. Frames are 1000/fps milliseconds apart. The image passed
// to emit is reused for the next frame.
//
// With no session, the animation simply starts at time 0 and runs for
// duration milliseconds.
func RenderFrames(cfg *Config, session *Session, duration int64,
	emit func(t int64, img *image.RGBA)) error {
	var clock ManualClock
	loop := NewLoop(&clock)
	surface := NewRasterSurface(loop, cfg.ExportWidth, cfg.ExportHeight,
		cfg.ExportDensity, cfg.Palette(), cfg.BackgroundColor())

	anim := cfg.Anim
	if session != nil {
		anim = session.Anim
	}
	a, err := NewAnimator(surface, loop, anim)
	if err != nil {
		return err
	}
	if session != nil {
		// Frames keep the export size: a Resize event only makes the
		// Animator rebuild its shape, for the same surface.
		player := SessionPlayer{Session: session, Anim: a}
		player.Schedule(loop)
	} else {
		a.StartAnim()
	}

	period := 1000 / cfg.ExportFps
	for t := int64(0); t < duration; t += period {
		clock.Set(t)
		surface.Frame(a)
		emit(t, surface.Img)
	}
	return nil
}

// EncodeGif renders the frames and encodes them as an animated GIF that loops
// forever.
func EncodeGif(cfg *Config, session *Session, duration int64) ([]byte, error) {
	palette := ExportPalette(
		cfg.Palette()[ColorGradientFrom],
		cfg.Palette()[ColorGradientTo],
		cfg.BackgroundColor())
	delay := int(100 / cfg.ExportFps)

	anim := &gif.GIF{}
	err := RenderFrames(cfg, session, duration, func(t int64, img *image.RGBA) {
		frame := image.NewPaletted(img.Bounds(), palette)
		xdraw.FloydSteinberg.Draw(frame, frame.Bounds(), img, img.Bounds().Min)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	})
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := gif.EncodeAll(buf, anim); err != nil {
		return nil, fmt.Errorf("encoding gif: %w", err)
	}
	return buf.Bytes(), nil
}

// Export writes a GIF of the animation to cfg.ExportDir and returns its path.
// If the session is nil, the default animation is exported.
func Export(cfg *Config, session *Session) string {
	duration := cfg.ExportDuration
	id := uuid.New()
	if session != nil {
		duration = session.Duration()
		id = session.Id
	}

	slog.Info("exporting", "id", id, "duration", duration,
		"fps", cfg.ExportFps, "width", cfg.ExportWidth,
		"height", cfg.ExportHeight)
	data, err := EncodeGif(cfg, session, duration)
	Check(err)

	MakeDir(cfg.ExportDir)
	path := filepath.Join(cfg.ExportDir, id.String()+".gif")
	WriteFile(path, data)
	slog.Info("exported", "path", path, "bytes", len(data))

	if cfg.UploadRecordings && session != nil {
		sessionData, err := session.Serialize()
		Check(err)
		UploadRecording(getUsername(), session, sessionData, data)
	}
	return path
}
