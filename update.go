package main

import (
	"log/slog"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const sizeStep = 0.05

func (g *Gui) Update() error {
	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.JustPressed(ebiten.KeyD) {
		g.ShowDebug = !g.ShowDebug
	}

	switch g.state {
	case Play:
		return g.UpdatePlay()
	case Playback:
		g.UpdatePlayback()
	default:
		panic("unhandled default case")
	}
	return nil
}

// frameDuration is how many milliseconds of animation one Update covers.
func frameDuration() int64 {
	return int64(1000 / ebiten.TPS())
}

func (g *Gui) UpdatePlay() error {
	if g.JustPressed(ebiten.KeyEscape) {
		g.finishSession()
		return ebiten.Termination
	}
	if g.JustPressed(ebiten.KeyS) {
		if g.anim.IsAnimating() {
			g.apply(SessionEvent{Kind: EventStop})
		} else {
			g.apply(SessionEvent{Kind: EventStart})
		}
	}
	if g.JustPressed(ebiten.KeyR) {
		g.apply(SessionEvent{Kind: EventStart})
	}
	if g.JustPressed(ebiten.KeyUp) {
		g.changeMinSize(sizeStep)
	}
	if g.JustPressed(ebiten.KeyDown) {
		g.changeMinSize(-sizeStep)
	}
	if g.folderWatcher.FolderContentsChanged() {
		g.reloadConfig()
	}

	g.step(frameDuration())
	return nil
}

// reloadConfig loads the configuration again and starts a new session with
// it, from time 0.
func (g *Gui) reloadConfig() {
	g.finishSession()
	g.LoadGuiData()
	slog.Info("configuration reloaded")
	g.session = NewSession(g.width, g.height, g.density, g.Anim)
	g.resetAnimation(g.Anim)
	g.apply(SessionEvent{Kind: EventStart})
}

func (g *Gui) changeMinSize(delta float64) {
	size := max(g.anim.Config().MinSizeInGroup+delta, 0)
	if size > g.anim.Config().MaxSizeInGroup {
		slog.Debug("min size can't grow past max size", "size", size)
		return
	}
	g.apply(SessionEvent{Kind: EventSetMinSize, Value: size})
}

// apply records an event in the session and then applies it.
func (g *Gui) apply(ev SessionEvent) {
	ev.At = g.loop.Now()
	g.session.Record(ev)
	if g.RecordToFile {
		// IMPORTANT: save the session before applying the event. If the
		// event causes a crash, we want the event that caused it on disk.
		data, err := g.session.Serialize()
		Check(err)
		WriteFile(g.RecordingFile, data)
	}
	g.player.Apply(ev)
}

// step moves the clock forward, runs every timer that became due and, if the
// animation asked for it, runs a render pass. The draw calls of the pass are
// kept until the next pass and drawn on every Draw().
func (g *Gui) step(dt int64) {
	g.clock.Add(dt)
	g.loop.Advance()
	if g.redraw {
		g.redraw = false
		g.calls = g.calls[:0]
		g.anim.RenderPass(g.loop.Now())
	}
	g.frameIdx++
}

func (g *Gui) finishSession() {
	if !g.RecordToFile && !g.UploadRecordings {
		return
	}
	data, err := g.session.Serialize()
	Check(err)
	if g.RecordToFile {
		WriteFile(g.RecordingFile, data)
	}
	if g.UploadRecordings {
		gifData, err := EncodeGif(&g.Config, &g.session, g.session.Duration())
		Check(err)
		UploadRecording(g.username, &g.session, data, gifData)
	}
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func (g *Gui) startPlayback() {
	g.width = g.session.Width
	g.height = g.session.Height
	g.density = g.session.Density
	g.resetAnimation(g.session.Anim)
	g.player.Schedule(g.loop)
	// Apply whatever happened at time 0, without counting it as a frame.
	g.step(0)
	g.frameIdx = 0
}

// seekPlayback replays the session from the start up to frame targetFrameIdx.
// There is no way back in time other than starting over.
func (g *Gui) seekPlayback(targetFrameIdx int64) {
	g.startPlayback()
	dt := frameDuration()
	for g.frameIdx < targetFrameIdx {
		g.step(dt)
	}
}

func (g *Gui) UpdatePlayback() {
	nFrames := g.session.Duration()/frameDuration() + 1

	if g.JustPressed(ebiten.KeySpace) {
		g.playbackPaused = !g.playbackPaused
	}

	targetFrameIdx := g.frameIdx
	if g.JustPressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= 60
	} else if g.JustPressed(ebiten.KeyLeft) {
		targetFrameIdx--
	}
	if g.JustPressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += 60
	} else if g.JustPressed(ebiten.KeyRight) {
		targetFrameIdx++
	}
	if g.JustPressed(ebiten.KeyR) {
		targetFrameIdx = 0
	}
	targetFrameIdx = max(min(targetFrameIdx, nFrames-1), 0)

	if targetFrameIdx < g.frameIdx {
		g.seekPlayback(targetFrameIdx)
	} else {
		for g.frameIdx < targetFrameIdx {
			g.step(frameDuration())
		}
	}

	if !g.playbackPaused && g.frameIdx < nFrames-1 {
		g.step(frameDuration())
	}
}
