package main

import (
	"embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ReleaseVersion is the version of an executable built and given to someone,
// either as a native executable or a .wasm on the browser. It is a unique
// label for what the user is presented with.
// ReleaseVersion must change every time a new executable is built and sent to
// someone, and whenever SessionVersion changes.
// Recorded sessions carry the ReleaseVersion that recorded them, so that an
// upload can always be traced back to the build that produced it.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type GuiState int64

const (
	Play GuiState = iota
	Playback
)

// Gui is the window host. It drives the animation with a manual clock that
// moves by one tick's worth of milliseconds per Update, so a recorded session
// replays exactly as it was seen.
type Gui struct {
	Config
	FSys            FS
	state           GuiState
	devModeEnabled  bool
	clock           ManualClock
	loop            *Loop
	anim            *Animator
	session         Session
	player          SessionPlayer
	palette         map[string]gg.RGBA
	calls           []DrawCall
	redraw          bool
	width           int
	height          int
	density         float64
	sprite          *ebiten.Image
	spriteCenter    float64
	spriteShape     *Shape
	defaultFont     font.Face
	pressedKeys     []ebiten.Key
	justPressedKeys []ebiten.Key
	playbackPaused  bool
	frameIdx        int64
	username        string
	folderWatcher   FolderWatcher
}

func main() {
	var g Gui
	g.username = getUsername()
	g.density = 1

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Take the initial timestamps, so that the first check doesn't
		// reload what was just loaded.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()
	SetupLogging(g.SlogLevel())

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	var err error
	switch g.StartState {
	case "Play":
		g.state = Play
		g.session = NewSession(0, 0, g.density, g.Anim)
		g.resetAnimation(g.Anim)
		g.apply(SessionEvent{Kind: EventStart})
	case "Playback":
		g.state = Playback
		g.ShowDebug = true
		g.session, err = DeserializeSession(ReadFile(g.PlaybackFile))
		Check(err)
		g.startPlayback()
	case "Export":
		var session *Session
		if g.PlaybackFile != "" {
			s, err := DeserializeSession(ReadFile(g.PlaybackFile))
			Check(err)
			session = &s
		}
		fmt.Println(Export(&g.Config, session))
		return
	case "Terminal":
		Check(RunTerminal(&g.Config))
		return
	default:
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	ebiten.SetWindowSize(g.WindowSize, g.WindowSize)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("polygon pulse")
	// RunGame returns nil when Update returns ebiten.Termination.
	err = ebiten.RunGame(&g)
	Check(err)
}

// SetupLogging sends the logs of the program, and those of the rasterizer,
// to stderr.
func SetupLogging(level slog.Level) {
	logger := slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gg.SetLogger(logger)
}

// resetAnimation throws away the current loop and animator and creates new
// ones, with the clock at 0.
func (g *Gui) resetAnimation(anim AnimConfig) {
	g.clock.Set(0)
	g.loop = NewLoop(&g.clock)
	var err error
	g.anim, err = NewAnimator(g, g.loop, anim)
	Check(err)
	g.calls = g.calls[:0]
	g.redraw = false
	g.frameIdx = 0
	g.player = SessionPlayer{
		Session: &g.session,
		Anim:    g.anim,
		OnResize: func(width, height int) {
			g.width = width
			g.height = height
		},
	}
}

// Surface, as seen by the Animator.

func (g *Gui) Width() int       { return g.width }
func (g *Gui) Height() int      { return g.height }
func (g *Gui) Density() float64 { return g.density }
func (g *Gui) Now() int64       { return g.loop.Now() }
func (g *Gui) RequestRedraw()   { g.redraw = true }

func (g *Gui) Color(name string) gg.RGBA {
	return g.palette[name]
}

func (g *Gui) DrawShape(s *Shape, alpha uint8, t Transform) {
	g.calls = append(g.calls, DrawCall{Shape: s, Alpha: alpha, Transform: t})
}
