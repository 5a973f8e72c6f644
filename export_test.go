package main

import (
	"bytes"
	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

func testExportConfig(t *testing.T) *Config {
	return &Config{
		Anim:       DefaultAnimConfig(),
		StartState: "Export",
		Colors: map[string]string{
			ColorGradientFrom: "#FF4F8B",
			ColorGradientTo:   "#4FC3F7",
		},
		Background:     "#101018",
		ExportDir:      filepath.Join(t.TempDir(), "exports"),
		ExportWidth:    120,
		ExportHeight:   90,
		ExportDensity:  1,
		ExportFps:      20,
		ExportDuration: 1000,
	}
}

func TestExportPalette(t *testing.T) {
	p := ExportPalette(gg.Hex("#FF0000"), gg.Hex("#0000FF"), gg.Hex("#000000"))
	assert.Len(t, p, 256)
	assert.Equal(t, gg.Hex("#000000").Color(), p[0])
	assert.Equal(t, gg.Hex("#FF0000").Color(), p[15])
	assert.Equal(t, gg.Hex("#0000FF").Color(), p[255])
}

func TestRenderFrames(t *testing.T) {
	cfg := testExportConfig(t)
	var times []int64
	lit := 0
	err := RenderFrames(cfg, nil, 1000, func(t int64, img *image.RGBA) {
		times = append(times, t)
		for i := 0; i < len(img.Pix); i += 4 {
			if img.Pix[i] > 0x40 {
				lit++
				break
			}
		}
	})
	require.NoError(t, err)
	require.Len(t, times, 20)
	assert.Equal(t, int64(0), times[0])
	assert.Equal(t, int64(950), times[19])
	// Every frame shows at least one polygon.
	assert.Equal(t, 20, lit)
}

func TestRenderFrames_InvalidAnim(t *testing.T) {
	cfg := testExportConfig(t)
	cfg.Anim.MinSizeInGroup = 5
	err := RenderFrames(cfg, nil, 1000, func(int64, *image.RGBA) {})
	assert.Error(t, err)
}

func TestEncodeGif(t *testing.T) {
	cfg := testExportConfig(t)
	data, err := EncodeGif(cfg, nil, 500)
	require.NoError(t, err)

	g, err := gif.DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, g.Image, 10)
	assert.Equal(t, 5, g.Delay[0])
	assert.Equal(t, 120, g.Config.Width)
	assert.Equal(t, 90, g.Config.Height)
}

func TestExport_Session(t *testing.T) {
	cfg := testExportConfig(t)
	s := NewSession(80, 80, 1, DefaultAnimConfig())
	s.Record(SessionEvent{At: 0, Kind: EventStart})
	s.Record(SessionEvent{At: 200, Kind: EventStop})

	path := Export(cfg, &s)
	assert.Equal(t, filepath.Join(cfg.ExportDir, s.Id.String()+".gif"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	g, err := gif.DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	// The session lasts 200 + 1800 + 2240 ms, at 20 fps.
	assert.Len(t, g.Image, int((200+1800+2240+49)/50))
}

func TestEncodeGif_ResizeKeepsExportSize(t *testing.T) {
	cfg := testExportConfig(t)
	s := NewSession(80, 80, 1, DefaultAnimConfig())
	s.Record(SessionEvent{At: 0, Kind: EventStart})
	s.Record(SessionEvent{At: 100, Kind: EventResize, Width: 300, Height: 200})

	data, err := EncodeGif(cfg, &s, 500)
	require.NoError(t, err)
	g, err := gif.DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	for _, img := range g.Image {
		assert.Equal(t, image.Rect(0, 0, 120, 90), img.Bounds())
	}
}
