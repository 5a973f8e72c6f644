package main

import (
	"embed"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// This repeated reading is only useful when we're not reading from the
	// embedded filesystem. When we're reading from the embedded filesystem we
	// want to crash as soon as possible. We might be in the browser, in which
	// case we want to see an error in the developer console instead of a page
	// that keeps trying to load and reports nothing.
	previousVal := CheckCrashes
	if _, embedded := g.FSys.(*embed.FS); !embedded {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		g.Config = LoadConfig(g.FSys, g.devModeEnabled)
		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal
	g.palette = g.Palette()

	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    18,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
}

// LoadConfig reads data/config.yaml, or data/config-dev.yaml in developer
// mode, on top of the default animation settings.
func LoadConfig(fsys FS, devModeEnabled bool) (cfg Config) {
	cfg.Anim = DefaultAnimConfig()
	if devModeEnabled {
		LoadYAML(fsys, "data/config-dev.yaml", &cfg)
	} else {
		LoadYAML(fsys, "data/config.yaml", &cfg)
	}
	Check(cfg.Validate())
	return
}
