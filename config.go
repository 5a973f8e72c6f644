package main

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
)

// AnimConfig holds everything that shapes the animation. Sizes are relative
// to the size of the surface (1.0 means the hexagon spans the full width).
// Times are in milliseconds, angles in degrees.
type AnimConfig struct {
	MinSizeInGroup float64 `yaml:"MinSizeInGroup"`
	MaxSizeInGroup float64 `yaml:"MaxSizeInGroup"`
	TotalDuration  int64   `yaml:"TotalDuration"`
	ScaleDuration  int64   `yaml:"ScaleDuration"`
	EndDegree      float64 `yaml:"EndDegree"`
	CycleWindow    int64   `yaml:"CycleWindow"`
	TickInterval   int64   `yaml:"TickInterval"`
	Cooldown       int64   `yaml:"Cooldown"`
	AngleStep      float64 `yaml:"AngleStep"`
	StrokeWidth    float64 `yaml:"StrokeWidth"`
	CornerRadiusDp float64 `yaml:"CornerRadiusDp"`
}

func DefaultAnimConfig() AnimConfig {
	return AnimConfig{
		MinSizeInGroup: 0.5,
		MaxSizeInGroup: 1,
		TotalDuration:  2240,
		ScaleDuration:  1560,
		EndDegree:      -30,
		CycleWindow:    1800,
		TickInterval:   300,
		Cooldown:       2000,
		AngleStep:      10,
		StrokeWidth:    5,
		CornerRadiusDp: 6,
	}
}

func (c *AnimConfig) Validate() error {
	if c.MinSizeInGroup > c.MaxSizeInGroup {
		return fmt.Errorf("MinSizeInGroup (%v) is larger than MaxSizeInGroup (%v)",
			c.MinSizeInGroup, c.MaxSizeInGroup)
	}
	if c.TotalDuration <= 0 {
		return fmt.Errorf("TotalDuration must be positive, got %d", c.TotalDuration)
	}
	if c.ScaleDuration <= 0 {
		return fmt.Errorf("ScaleDuration must be positive, got %d", c.ScaleDuration)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("TickInterval must be positive, got %d", c.TickInterval)
	}
	if c.CycleWindow < c.TickInterval {
		return fmt.Errorf("CycleWindow (%d) is shorter than TickInterval (%d)",
			c.CycleWindow, c.TickInterval)
	}
	if c.Cooldown < 0 {
		return fmt.Errorf("Cooldown can't be negative, got %d", c.Cooldown)
	}
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("StrokeWidth must be positive, got %v", c.StrokeWidth)
	}
	return nil
}

// MaxLivePolygons is the most polygons that can be alive at the same time.
// A polygon lives for TotalDuration and a new one appears every TickInterval.
func (c *AnimConfig) MaxLivePolygons() int {
	return int((c.TotalDuration+c.TickInterval-1)/c.TickInterval) + 1
}

// Config is what gets loaded from data/config.yaml (or data/config-dev.yaml
// in developer mode).
type Config struct {
	Anim       AnimConfig        `yaml:"Anim"`
	StartState string            `yaml:"StartState"`
	LogLevel   string            `yaml:"LogLevel"`
	Colors     map[string]string `yaml:"Colors"`
	Background string            `yaml:"Background"`
	ShowDebug  bool              `yaml:"ShowDebug"`
	WindowSize int               `yaml:"WindowSize"`

	// Sessions.
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`

	// Export.
	ExportDir        string  `yaml:"ExportDir"`
	ExportWidth      int     `yaml:"ExportWidth"`
	ExportHeight     int     `yaml:"ExportHeight"`
	ExportDensity    float64 `yaml:"ExportDensity"`
	ExportFps        int64   `yaml:"ExportFps"`
	ExportDuration   int64   `yaml:"ExportDuration"`
	UploadRecordings bool    `yaml:"UploadRecordings"`

	// Terminal.
	TermDensity     float64 `yaml:"TermDensity"`
	TermStrokeWidth float64 `yaml:"TermStrokeWidth"`
	SpawnChime      bool    `yaml:"SpawnChime"`
}

func (c *Config) Validate() error {
	if err := c.Anim.Validate(); err != nil {
		return fmt.Errorf("invalid Anim section: %w", err)
	}
	switch c.StartState {
	case "Play", "Playback", "Export", "Terminal":
	default:
		return fmt.Errorf("invalid StartState: %q", c.StartState)
	}
	for _, name := range []string{ColorGradientFrom, ColorGradientTo} {
		if _, ok := c.Colors[name]; !ok {
			return fmt.Errorf("missing color %q", name)
		}
	}
	// Uploads encode a GIF with the export settings.
	if c.StartState == "Export" || c.UploadRecordings {
		if c.ExportWidth <= 0 || c.ExportHeight <= 0 {
			return fmt.Errorf("invalid export size %dx%d", c.ExportWidth,
				c.ExportHeight)
		}
		if c.ExportFps <= 0 || c.ExportFps > 100 {
			return fmt.Errorf("ExportFps must be in (0, 100], got %d", c.ExportFps)
		}
	}
	return nil
}

func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Palette converts the hex colors of the config ("#RRGGBB" or "#RRGGBBAA").
func (c *Config) Palette() map[string]gg.RGBA {
	p := make(map[string]gg.RGBA, len(c.Colors))
	for name, hex := range c.Colors {
		p[name] = gg.Hex(hex)
	}
	return p
}

func (c *Config) BackgroundColor() gg.RGBA {
	if c.Background == "" {
		return gg.Hex("#000000")
	}
	return gg.Hex(c.Background)
}
