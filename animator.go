package main

import (
	"fmt"
	"log/slog"
)

// Pose is where a polygon is in its animation at a given age.
type Pose struct {
	Scale    float64
	Rotation float64 // degrees, clockwise
	Alpha    uint8
}

// Animator spawns polygons through a Spawner, animates them and retires them
// once they are older than TotalDuration. It draws on a Surface and never
// blocks: hosts call RenderPass whenever the Surface had a redraw requested.
type Animator struct {
	Pool Pool
	// OnSpawn, if set, is called after a polygon joins the pool.
	OnSpawn func(p Polygon)

	surface   Surface
	timers    Timers
	cfg       AnimConfig
	spawner   *Spawner
	animating bool
	shape     *Shape
}

func NewAnimator(surface Surface, timers Timers, cfg AnimConfig) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid animation config: %w", err)
	}
	return &Animator{
		surface: surface,
		timers:  timers,
		cfg:     cfg,
	}, nil
}

// StartAnim (re)starts the animation from scratch: live polygons are dropped
// and a new spawn cycle begins.
func (a *Animator) StartAnim() {
	if a.spawner == nil {
		a.spawner = NewSpawner(a.timers, a.cfg)
		a.spawner.OnSpawn = a.spawn
		a.spawner.OnRestart = a.StartAnim
	}
	a.animating = true
	a.Pool.Clear()
	a.spawner.Start()
	slog.Debug("animation started", "cycle", a.spawner.Cycles())
	a.surface.RequestRedraw()
}

// StopAnim stops spawning. Polygons already on screen keep animating until
// they expire.
func (a *Animator) StopAnim() {
	a.animating = false
	if a.spawner != nil {
		a.spawner.Stop()
	}
	slog.Debug("animation stopped", "live", a.Pool.Len())
}

func (a *Animator) IsAnimating() bool {
	return a.animating
}

// TickCount returns the number of polygons spawned in the current cycle.
func (a *Animator) TickCount() int64 {
	if a.spawner == nil {
		return 0
	}
	return a.spawner.Ticks()
}

func (a *Animator) SpawnerState() SpawnerState {
	if a.spawner == nil {
		return SpawnerIdle
	}
	return a.spawner.State()
}

func (a *Animator) Config() AnimConfig {
	return a.cfg
}

func (a *Animator) SetMinSizeInGroup(size float64) error {
	if size > a.cfg.MaxSizeInGroup {
		return fmt.Errorf("min size %v is larger than max size %v", size,
			a.cfg.MaxSizeInGroup)
	}
	a.cfg.MinSizeInGroup = size
	return nil
}

func (a *Animator) SetMaxSizeInGroup(size float64) error {
	if size < a.cfg.MinSizeInGroup {
		return fmt.Errorf("max size %v is smaller than min size %v", size,
			a.cfg.MinSizeInGroup)
	}
	a.cfg.MaxSizeInGroup = size
	return nil
}

// InvalidateShape drops the cached shape. The next render pass builds a new
// one from the current size of the surface.
func (a *Animator) InvalidateShape() {
	a.shape = nil
}

// Shape returns the cached shape, or nil if no render pass built one yet.
func (a *Animator) Shape() *Shape {
	return a.shape
}

func (a *Animator) spawn(startAngle float64) {
	p := Polygon{CreatedAt: a.surface.Now(), StartAngle: startAngle}
	a.Pool.Add(p)
	Assertf(a.Pool.Len() <= a.cfg.MaxLivePolygons(),
		"%d live polygons, at most %d expected", a.Pool.Len(),
		a.cfg.MaxLivePolygons())
	if a.OnSpawn != nil {
		a.OnSpawn(p)
	}
	a.surface.RequestRedraw()
}

// Pose computes the scale, rotation and opacity of p after elapsed
// milliseconds.
func (a *Animator) Pose(p Polygon, elapsed int64) Pose {
	c := &a.cfg
	elapsed = max(elapsed, 0)

	var scale float64
	if elapsed >= c.ScaleDuration {
		scale = c.MaxSizeInGroup
	} else {
		progress := float64(elapsed) / float64(c.ScaleDuration)
		scale = (c.MaxSizeInGroup-c.MinSizeInGroup)*Ease(progress) +
			c.MinSizeInGroup
	}

	progress := min(float64(elapsed)/float64(c.TotalDuration), 1)
	eased := Ease(progress)
	rotation := (c.EndDegree-p.StartAngle)*eased + p.StartAngle
	alpha := int(255 - eased*255)
	alpha = max(min(alpha, 255), 0)

	return Pose{Scale: scale, Rotation: rotation, Alpha: uint8(alpha)}
}

func (a *Animator) buildShape() bool {
	w, h := a.surface.Width(), a.surface.Height()
	if w <= 0 || h <= 0 {
		return false
	}
	a.shape = NewShape(ShapeParams{
		SurfaceWidth:   w,
		Density:        a.surface.Density(),
		From:           a.surface.Color(ColorGradientFrom),
		To:             a.surface.Color(ColorGradientTo),
		StrokeWidth:    a.cfg.StrokeWidth,
		CornerRadiusDp: a.cfg.CornerRadiusDp,
	})
	slog.Debug("built shape", "width", w, "side", a.shape.Side,
		"cornerRadius", a.shape.CornerRadius)
	return true
}

// RenderPass draws every live polygon as it looks at time now, oldest first,
// and retires the ones that expired. It asks for another pass as long as
// something is still going on.
func (a *Animator) RenderPass(now int64) {
	if !a.animating && a.Pool.Len() == 0 {
		return
	}

	// Expired polygons go away even when nothing can be drawn.
	a.Pool.Retain(func(p Polygon) bool {
		return p.Age(now) < a.cfg.TotalDuration
	})

	w, h := a.surface.Width(), a.surface.Height()
	if w <= 0 || h <= 0 || (a.shape == nil && !a.buildShape()) {
		// Not laid out yet.
		if a.Pool.Len() > 0 || a.animating {
			a.surface.RequestRedraw()
		}
		return
	}

	cx, cy := float64(w)/2, float64(h)/2
	for _, p := range a.Pool.Polygons {
		pose := a.Pose(p, p.Age(now))
		a.surface.DrawShape(a.shape, pose.Alpha, Transform{
			X:        cx,
			Y:        cy,
			Scale:    pose.Scale,
			Rotation: pose.Rotation,
		})
	}

	if a.Pool.Len() > 0 || a.animating {
		a.surface.RequestRedraw()
	}
}
