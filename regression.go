package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// StateBytes is an array of bytes that represents the state of the animation
// as perceived by the outside: which polygons are alive, what the spawner is
// doing and whether the animation is running. Two Animators with the same
// StateBytes() are considered the same, no matter how they are implemented.
func (a *Animator) StateBytes() []byte {
	buf := new(bytes.Buffer)
	write := func(v any) { Check(binary.Write(buf, binary.LittleEndian, v)) }
	write(a.animating)
	write(int64(a.SpawnerState()))
	write(a.TickCount())
	write(int64(a.Pool.Len()))
	for _, p := range a.Pool.Polygons {
		write(p.CreatedAt)
		write(p.StartAngle)
	}
	return buf.Bytes()
}

// drawBytes is what a render pass put on screen.
func drawBytes(calls []DrawCall) []byte {
	buf := new(bytes.Buffer)
	write := func(v any) { Check(binary.Write(buf, binary.LittleEndian, v)) }
	write(int64(len(calls)))
	for _, c := range calls {
		write(c.Alpha)
		write(c.Transform)
		write(c.Shape.Side)
		write(c.Shape.HalfHeight)
		write(c.Shape.CornerRadius)
	}
	return buf.Bytes()
}

// RegressionId replays a session frame by frame, step milliseconds apart, and
// returns a hash of the state of the animation and of the draw calls at every
// frame. It is meant to check that a change to the implementation didn't
// change what the user gets to see:
// - Compute the RegressionId for a session.
// - Change the implementation.
// - Compute the RegressionId for the same session. If it changed, so did the
// animation.
func RegressionId(s *Session, step int64) string {
	hash := sha256.New()

	var clock ManualClock
	loop := NewLoop(&clock)
	surface := NewHeadlessSurface(loop, s.Width, s.Height)
	surface.Dens = s.Density
	a, err := NewAnimator(surface, loop, s.Anim)
	Check(err)
	player := SessionPlayer{
		Session: s,
		Anim:    a,
		OnResize: func(width, height int) {
			surface.W = width
			surface.H = height
		},
	}
	player.Schedule(loop)

	end := s.Duration()
	for t := int64(0); t <= end; t += max(step, 1) {
		clock.Set(t)
		surface.Calls = surface.Calls[:0]
		surface.Frame(a)
		hash.Write(a.StateBytes())
		hash.Write(drawBytes(surface.Calls))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
