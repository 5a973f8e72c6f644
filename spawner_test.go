package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type spawn struct {
	at    int64
	angle float64
}

func newTestSpawner() (*ManualClock, *Loop, *Spawner, *[]spawn) {
	var clock ManualClock
	loop := NewLoop(&clock)
	s := NewSpawner(loop, DefaultAnimConfig())
	spawns := &[]spawn{}
	s.OnSpawn = func(angle float64) {
		*spawns = append(*spawns, spawn{loop.Now(), angle})
	}
	return &clock, loop, s, spawns
}

func TestSpawner_OneCycle(t *testing.T) {
	clock, loop, s, spawns := newTestSpawner()
	assert.Equal(t, SpawnerIdle, s.State())

	s.Start()
	assert.Equal(t, SpawnerArmed, s.State())
	for clock.T = 0; clock.T < 1800; clock.T += 16 {
		loop.Advance()
	}
	assert.Equal(t, []spawn{
		{0, 0}, {300, 10}, {600, 20}, {900, 30}, {1200, 40}, {1500, 50},
	}, *spawns)
	assert.Equal(t, int64(6), s.Ticks())
	assert.Equal(t, SpawnerArmed, s.State())

	clock.Set(1800)
	loop.Advance()
	assert.Equal(t, SpawnerCooldown, s.State())
	assert.Len(t, *spawns, 6)
}

func TestSpawner_UnevenCycle(t *testing.T) {
	var clock ManualClock
	loop := NewLoop(&clock)
	cfg := DefaultAnimConfig()
	cfg.CycleWindow = 1700
	s := NewSpawner(loop, cfg)
	var angles []float64
	s.OnSpawn = func(angle float64) { angles = append(angles, angle) }

	s.Start()
	clock.Set(1699)
	loop.Advance()
	// At 1500 only 200 are left, not enough for a tick.
	assert.Equal(t, []float64{0, 10, 20, 30, 40}, angles)
	assert.Equal(t, SpawnerArmed, s.State())

	clock.Set(1700)
	loop.Advance()
	assert.Equal(t, SpawnerCooldown, s.State())
	assert.Equal(t, int64(5), s.Ticks())
}

func TestSpawner_RestartsAfterCooldown(t *testing.T) {
	clock, loop, s, spawns := newTestSpawner()
	s.Start()

	// Nothing spawns during the cooldown.
	clock.Set(3799)
	loop.Advance()
	assert.Len(t, *spawns, 6)
	assert.Equal(t, SpawnerCooldown, s.State())

	// Without an OnRestart hook, the Spawner restarts itself.
	clock.Set(3800)
	loop.Advance()
	require.Len(t, *spawns, 7)
	assert.Equal(t, spawn{3800, 0}, (*spawns)[6])
	assert.Equal(t, SpawnerArmed, s.State())
	assert.Equal(t, int64(1), s.Ticks())
	assert.Equal(t, int64(2), s.Cycles())

	// The second cycle repeats the angles of the first one.
	clock.Set(3800 + 1500)
	loop.Advance()
	require.Len(t, *spawns, 12)
	for i := range 6 {
		assert.Equal(t, float64(i*10), (*spawns)[6+i].angle)
		assert.Equal(t, int64(3800+i*300), (*spawns)[6+i].at)
	}
}

func TestSpawner_OnRestartHook(t *testing.T) {
	clock, loop, s, _ := newTestSpawner()
	restarts := 0
	s.OnRestart = func() {
		restarts++
		s.Start()
	}
	s.Start()
	clock.Set(3800*3 - 1)
	loop.Advance()
	assert.Equal(t, 2, restarts)
}

func TestSpawner_StopCancelsTicks(t *testing.T) {
	clock, loop, s, spawns := newTestSpawner()
	s.Start()
	clock.Set(650)
	loop.Advance()
	assert.Len(t, *spawns, 3)

	s.Stop()
	assert.Equal(t, SpawnerIdle, s.State())
	clock.Set(100000)
	loop.Advance()
	assert.Len(t, *spawns, 3)
	assert.Equal(t, 0, loop.Pending())
}

func TestSpawner_StopCancelsPendingRestart(t *testing.T) {
	clock, loop, s, spawns := newTestSpawner()
	s.Start()
	clock.Set(2500)
	loop.Advance()
	require.Equal(t, SpawnerCooldown, s.State())
	require.Equal(t, 1, loop.Pending())

	s.Stop()
	assert.Equal(t, 0, loop.Pending())
	clock.Set(100000)
	loop.Advance()
	assert.Len(t, *spawns, 6)
	assert.Equal(t, SpawnerIdle, s.State())
}

func TestSpawner_StartWhileArmedResets(t *testing.T) {
	clock, loop, s, spawns := newTestSpawner()
	s.Start()
	clock.Set(700)
	loop.Advance()
	assert.Equal(t, int64(3), s.Ticks())

	s.Start()
	assert.Equal(t, int64(0), s.Ticks())
	loop.Advance()
	// The new cycle starts at 700 with angle 0 again and only one
	// count-down is running.
	assert.Equal(t, spawn{700, 0}, (*spawns)[3])
	assert.Equal(t, 1, loop.Pending())
}

func TestSpawnerState_String(t *testing.T) {
	assert.Equal(t, "Idle", SpawnerIdle.String())
	assert.Equal(t, "Armed", SpawnerArmed.String())
	assert.Equal(t, "Cooldown", SpawnerCooldown.String())
	assert.Equal(t, "Unknown", SpawnerState(42).String())
}
