package main

import (
	"log/slog"
)

type SpawnerState int

const (
	SpawnerIdle SpawnerState = iota
	SpawnerArmed
	SpawnerCooldown
)

func (s SpawnerState) String() string {
	switch s {
	case SpawnerIdle:
		return "Idle"
	case SpawnerArmed:
		return "Armed"
	case SpawnerCooldown:
		return "Cooldown"
	default:
		return "Unknown"
	}
}

// Spawner paces the creation of polygons. A cycle lasts CycleWindow and
// spawns a polygon every TickInterval, starting right away. Each polygon in a
// cycle starts AngleStep degrees further than the previous one. After the
// cycle, the Spawner waits for Cooldown and then calls OnRestart, which is
// expected to start the Spawner again.
//
// Idle -> Armed -> Cooldown -> (OnRestart) -> Armed -> ... until Stop().
type Spawner struct {
	Timers       Timers
	CycleWindow  int64
	TickInterval int64
	Cooldown     int64
	AngleStep    float64
	OnSpawn      func(startAngle float64)
	OnRestart    func()

	state     SpawnerState
	tickIdx   int64
	countdown Timer
	restart   Timer
	nCycles   int64
}

func NewSpawner(timers Timers, cfg AnimConfig) *Spawner {
	return &Spawner{
		Timers:       timers,
		CycleWindow:  cfg.CycleWindow,
		TickInterval: cfg.TickInterval,
		Cooldown:     cfg.Cooldown,
		AngleStep:    cfg.AngleStep,
	}
}

// Start begins a new cycle. Whatever was pending (ticks of the current cycle
// or a restart after cooldown) is dropped and the tick count goes back to 0.
func (s *Spawner) Start() {
	s.cancelPending()
	s.tickIdx = 0
	s.state = SpawnerArmed
	s.nCycles++
	s.countdown = s.Timers.ScheduleRepeating(s.TickInterval, s.CycleWindow,
		func(int64) { s.tick() },
		s.finish)
}

// Stop cancels the current cycle and the restart after cooldown, if one is
// pending.
func (s *Spawner) Stop() {
	s.cancelPending()
	s.state = SpawnerIdle
}

func (s *Spawner) State() SpawnerState {
	return s.state
}

// Ticks returns how many polygons were spawned in the current cycle.
func (s *Spawner) Ticks() int64 {
	return s.tickIdx
}

// Cycles returns how many cycles were started since the Spawner was created.
func (s *Spawner) Cycles() int64 {
	return s.nCycles
}

func (s *Spawner) cancelPending() {
	if s.countdown != nil {
		s.countdown.Cancel()
		s.countdown = nil
	}
	if s.restart != nil {
		s.restart.Cancel()
		s.restart = nil
	}
}

func (s *Spawner) tick() {
	Assert(s.state == SpawnerArmed)
	angle := float64(s.tickIdx) * s.AngleStep
	s.tickIdx++
	if s.OnSpawn != nil {
		s.OnSpawn(angle)
	}
}

func (s *Spawner) finish() {
	s.countdown = nil
	s.state = SpawnerCooldown
	slog.Debug("spawn cycle finished", "cycle", s.nCycles, "ticks", s.tickIdx,
		"cooldown", s.Cooldown)
	s.restart = s.Timers.ScheduleOnce(s.Cooldown, func() {
		s.restart = nil
		if s.OnRestart != nil {
			s.OnRestart()
		} else {
			s.Start()
		}
	})
}
