package main

import (
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// SessionVersion is the version of the format in which sessions are saved.
// It must change whenever a change to Session or SessionEvent would make old
// recordings replay differently (or not load at all).
const SessionVersion = 1

type SessionEventKind string

const (
	EventStart      SessionEventKind = "Start"
	EventStop       SessionEventKind = "Stop"
	EventSetMinSize SessionEventKind = "SetMinSize"
	EventSetMaxSize SessionEventKind = "SetMaxSize"
	EventResize     SessionEventKind = "Resize"
)

// SessionEvent is something the user did to the animation, At milliseconds
// after the session started.
type SessionEvent struct {
	At     int64            `yaml:"At"`
	Kind   SessionEventKind `yaml:"Kind"`
	Value  float64          `yaml:"Value,omitempty"`
	Width  int              `yaml:"Width,omitempty"`
	Height int              `yaml:"Height,omitempty"`
}

// Session is everything needed to replay what the user saw: the starting
// conditions and every control event, with its time. Given a Session, the
// animation is fully determined.
type Session struct {
	SessionVersion int64          `yaml:"SessionVersion"`
	ReleaseVersion int64          `yaml:"ReleaseVersion"`
	Id             uuid.UUID      `yaml:"Id"`
	Width          int            `yaml:"Width"`
	Height         int            `yaml:"Height"`
	Density        float64        `yaml:"Density"`
	Anim           AnimConfig     `yaml:"Anim"`
	Events         []SessionEvent `yaml:"Events"`
}

func NewSession(width, height int, density float64, anim AnimConfig) Session {
	return Session{
		SessionVersion: SessionVersion,
		ReleaseVersion: ReleaseVersion,
		Id:             uuid.New(),
		Width:          width,
		Height:         height,
		Density:        density,
		Anim:           anim,
	}
}

// Record appends an event. Events must be recorded in chronological order.
func (s *Session) Record(ev SessionEvent) {
	if n := len(s.Events); n > 0 && ev.At < s.Events[n-1].At {
		ev.At = s.Events[n-1].At
	}
	s.Events = append(s.Events, ev)
}

// Duration is how long it takes for the session to play out completely: the
// last event plus enough time for the polygons spawned around it to expire.
func (s *Session) Duration() int64 {
	var last int64
	if n := len(s.Events); n > 0 {
		last = s.Events[n-1].At
	}
	return last + s.Anim.CycleWindow + s.Anim.TotalDuration
}

func (s *Session) Clone() *Session {
	clone := *s
	clone.Events = slices.Clone(s.Events)
	return &clone
}

func (s *Session) Serialize() ([]byte, error) {
	return yaml.Marshal(s)
}

func DeserializeSession(data []byte) (s Session, err error) {
	if err = yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing session: %w", err)
	}
	if s.SessionVersion != SessionVersion {
		return s, fmt.Errorf("can't load this session - we are at "+
			"SessionVersion %d and the session was recorded with "+
			"SessionVersion %d", SessionVersion, s.SessionVersion)
	}
	if err = s.Anim.Validate(); err != nil {
		return s, fmt.Errorf("session has an invalid animation config: %w",
			err)
	}
	return s, nil
}

// SessionPlayer feeds the events of a Session to an Animator, on time.
type SessionPlayer struct {
	Session *Session
	Anim    *Animator
	// OnResize is called for Resize events, before the shape is invalidated.
	OnResize func(width, height int)

	timers []Timer
	nDone  int
}

// Schedule arranges for every event to be applied At milliseconds from now.
func (p *SessionPlayer) Schedule(timers Timers) {
	p.Cancel()
	for _, ev := range p.Session.Events {
		p.timers = append(p.timers, timers.ScheduleOnce(ev.At, func() {
			p.Apply(ev)
		}))
	}
}

func (p *SessionPlayer) Cancel() {
	for _, t := range p.timers {
		t.Cancel()
	}
	p.timers = p.timers[:0]
	p.nDone = 0
}

// Done returns how many events were applied so far.
func (p *SessionPlayer) Done() int {
	return p.nDone
}

func (p *SessionPlayer) Apply(ev SessionEvent) {
	p.nDone++
	switch ev.Kind {
	case EventStart:
		p.Anim.StartAnim()
	case EventStop:
		p.Anim.StopAnim()
	case EventSetMinSize:
		Check(p.Anim.SetMinSizeInGroup(ev.Value))
	case EventSetMaxSize:
		Check(p.Anim.SetMaxSizeInGroup(ev.Value))
	case EventResize:
		if p.OnResize != nil {
			p.OnResize(ev.Width, ev.Height)
		}
		p.Anim.InvalidateShape()
	default:
		Check(fmt.Errorf("unknown session event: %q", ev.Kind))
	}
}
