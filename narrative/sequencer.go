package narrative

import (
	"log/slog"
	"sort"
	"time"

	"github.com/lixenwraith/starlock/core"
	"github.com/lixenwraith/starlock/event"
	"github.com/lixenwraith/starlock/parameter"
)

// Surface is a host screen whose visibility the sequencer owns
type Surface interface {
	Show()
	Hide()
}

// ScaleProbe exposes the camera state the threshold check reads each tick
type ScaleProbe interface {
	Scale() float64
	LastZoomSource() event.ZoomSource
}

// Hooks receive sequencer notifications on the loop goroutine
type Hooks struct {
	OnEnter func(tr Transition)
	OnCue   func(stage Stage, cue string)
}

// Options configures a Sequencer
type Options struct {
	Clock     core.TimeProvider
	Script    *Script
	Threshold float64
	// Triggers limits which zoom gestures may cross the reveal threshold, empty allows all
	Triggers []event.ZoomSource
	Surfaces map[Stage]Surface
	Logger   *slog.Logger
}

type timerKind int

const (
	timerAdvance timerKind = iota
	timerCue
)

// stageTimer fires only while its origin stage is still active
type stageTimer struct {
	name   string
	kind   timerKind
	origin Stage
	due    time.Time
}

// Sequencer is the forward-only stage machine
type Sequencer struct {
	clock     core.TimeProvider
	script    *Script
	threshold float64
	triggers  map[event.ZoomSource]bool
	surfaces  map[Stage]Surface
	logger    *slog.Logger

	stage   Stage
	entered time.Time
	fired   [StageFinal + 1]bool
	latched bool
	timers  []stageTimer
	hooks   []Hooks
}

// New creates a sequencer in StageNone, call Start to enter Intro
func New(opts Options) *Sequencer {
	s := &Sequencer{
		clock:     opts.Clock,
		script:    opts.Script,
		threshold: opts.Threshold,
		surfaces:  opts.Surfaces,
		logger:    opts.Logger,
	}
	if s.clock == nil {
		s.clock = core.NewMonotonicTimeProvider()
	}
	if s.script == nil {
		s.script = DefaultScript()
	}
	if s.threshold <= 0 {
		s.threshold = parameter.RevealThreshold
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.surfaces == nil {
		s.surfaces = make(map[Stage]Surface)
	}
	s.SetTriggers(opts.Triggers)
	return s
}

// Subscribe registers notification hooks
func (s *Sequencer) Subscribe(h Hooks) {
	s.hooks = append(s.hooks, h)
}

// SetThreshold changes the reveal threshold, ignored after the reveal latched
func (s *Sequencer) SetThreshold(threshold float64) {
	if threshold > 0 && !s.latched {
		s.threshold = threshold
	}
}

// Threshold returns the reveal scale threshold
func (s *Sequencer) Threshold() float64 {
	return s.threshold
}

// SetTriggers replaces the set of zoom sources allowed to fire the reveal
func (s *Sequencer) SetTriggers(triggers []event.ZoomSource) {
	s.triggers = make(map[event.ZoomSource]bool, len(triggers))
	for _, t := range triggers {
		s.triggers[t] = true
	}
}

// Stage returns the active stage
func (s *Sequencer) Stage() Stage {
	return s.stage
}

// Elapsed returns clock time spent in the active stage
func (s *Sequencer) Elapsed() time.Duration {
	if s.stage == StageNone {
		return 0
	}
	return s.clock.Now().Sub(s.entered)
}

// Script returns the narrative script in use
func (s *Sequencer) Script() *Script {
	return s.script
}

// Start enters Intro, later calls are ignored
func (s *Sequencer) Start() {
	if s.stage == StageNone {
		s.advance(StageNone, CauseStart)
	}
}

// Unlock is the fire-once signal from the unlock gesture
func (s *Sequencer) Unlock() {
	s.advance(StageIntro, CauseUnlock)
}

// Proceed confirms the main menu
func (s *Sequencer) Proceed() {
	s.advance(StageMainMenu, CauseProceed)
}

// Tap skips the remaining message hold
func (s *Sequencer) Tap() {
	s.advance(StageMessage, CauseTap)
}

// Update runs the per-tick checks: reveal threshold first, then due stage timers
func (s *Sequencer) Update(probe ScaleProbe) {
	if s.stage == StageUniverseExploration && !s.latched && probe != nil {
		if probe.Scale() < s.threshold && s.triggerAllowed(probe.LastZoomSource()) {
			s.latched = true
			s.advance(StageUniverseExploration, CauseThreshold)
		}
	}

	s.runTimers()
}

// HandleEvent routes narrative commands from the event queue
func (s *Sequencer) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventUnlock:
		s.Unlock()
	case event.EventProceed:
		s.Proceed()
	case event.EventTap:
		s.Tap()
	}
}

// EventTypes implements event.Handler
func (s *Sequencer) EventTypes() []event.EventType {
	return []event.EventType{event.EventUnlock, event.EventProceed, event.EventTap}
}

// PendingTimers returns the names of timers still waiting, for the status line and tests
func (s *Sequencer) PendingTimers() []string {
	names := make([]string, 0, len(s.timers))
	for _, t := range s.timers {
		if t.origin == s.stage {
			names = append(names, t.name)
		}
	}
	return names
}

func (s *Sequencer) triggerAllowed(src event.ZoomSource) bool {
	if len(s.triggers) == 0 {
		return true
	}
	return s.triggers[src]
}

// advance moves from the expected stage to its successor exactly once
func (s *Sequencer) advance(from Stage, cause Cause) bool {
	if s.stage != from {
		return false
	}
	to, ok := from.Next()
	if !ok || s.fired[to] {
		return false
	}
	s.fired[to] = true

	now := s.clock.Now()
	if surf := s.surfaces[from]; surf != nil {
		surf.Hide()
	}
	s.stage = to
	s.entered = now
	if surf := s.surfaces[to]; surf != nil {
		surf.Show()
	}

	s.scheduleStageTimers(to, now)

	s.logger.Info("stage transition", "from", from, "to", to, "cause", string(cause))

	tr := Transition{From: from, To: to, Cause: cause, At: now}
	for _, h := range s.hooks {
		if h.OnEnter != nil {
			h.OnEnter(tr)
		}
	}
	return true
}

func (s *Sequencer) scheduleStageTimers(stage Stage, now time.Time) {
	t := s.script.Timing
	switch stage {
	case StageHeartReveal:
		s.addTimer(CueRevealComplete, timerCue, stage, now.Add(t.RevealAnimation.Std()))
		s.addTimer("reveal-hold", timerAdvance, stage, now.Add(t.RevealAnimation.Std()+t.RevealHold.Std()))
	case StageMessage:
		s.addTimer(CueExplosion, timerCue, stage, now.Add(t.ExplosionDelay.Std()))
		s.addTimer("message-hold", timerAdvance, stage, now.Add(t.MessageHold.Std()))
	}
}

func (s *Sequencer) addTimer(name string, kind timerKind, origin Stage, due time.Time) {
	s.timers = append(s.timers, stageTimer{name: name, kind: kind, origin: origin, due: due})
	sort.SliceStable(s.timers, func(i, j int) bool { return s.timers[i].due.Before(s.timers[j].due) })
}

// runTimers fires due timers in due order, discarding any whose origin stage has ended
func (s *Sequencer) runTimers() {
	now := s.clock.Now()
	for len(s.timers) > 0 {
		t := s.timers[0]
		if t.origin != s.stage {
			s.timers = s.timers[1:]
			s.logger.Debug("stale stage timer dropped", "timer", t.name, "origin", t.origin, "stage", s.stage)
			continue
		}
		if now.Before(t.due) {
			return
		}
		s.timers = s.timers[1:]

		switch t.kind {
		case timerCue:
			s.logger.Debug("stage cue", "stage", t.origin, "cue", t.name)
			for _, h := range s.hooks {
				if h.OnCue != nil {
					h.OnCue(t.origin, t.name)
				}
			}
		case timerAdvance:
			s.advance(t.origin, CauseTimer)
		}
	}
}
