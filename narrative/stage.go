package narrative

import "time"

// Stage identifies one presentation stage of the sequence
type Stage int

const (
	StageNone Stage = iota
	StageIntro
	StageMainMenu
	StageUniverseExploration
	StageHeartReveal
	StageMessage
	StageFinal
)

var stageNames = [...]string{
	StageNone:                "None",
	StageIntro:               "Intro",
	StageMainMenu:            "MainMenu",
	StageUniverseExploration: "UniverseExploration",
	StageHeartReveal:         "HeartReveal",
	StageMessage:             "Message",
	StageFinal:               "Final",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "Unknown"
	}
	return stageNames[s]
}

// Next returns the only stage reachable from s
func (s Stage) Next() (Stage, bool) {
	if s < StageNone || s >= StageFinal {
		return s, false
	}
	return s + 1, true
}

// Stages lists every real stage in sequence order
func Stages() []Stage {
	return []Stage{StageIntro, StageMainMenu, StageUniverseExploration, StageHeartReveal, StageMessage, StageFinal}
}

// ParseStage resolves a stage by its name
func ParseStage(name string) (Stage, bool) {
	for _, s := range Stages() {
		if s.String() == name {
			return s, true
		}
	}
	return StageNone, false
}

// Cause records what fired a transition
type Cause string

const (
	CauseStart     Cause = "start"
	CauseUnlock    Cause = "unlock"
	CauseProceed   Cause = "proceed"
	CauseThreshold Cause = "threshold"
	CauseTimer     Cause = "timer"
	CauseTap       Cause = "tap"
)

// Transition describes one forward step
type Transition struct {
	From  Stage
	To    Stage
	Cause Cause
	At    time.Time
}

// Cue names for in-stage timed effects
const (
	CueRevealComplete = "reveal-complete"
	CueExplosion      = "explosion"
)
