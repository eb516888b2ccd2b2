package narrative

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/starlock/asset"
)

// ErrInvalidScript is returned for scripts that decode but cannot drive the sequence
var ErrInvalidScript = errors.New("invalid narrative script")

// Duration decodes Go duration strings from TOML
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Timing holds the stage delays
type Timing struct {
	RevealAnimation Duration `toml:"reveal_animation"`
	RevealHold      Duration `toml:"reveal_hold"`
	ExplosionDelay  Duration `toml:"explosion_delay"`
	MessageHold     Duration `toml:"message_hold"`
}

// Screen is the text shown while a stage is active
type Screen struct {
	Stage    string   `toml:"stage"`
	Title    string   `toml:"title"`
	Subtitle string   `toml:"subtitle,omitempty"`
	Body     []string `toml:"body,omitempty"`
	Hint     string   `toml:"hint,omitempty"`
}

// Script is the decoded narrative document
type Script struct {
	Timing  Timing   `toml:"timing"`
	Screens []Screen `toml:"screen"`
}

// ParseScript decodes and validates a TOML narrative script
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal narrative script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DefaultScript returns the embedded script
func DefaultScript() *Script {
	s, err := ParseScript([]byte(asset.DefaultNarrativeScript))
	if err != nil {
		panic(fmt.Sprintf("embedded narrative script: %v", err))
	}
	return s
}

// LoadScript loads a script file, falling back to the embedded script when path is empty
func LoadScript(path string) (*Script, error) {
	if path == "" {
		return DefaultScript(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read narrative script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks durations and stage references
func (s *Script) Validate() error {
	durations := []struct {
		name string
		d    Duration
	}{
		{"reveal_animation", s.Timing.RevealAnimation},
		{"reveal_hold", s.Timing.RevealHold},
		{"explosion_delay", s.Timing.ExplosionDelay},
		{"message_hold", s.Timing.MessageHold},
	}
	for _, d := range durations {
		if d.d < 0 {
			return fmt.Errorf("%w: timing.%s is negative", ErrInvalidScript, d.name)
		}
	}

	seen := make(map[Stage]bool)
	for i, sc := range s.Screens {
		stage, ok := ParseStage(sc.Stage)
		if !ok {
			return fmt.Errorf("%w: screen[%d] names unknown stage %q", ErrInvalidScript, i, sc.Stage)
		}
		if seen[stage] {
			return fmt.Errorf("%w: duplicate screen for stage %s", ErrInvalidScript, stage)
		}
		seen[stage] = true
	}
	return nil
}

// Screen returns the screen text for a stage
func (s *Script) Screen(stage Stage) (Screen, bool) {
	for _, sc := range s.Screens {
		if sc.Stage == stage.String() {
			return sc, true
		}
	}
	return Screen{}, false
}
