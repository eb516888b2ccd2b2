package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/starlock/event"
	"github.com/lixenwraith/starlock/parameter"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix namespaces environment overrides, e.g. STARLOCK_CAMERA_DAMPING
const EnvPrefix = "STARLOCK"

// Color modes accepted by render.color_mode
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

type CameraConfig struct {
	MinScale   float64 `mapstructure:"min_scale"`
	MaxScale   float64 `mapstructure:"max_scale"`
	Damping    float64 `mapstructure:"damping"`
	ZoomIn     float64 `mapstructure:"zoom_in"`
	ZoomOut    float64 `mapstructure:"zoom_out"`
	KeyPanStep float64 `mapstructure:"key_pan_step"`
}

type StarfieldConfig struct {
	Count  int     `mapstructure:"count"`
	Spread float64 `mapstructure:"spread"`
}

type NarrativeConfig struct {
	RevealThreshold float64  `mapstructure:"reveal_threshold"`
	RevealTriggers  []string `mapstructure:"reveal_triggers"`
	// Script is an optional TOML file replacing the embedded stage texts and delays
	Script string `mapstructure:"script"`
}

type RenderConfig struct {
	FPS       int    `mapstructure:"fps"`
	ColorMode string `mapstructure:"color_mode"`
	Glow      bool   `mapstructure:"glow"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Dir   string `mapstructure:"dir"`
}

type InputConfig struct {
	// Keymap is an optional TOML file merged over the default key table
	Keymap string `mapstructure:"keymap"`
}

// Config holds all runtime configuration.
// Values are populated from starlock.toml, STARLOCK_* env vars, and CLI flags.
type Config struct {
	Camera    CameraConfig    `mapstructure:"camera"`
	Starfield StarfieldConfig `mapstructure:"starfield"`
	Narrative NarrativeConfig `mapstructure:"narrative"`
	Render    RenderConfig    `mapstructure:"render"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Log       LogConfig       `mapstructure:"log"`
	Input     InputConfig     `mapstructure:"input"`
}

// SetDefaults registers built-in values for every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("camera.min_scale", parameter.CameraMinScale)
	v.SetDefault("camera.max_scale", parameter.CameraMaxScale)
	v.SetDefault("camera.damping", parameter.CameraDamping)
	v.SetDefault("camera.zoom_in", parameter.WheelZoomIn)
	v.SetDefault("camera.zoom_out", parameter.WheelZoomOut)
	v.SetDefault("camera.key_pan_step", parameter.KeyPanStep)

	v.SetDefault("starfield.count", parameter.StarCount)
	v.SetDefault("starfield.spread", parameter.StarSpread)

	v.SetDefault("narrative.reveal_threshold", parameter.RevealThreshold)
	v.SetDefault("narrative.reveal_triggers", []string{})
	v.SetDefault("narrative.script", "")

	v.SetDefault("render.fps", parameter.FrameRate)
	v.SetDefault("render.color_mode", ColorAuto)
	v.SetDefault("render.glow", true)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.AudioMasterVolume)

	v.SetDefault("log.debug", false)
	v.SetDefault("log.dir", parameter.LogDir)

	v.SetDefault("input.keymap", "")
}

// New returns a viper instance with defaults and environment binding
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (explicit path, or starlock.toml in the working
// directory or user config dir) and decodes the merged result.
// A missing default config file is not an error; a missing explicit one is.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("starlock")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "starlock"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return Decode(v)
}

// Decode unmarshals and validates the current viper state
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	cam := c.Camera
	switch {
	case cam.MinScale <= 0:
		return fmt.Errorf("%w: camera.min_scale must be > 0, got %v", ErrInvalidConfig, cam.MinScale)
	case cam.MinScale >= cam.MaxScale:
		return fmt.Errorf("%w: camera.min_scale %v must be below max_scale %v", ErrInvalidConfig, cam.MinScale, cam.MaxScale)
	case cam.Damping <= 0 || cam.Damping >= 1:
		return fmt.Errorf("%w: camera.damping must be in (0,1), got %v", ErrInvalidConfig, cam.Damping)
	case cam.ZoomIn <= 1:
		return fmt.Errorf("%w: camera.zoom_in must be > 1, got %v", ErrInvalidConfig, cam.ZoomIn)
	case cam.ZoomOut >= 1 || cam.ZoomOut <= 0:
		return fmt.Errorf("%w: camera.zoom_out must be in (0,1), got %v", ErrInvalidConfig, cam.ZoomOut)
	case cam.KeyPanStep <= 0:
		return fmt.Errorf("%w: camera.key_pan_step must be > 0, got %v", ErrInvalidConfig, cam.KeyPanStep)
	}

	if c.Starfield.Count < 0 {
		return fmt.Errorf("%w: starfield.count must be >= 0, got %d", ErrInvalidConfig, c.Starfield.Count)
	}
	if c.Starfield.Spread <= 0 {
		return fmt.Errorf("%w: starfield.spread must be > 0, got %v", ErrInvalidConfig, c.Starfield.Spread)
	}

	th := c.Narrative.RevealThreshold
	if th <= cam.MinScale || th > cam.MaxScale {
		return fmt.Errorf("%w: narrative.reveal_threshold %v must be in (%v, %v]", ErrInvalidConfig, th, cam.MinScale, cam.MaxScale)
	}
	if _, err := c.Narrative.Triggers(); err != nil {
		return err
	}

	if c.Render.FPS <= 0 {
		return fmt.Errorf("%w: render.fps must be > 0, got %d", ErrInvalidConfig, c.Render.FPS)
	}
	switch c.Render.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: render.color_mode %q (want auto, truecolor or 256)", ErrInvalidConfig, c.Render.ColorMode)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be in [0,1], got %v", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}

// Triggers resolves reveal_triggers names; empty means every zoom source may reveal
func (n NarrativeConfig) Triggers() ([]event.ZoomSource, error) {
	out := make([]event.ZoomSource, 0, len(n.RevealTriggers))
	for _, name := range n.RevealTriggers {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}
		src, ok := event.ParseZoomSource(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown reveal trigger %q", ErrInvalidConfig, name)
		}
		out = append(out, src)
	}
	return out, nil
}

// FrameDuration is the tick interval for the configured fps
func (c *Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.Render.FPS)
}

// ReloadPayload extracts the runtime-safe tunables for the loop
func (c *Config) ReloadPayload(from string, at time.Time) *event.ConfigReloadPayload {
	return &event.ConfigReloadPayload{
		Damping:      c.Camera.Damping,
		ZoomIn:       c.Camera.ZoomIn,
		ZoomOut:      c.Camera.ZoomOut,
		KeyPanStep:   c.Camera.KeyPanStep,
		Glow:         c.Render.Glow,
		Volume:       c.Audio.Volume,
		FrameRate:    c.Render.FPS,
		MinScale:     c.Camera.MinScale,
		MaxScale:     c.Camera.MaxScale,
		RevealScale:  c.Narrative.RevealThreshold,
		ReloadedFrom: from,
		ReloadedAt:   at,
	}
}
