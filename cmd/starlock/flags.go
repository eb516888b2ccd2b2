package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flags onto config keys
var flagKeys = map[string]string{
	"debug":            "log.debug",
	"log-dir":          "log.dir",
	"color":            "render.color_mode",
	"fps":              "render.fps",
	"glow":             "render.glow",
	"stars":            "starfield.count",
	"audio":            "audio.enabled",
	"volume":           "audio.volume",
	"reveal-threshold": "narrative.reveal_threshold",
	"script":           "narrative.script",
	"keymap":           "input.keymap",
}

// addConfigFlags declares the flags that override config values
func addConfigFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default ./starlock.toml or $XDG_CONFIG_HOME/starlock/starlock.toml)")
	fs.BoolP("debug", "d", false, "write a debug log and show the status line")
	fs.String("log-dir", "", "directory for the debug log")
	fs.String("color", "", "color mode: auto, truecolor, 256")
	fs.Int("fps", 0, "frames per second")
	fs.Bool("glow", true, "draw star glow")
	fs.Int("stars", 0, "number of stars")
	fs.Bool("audio", true, "play stage sounds")
	fs.Float64("volume", 0, "master volume 0..1")
	fs.Float64("reveal-threshold", 0, "camera scale below which the heart reveal fires")
	fs.String("script", "", "narrative script TOML file")
	fs.String("keymap", "", "key bindings TOML file")
}

// bindFlags binds every config flag; viper only lets a flag win when it was set
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("flag %q not declared", name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}
