package config

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Watch re-decodes the config file on every write and hands valid results to onChange.
// Invalid edits are logged and the previous values stay in effect.
// No-op when no config file was read.
func Watch(v *viper.Viper, logger *slog.Logger, onChange func(cfg *Config, path string)) bool {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	path := v.ConfigFileUsed()
	if path == "" {
		return false
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := Decode(v)
		if err != nil {
			logger.Warn("config reload rejected", "file", e.Name, "error", err)
			return
		}
		logger.Info("config reloaded", "file", e.Name, "op", e.Op.String())
		onChange(cfg, e.Name)
	})
	v.WatchConfig()
	logger.Debug("watching config", "file", path)
	return true
}
