package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/starlock/audio"
	"github.com/lixenwraith/starlock/config"
	"github.com/lixenwraith/starlock/core"
	"github.com/lixenwraith/starlock/engine"
	"github.com/lixenwraith/starlock/event"
	"github.com/lixenwraith/starlock/input"
	"github.com/lixenwraith/starlock/terminal"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "starlock",
		Short:         "A star field hiding a message, explored from the terminal",
		Long:          "starlock renders a twinkling star field with half-block pixels. Unlock it, drag to pan, scroll to zoom, and zoom far enough out to find what it hides.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runScene,
	}
	addConfigFlags(root.PersistentFlags())
	root.AddCommand(newKeysCmd())
	return root
}

// loadConfig resolves defaults, file, env and flags in that order of precedence
func loadConfig(cmd *cobra.Command) (*config.Config, *viper.Viper, error) {
	v := config.New()
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, nil, err
	}
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the effective key bindings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			keys, err := input.LoadKeyTable(cfg.Input.Keymap)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, b := range keys.Bindings() {
				fmt.Fprintf(out, "%-10s %s\n", b.Key, b.Action)
			}
			return nil
		},
	}
}

func runScene(cmd *cobra.Command, _ []string) (err error) {
	cfg, v, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, logFile, err := setupLogging(cfg.Log.Debug, cfg.Log.Dir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	keys, err := input.LoadKeyTable(cfg.Input.Keymap)
	if err != nil {
		return err
	}

	colorMode := terminal.ResolveColorMode(cfg.Render.ColorMode, os.Getenv)
	if err := terminal.ApplyColorMode(colorMode, os.Setenv); err != nil {
		return fmt.Errorf("apply color mode: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	player := audio.NewPlayer(logger.With("component", "audio"), cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := player.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing silently", "error", err)
		} else {
			defer player.Cleanup()
		}
	}

	scene, err := engine.NewContext(engine.Options{
		Config: cfg,
		Screen: screen,
		Audio:  player,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	config.Watch(v, logger.With("component", "config"), func(next *config.Config, path string) {
		scene.Push(reloadEvent(next, path))
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	adapter := input.NewTcellAdapter(keys)
	core.Go(func() {
		pollEvents(screen, adapter, scene)
	})

	logger.Info("starting", "fps", cfg.Render.FPS, "stars", cfg.Starfield.Count, "color", colorMode.String())
	scene.Start()
	if err := scene.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// pollEvents forwards terminal events to the scene until the screen is finalized
func pollEvents(screen tcell.Screen, adapter *input.TcellAdapter, scene *engine.Context) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		for _, ge := range adapter.Translate(ev) {
			scene.Push(ge)
		}
	}
}

// reloadEvent wraps a reloaded config for the loop goroutine
func reloadEvent(cfg *config.Config, path string) event.GameEvent {
	now := time.Now()
	return event.GameEvent{
		Type:      event.EventConfigReload,
		Payload:   cfg.ReloadPayload(path, now),
		Timestamp: now,
	}
}
