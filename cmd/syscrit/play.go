package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avelisk/systems-critical/internal/audio"
	"github.com/avelisk/systems-critical/internal/config"
	"github.com/avelisk/systems-critical/internal/core"
	"github.com/avelisk/systems-critical/internal/platform/tui"
	"github.com/avelisk/systems-critical/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run. Only the selected subsystem responds to the activate key.

Controls:
  A/D, Left/Right  - Turn
  W/Up/Space       - Activate selected subsystem
  1/2/3            - Select engines / weapons / radar
  Q/Esc/Ctrl+C     - Quit

Examples:
  syscrit play
  syscrit play --seed 42
  syscrit play --fps 30 --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The field needs enough terminal to be playable.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < 40 || h < 12 {
			fmt.Fprintf(os.Stderr, "Error: terminal too small (%dx%d), need at least 40x12\n", w, h)
			os.Exit(1)
		}
	}

	cfg := core.RuntimeConfig{
		FieldW:   settings.Field.Width,
		FieldH:   settings.Field.Height,
		TickRate: settings.TickRate,
		Seed:     flagSeed,
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	dbPath := settings.Storage.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		log.Warn("could not open scores database, runs will not be recorded", "err", err)
		store = nil
	}

	var sound *audio.Player
	if settings.Audio.Enabled && !flagMute {
		sound = audio.NewPlayer()
		if err := sound.Init(); err != nil {
			log.Warn("could not initialize audio, playing silent", "err", err)
		}
	}

	runErr := tui.Run(cfg, store, sound)

	if sound != nil {
		sound.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
