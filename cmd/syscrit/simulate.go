package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avelisk/systems-critical/internal/config"
	"github.com/avelisk/systems-critical/internal/core"
	"github.com/avelisk/systems-critical/internal/game"
)

var flagTicks int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless and print the result",
	Long: `Run the simulation without a terminal UI, driving it with a fixed
input script: weapons fire the whole run, with a slow continuous turn.
Prints the final score, level and state hash.

With the same seed the output is identical on every machine, which makes
this useful for verifying determinism across builds.

Examples:
  syscrit simulate --ticks 3600 --seed 42`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of simulation ticks to run")
}

func runSimulate(cmd *cobra.Command, args []string) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		FieldW:   settings.Field.Width,
		FieldH:   settings.Field.Height,
		TickRate: settings.TickRate,
		Seed:     flagSeed,
	}

	state := game.New(cfg)
	state.SelectSubsystem(game.SubsystemWeapons)

	deaths := 0
	for i := 0; i < flagTicks; i++ {
		input := core.InputState{Fire: true}
		// Sweep: turn right for a second, coast for a second.
		if (i/60)%2 == 0 {
			input.Turn = 1
		}
		result := state.Step(input)
		for _, ev := range result.Events {
			if ev.Kind == game.EventGameOver {
				deaths++
			}
		}
	}

	snap := state.Snapshot()
	fmt.Printf("ticks:  %d\n", snap.Tick)
	fmt.Printf("score:  %d\n", snap.Score)
	fmt.Printf("level:  %d\n", snap.Level)
	fmt.Printf("deaths: %d\n", deaths)
	fmt.Printf("hash:   %016x\n", snap.Hash())
}
