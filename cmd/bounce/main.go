// bounce is a terminal bouncing-ball game: break the blocks, keep the balls
// off the floor.
//
// Usage:
//
//	bounce play              - Play in the terminal
//	bounce sim               - Run a headless game driven by the autopilot
//	bounce scores            - Show the run history
//	bounce serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.bounce/scores.db)
//	--config <path>       - Load a custom bounce.yaml
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/config"
)

var (
	flagFPS        int
	flagSeed       uint64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bounce",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bounce - break blocks with bouncing balls in your terminal",
	Long: `Bounce is a terminal block breaker. Steer the paddle to keep the balls
in play; where a ball lands on the paddle decides where it goes next.
Destroyed blocks sometimes drop a bonus that adds another ball.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless game driven by the autopilot
  scores   - View the run history
  serve    - Start SSH server for remote play

Examples:
  bounce play
  bounce play --difficulty hard --seed 42
  bounce sim --ticks 5000 --log-level debug
  bounce serve --ssh :2222
  bounce scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.bounce/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom bounce config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGame resolves the game configuration from --config and applies the
// --difficulty preset on top.
func loadGame() (config.BounceConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BounceConfig{}, "", err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.BounceConfig{}, "", err
	}
	config.ApplyBouncePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.BounceConfig{}, "", err
	}

	logger.Debug("config loaded", "path", flagConfig, "difficulty", preset,
		"field", fmt.Sprintf("%gx%g", cfg.Field.Width, cfg.Field.Height))
	return cfg, preset, nil
}

func validateFPS() error {
	if flagFPS <= 0 || flagFPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	return nil
}
