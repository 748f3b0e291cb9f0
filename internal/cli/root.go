package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "tilegame",
		Short: "Rules engine and move search for a tile-placement word game",
		Long: `tilegame validates and scores placements on a 15x15 premium board and
searches for the best move for a rack of tiles.

Local commands (score, suggest, candidates, layout) run the engine in-process.
Remote commands (health, board, place, bot) talk to a running "tilegame serve".`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.Dictionary, "dictionary", cfg.Dictionary, "Word list, one word per line (env: TILEGAME_DICTIONARY)")
	flags.StringVar(&cfg.Layout, "layout", cfg.Layout, "Stored layout name or layout file (env: TILEGAME_LAYOUT)")
	flags.StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend: memory, redis (env: TILEGAME_STORAGE)")
	flags.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: REDIS_URL)")
	flags.IntVar(&cfg.MaxCandidates, "max-candidates", cfg.MaxCandidates, "Cap on candidate words per search, 0 for none (env: TILEGAME_MAX_CANDIDATES)")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the random bot, 0 for unseeded (env: TILEGAME_SEED)")
	flags.StringVar(&cfg.BoardFile, "board", cfg.BoardFile, "File with 15 board rows, '.' for empty")
	flags.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL for remote commands (env: TILEGAME_SERVER)")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: TILEGAME_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newCandidatesCmd())
	rootCmd.AddCommand(newLayoutCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newPlaceCmd())
	rootCmd.AddCommand(newBotCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
