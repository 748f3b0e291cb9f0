package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/tilegame/internal/api/response"
	"github.com/mcoot/tilegame/internal/factory"
	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/services/bot"
)

// newLocalApp builds an in-process engine from the global config, with the
// --board file loaded when one is given
func newLocalApp(cmd *cobra.Command) (*factory.App, error) {
	logger, err := cfg.NewLogger(cmd.ErrOrStderr(), false)
	if err != nil {
		return nil, err
	}
	app, err := factory.New(cmd.Context(), cfg.FactoryConfig(logger))
	if err != nil {
		return nil, err
	}
	if cfg.BoardFile != "" {
		grid, err := readBoardFile(cfg.BoardFile)
		if err != nil {
			return nil, err
		}
		grid.ReplaceMultipliers(app.BoardService.Snapshot().Layout())
		app.BoardService.Load(grid)
	}
	return app, nil
}

func output(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score ROW COL DIR WORD",
		Short: "Validate and score a play without committing it",
		Long: `Validate and score a play against the board.

WORD uses upper-case letters for tiles, lower-case letters for blanks and '.'
for squares already on the board. DIR is h (across) or v (down).

Example: tilegame --dictionary words.txt score 7 7 h TEST`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePlay(args)
			if err != nil {
				return err
			}
			app, err := newLocalApp(cmd)
			if err != nil {
				return err
			}

			output(cmd).Print(response.EvaluationFromResult(app.BoardService.Score(p)))
			return nil
		},
	}
}

func newSuggestCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "suggest RACK",
		Short: "Find a move for a rack",
		Long: `Find a move for a rack of up to seven tiles ('?' for a blank).

The greedy strategy returns the highest scoring move; random picks any
scoring move.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rack, err := model.ParseRack(args[0])
			if err != nil {
				return err
			}
			app, err := newLocalApp(cmd)
			if err != nil {
				return err
			}

			move, err := app.BotService.Suggest(strategy, rack)
			if err != nil {
				return err
			}
			output(cmd).Print(response.MoveResponseFromModel(move))
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", bot.StrategyGreedy, "Bot strategy: greedy, random")
	return cmd
}

func newCandidatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "candidates RACK",
		Short: "List dictionary words a rack could form with the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rack, err := model.ParseRack(args[0])
			if err != nil {
				return err
			}
			app, err := newLocalApp(cmd)
			if err != nil {
				return err
			}

			output(cmd).Print(response.Candidates{Words: app.Searcher.FindCandidateWords(rack)})
			return nil
		},
	}
}
