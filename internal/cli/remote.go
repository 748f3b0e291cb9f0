package cli

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mcoot/tilegame/internal/api/request"
	"github.com/mcoot/tilegame/internal/api/response"
	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/services/bot"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the server's board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var board response.Board
			if err := client.Get("/api/v1/board", &board); err != nil {
				return err
			}

			output(cmd).Print(board)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "undo",
		Short: "Take the last play off the server's board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.HistoryResponse
			if err := client.Post("/api/v1/board/undo", nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "redo",
		Short: "Put the last undone play back on the server's board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.HistoryResponse
			if err := client.Post("/api/v1/board/redo", nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "layouts",
		Short: "List the layouts the server knows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var layouts response.Layouts
			if err := client.Get("/api/v1/layouts", &layouts); err != nil {
				return err
			}

			output(cmd).Print(layouts)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "layout NAME",
		Short: "Switch the server's board to a stored layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Put("/api/v1/board/layout", request.ApplyLayoutRequest{Name: args[0]}, nil); err != nil {
				return err
			}

			output(cmd).PrintMessage("Layout set to " + args[0])
			return nil
		},
	})

	return cmd
}

func newPlaceCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "place ROW COL DIR WORD",
		Short: "Play a word on the server's board",
		Long: `Play a word on the server's board. With --dry-run the play is only scored.

WORD uses upper-case letters for tiles, lower-case letters for blanks and '.'
for squares already on the board. DIR is h (across) or v (down).`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePlay(args)
			if err != nil {
				return err
			}
			req := placementRequest(p)

			out := output(cmd)
			if dryRun {
				var eval response.Evaluation
				if err := client.Post("/api/v1/board/score", req, &eval); err != nil {
					return err
				}
				out.Print(eval)
				return nil
			}

			var result response.PlaceResponse
			if err := client.Post("/api/v1/board/place", req, &result); err != nil {
				return explainPlaceError(err)
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Score the play without committing it")
	return cmd
}

// explainPlaceError adds a hint for the two ways a well-formed play fails
func explainPlaceError(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.StatusCode {
	case http.StatusConflict:
		return fmt.Errorf("%w; write letters already on the board as '.'", err)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("play rejected: %w", err)
	default:
		return err
	}
}

func newBotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Ask the server's bot for moves",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "candidates RACK",
		Short: "List the words the server would try for a rack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := model.ParseRack(args[0]); err != nil {
				return err
			}
			var candidates response.Candidates
			if err := client.Post("/api/v1/moves/candidates", request.RackRequest{Rack: args[0]}, &candidates); err != nil {
				return err
			}

			output(cmd).Print(candidates)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "best RACK",
		Short: "Show the best move for a rack without playing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var move response.MoveResponse
			if err := client.Post("/api/v1/moves/best", request.RackRequest{Rack: args[0]}, &move); err != nil {
				return err
			}

			output(cmd).Print(move)
			return nil
		},
	})

	var strategy string
	playCmd := &cobra.Command{
		Use:   "play RACK",
		Short: "Let the bot play a rack on the server's board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var move response.MoveResponse
			req := request.BotPlayRequest{Rack: args[0], Strategy: strategy}
			if err := client.Post("/api/v1/moves/play", req, &move); err != nil {
				return err
			}

			output(cmd).Print(move)
			return nil
		},
	}
	playCmd.Flags().StringVar(&strategy, "strategy", bot.StrategyGreedy, "Bot strategy: greedy, random")
	cmd.AddCommand(playCmd)

	return cmd
}
