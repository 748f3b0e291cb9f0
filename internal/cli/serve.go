package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/tilegame/internal/api"
	"github.com/mcoot/tilegame/internal/factory"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := cfg.NewLogger(cmd.OutOrStdout(), true)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			serverConfig, err := api.ServerConfigFromAddr(cfg.Addr)
			if err != nil {
				return err
			}

			app, err := factory.New(cmd.Context(), cfg.FactoryConfig(logger))
			if err != nil {
				return fmt.Errorf("failed to create application: %w", err)
			}

			router := api.NewRouter(api.RouterConfig{
				Logger:            logger,
				BoardService:      app.BoardService,
				LayoutService:     app.LayoutService,
				DictionaryService: app.DictionaryService,
				Searcher:          app.Searcher,
				BotService:        app.BotService,
			})
			server := api.NewServer(router, serverConfig, logger)

			// Handle graceful shutdown
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				defer signal.Stop(sigCh)
				select {
				case <-sigCh:
					logger.Info("shutdown signal received")
					cancel()
				case <-ctx.Done():
				}
			}()

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return err
				}
			case <-ctx.Done():
				if err := server.Shutdown(context.Background()); err != nil {
					return err
				}
			}

			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address (env: TILEGAME_ADDR)")
	return cmd
}
