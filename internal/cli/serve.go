package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-locator/app"
	foundation "github.com/km-arc/go-locator/framework/app"
	"github.com/km-arc/go-locator/framework/config"
)

func newServeCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the arcade HTTP demo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := opts.source(cmd, map[string]string{
				"port":  "app.port",
				"audio": "game.audio",
			})
			if err != nil {
				return err
			}
			a, err := foundation.New(config.FromViper(v), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := a.Boot(); err != nil {
				return err
			}
			app.Routes(a)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.Serve(ctx)
		},
	}
	cmd.Flags().String("port", "", "listen port (APP_PORT)")
	cmd.Flags().String("audio", "", "audio manager: test | production (GAME_AUDIO)")
	return cmd
}
