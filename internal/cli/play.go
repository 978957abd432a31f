package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	foundation "github.com/km-arc/go-locator/framework/app"
	"github.com/km-arc/go-locator/framework/config"
	"github.com/km-arc/go-locator/framework/container"
	"github.com/km-arc/go-locator/internal/game"
)

func newPlayCommand(opts *options) *cobra.Command {
	var bosses int
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Resolve the game graph in-process and play one round",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := opts.source(cmd, map[string]string{"audio": "game.audio"})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			a, err := foundation.New(config.FromViper(v), out)
			if err != nil {
				return err
			}
			if err := a.Boot(); err != nil {
				return err
			}

			r := a.Resolver()
			player, err := container.TryResolve[*game.Player](r)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "player jumped: %s\n", player.Jump())

			for i := 0; i < bosses; i++ {
				boss, err := container.TryResolve[*game.Boss](r)
				if err != nil {
					return err
				}
				boss.Hit()
				boss.Fire()
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&bosses, "bosses", 2, "number of bosses to spawn")
	cmd.Flags().String("audio", "", "audio manager: test | production (GAME_AUDIO)")
	return cmd
}
