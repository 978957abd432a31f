package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	foundation "github.com/km-arc/go-locator/framework/app"
	"github.com/km-arc/go-locator/framework/config"
)

type bindingsReport struct {
	App      string   `json:"app" yaml:"app"`
	Bindings []string `json:"bindings" yaml:"bindings"`
}

func newBindingsCommand(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "List the types registered in the application scope",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := opts.source(cmd, map[string]string{"audio": "game.audio"})
			if err != nil {
				return err
			}
			cfg := config.FromViper(v)
			a, err := foundation.New(cfg, nil)
			if err != nil {
				return err
			}

			report := bindingsReport{App: cfg.App.Name}
			for _, k := range a.Bindings() {
				report.Bindings = append(report.Bindings, k.String())
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				for _, b := range report.Bindings {
					fmt.Fprintln(out, b)
				}
				return nil
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(report); err != nil {
					return err
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			default:
				return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text | yaml | json")
	cmd.Flags().String("audio", "", "audio manager: test | production (GAME_AUDIO)")
	return cmd
}
