// Package cli implements the arcade command line.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/km-arc/go-locator/framework/config"
)

// options is shared by every subcommand.
type options struct {
	envFiles []string
}

// source loads configuration and binds the command's flags to their keys.
func (o *options) source(cmd *cobra.Command, flagKeys map[string]string) (*viper.Viper, error) {
	v, err := config.Source(o.envFiles...)
	if err != nil {
		return nil, err
	}
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "arcade",
		Short:         "Demo game wired through a type-keyed dependency container",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load (default .env)")

	root.AddCommand(
		newServeCommand(opts),
		newBindingsCommand(opts),
		newPlayCommand(opts),
	)
	return root
}

// Execute runs the root command.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}
