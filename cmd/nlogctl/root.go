package main

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/philipp01105/nlog/config"
)

type commandContext struct {
	fs   afero.Fs
	file string
}

func (c *commandContext) path() string {
	if p := strings.TrimSpace(c.file); p != "" {
		return p
	}
	return config.DefaultPath()
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	ctx := &commandContext{fs: fs}

	rootCmd := &cobra.Command{
		Use:           "nlogctl",
		Short:         "Inspect logger levels and emit test records",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&ctx.file, "file", "f", "", "Levels file (default $NLOG_HOME/lib/log.props)")

	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newSetCommand(ctx))
	rootCmd.AddCommand(newEmitCommand(ctx))
	return rootCmd
}
