package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlog/config"
	"github.com/philipp01105/nlog/core"
	"github.com/philipp01105/nlog/handler"
	"github.com/philipp01105/nlog/logger"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the levels file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ctx.path()
			levels, err := config.Load(ctx.fs, path)

			out := cmd.OutOrStdout()
			for _, name := range levels.Names() {
				lvl, _ := levels.Get(name)
				fmt.Fprintf(out, "%s = %s\n", name, strings.ToLower(lvl.String()))
			}
			if n := report(cmd.ErrOrStderr(), err); n > 0 {
				return fmt.Errorf("%s: %d problem(s)", path, n)
			}
			fmt.Fprintf(out, "%s: %d entries ok\n", path, levels.Len())
			return nil
		},
	}
}

func newSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <level>",
		Short: "Set the threshold of one logger in the levels file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := logger.CheckName(name); err != nil {
				return err
			}
			lvl, err := core.ParseLevel(args[1])
			if err != nil {
				return err
			}

			path := ctx.path()
			levels, err := config.Load(ctx.fs, path)
			if errors.Is(err, config.ErrLoad) {
				return fmt.Errorf("refusing to overwrite: %w", err)
			}
			report(cmd.ErrOrStderr(), err)
			m := levels.Map()
			m[name] = lvl
			if err := config.Write(ctx.fs, path, m); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, strings.ToLower(lvl.String()))
			return nil
		},
	}
}

func newEmitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "emit <logger> <level> <message>",
		Short: "Emit one record through a registry configured from the levels file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := core.ParseLevel(args[1])
			if err != nil {
				return err
			}
			if lvl == core.SilentLevel {
				return fmt.Errorf("%w: %s is a threshold only", core.ErrInvalidArgument, lvl)
			}

			levels, err := config.Load(ctx.fs, ctx.path())
			report(cmd.ErrOrStderr(), err)

			errOut := cmd.ErrOrStderr()
			reg, err := logger.New(
				logger.WithLevels(levels.Map()),
				logger.WithErrorOutput(zapcore.Lock(zapcore.AddSync(errOut))),
				logger.WithHandlers(consoleHandler(errOut)),
			)
			if err != nil {
				return err
			}
			l, err := reg.Get(args[0])
			if err != nil {
				return err
			}
			if !l.Enabled(lvl) {
				fmt.Fprintf(cmd.OutOrStdout(), "filtered: %s threshold is %s\n", l.Name(), l.Level())
				return nil
			}
			l.Log(lvl, args[2], nil)
			return nil
		},
	}
}

func consoleHandler(w io.Writer) handler.Handler {
	if w == os.Stderr {
		return handler.NewConsoleHandler()
	}
	return handler.NewWriterHandler(handler.WriterConfig{Writer: w})
}

// report prints each combined loader error on its own line and returns
// how many there were.
func report(w io.Writer, err error) int {
	errs := multierr.Errors(err)
	for _, e := range errs {
		fmt.Fprintln(w, e)
	}
	return len(errs)
}
