// Package cmd wires the procpuppet command line: flag parsing, validation,
// and the handoff to the lifecycle controller.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bebsworthy/procpuppet/internal/config"
	apperrors "github.com/bebsworthy/procpuppet/internal/errors"
	"github.com/bebsworthy/procpuppet/internal/lifecycle"
	"github.com/bebsworthy/procpuppet/internal/metrics"
	"github.com/bebsworthy/procpuppet/internal/output"
)

// Execute runs the command line and returns the process exit status for
// main to pass to os.Exit. The stop listener goes up before parsing starts
// so a signal racing startup is never lost.
func Execute() int {
	state := lifecycle.NewRunState()
	monitor := metrics.NewMonitor()

	stop := lifecycle.NotifyStop(state, monitor)
	defer stop()

	exitCode := 0
	rootCmd := newRootCmd(state, monitor, &exitCode)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return apperrors.ExitCode(err)
	}
	return exitCode
}

// newRootCmd builds the root command. The run state and monitor come from
// the caller so the listener outlives parsing; the controller's exit code
// lands in exitCode. A fresh command per invocation keeps flag state out of
// package globals and lets tests drive the full path with SetArgs.
func newRootCmd(state *lifecycle.RunState, monitor *metrics.Monitor, exitCode *int) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "procpuppet",
		Short: "Scriptable stand-in process for exercising supervisors",
		Long: `procpuppet is a scriptable stand-in for a managed process. It writes
configured messages to stdout and stderr, then either exits with a chosen
code after an optional delay, loops until told to stop, or dies from a
segmentation fault.

SIGINT and SIGTERM request a stop: a looping run finishes its current
iteration and exits with the configured code, and a pending exit delay is
cut short. Messages are written verbatim with no added newline, and both
streams are flushed after every emission, so a supervisor under test sees
exactly the bytes it was promised.`,
		Example: `  # Do nothing: exit immediately with status 0
  procpuppet

  # Die from a segmentation fault, with nothing on either stream
  procpuppet -s

  # Emit on both streams every 2 seconds until SIGINT or SIGTERM
  procpuppet -f 2 -o "tick" -e "tock"

  # Announce readiness on stdout, stay alive for 5 seconds, then exit 3
  procpuppet -o "ready" -d 5 -r 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return apperrors.Internal("BIND_FLAGS_FAILED", "failed to bind command flags", err)
			}

			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}

			emitter := output.NewEmitter(cmd.OutOrStdout(), cmd.ErrOrStderr())
			controller := lifecycle.NewController(cfg, emitter, state, monitor)
			*exitCode = controller.Run()
			return nil
		},
	}

	rootCmd.Flags().IntP(config.FlagDelay, "d", 0, "seconds to stay alive before exiting")
	rootCmd.Flags().IntP(config.FlagForever, "f", 0, "seconds between emissions; loop until signalled")
	rootCmd.Flags().BoolP(config.FlagSegfault, "s", false, "die from a segmentation fault after the first emission")
	rootCmd.Flags().StringP(config.FlagStdout, "o", "", "message to write to stdout, verbatim")
	rootCmd.Flags().StringP(config.FlagStderr, "e", "", "message to write to stderr, verbatim")
	rootCmd.Flags().IntP(config.FlagExitCode, "r", 0, "exit status for normal termination")

	// An unrecognized or malformed flag is a validation failure like any
	// other: one diagnostic line, status 1.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apperrors.ErrBadFlag.WithUnderlying(err)
	})

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
