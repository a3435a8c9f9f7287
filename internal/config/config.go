// Package config turns procpuppet's command-line arguments into a validated
// run configuration.
//
// Arguments are the only configuration source: the fixture reads no files and
// no environment variables, so a harness can rely on identical behavior for
// identical argv. The CLI layer binds its flag set into a dedicated viper
// instance and FromViper reads the values back out; the defaults are the flag
// defaults, which describe a run that emits nothing, does not loop, does not
// crash, and exits 0.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/bebsworthy/procpuppet/internal/errors"
)

// Flag names shared by the CLI layer and the viper binding. The single-letter
// shorthands (-d, -f, -s, -o, -e, -r) are the contract the harness drives;
// the long names below are what cobra registers and viper keys on.
const (
	FlagDelay    = "delay"
	FlagForever  = "forever"
	FlagSegfault = "segfault"
	FlagStdout   = "stdout"
	FlagStderr   = "stderr"
	FlagExitCode = "exit-code"
)

// Config is the run configuration of one fixture invocation, immutable after
// parse.
type Config struct {
	// StdoutMessage and StderrMessage are written verbatim on every emit;
	// empty means the stream stays silent.
	StdoutMessage string
	StderrMessage string

	// CrashAfterEmit terminates the process via a memory-fault signal right
	// after the first emit.
	CrashAfterEmit bool

	// ExitDelay is the one-shot suspension before exiting. Mutually
	// exclusive with LoopInterval.
	ExitDelay time.Duration

	// LoopInterval, when positive, repeats emit+sleep until a stop signal
	// arrives. Zero means do not loop.
	LoopInterval time.Duration

	// ExitCode is the status for every normal termination path.
	ExitCode int
}

// FromViper builds a Config from the values bound into v and validates it.
// The caller owns the binding; nothing here reads files or the environment.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		StdoutMessage:  v.GetString(FlagStdout),
		StderrMessage:  v.GetString(FlagStderr),
		CrashAfterEmit: v.GetBool(FlagSegfault),
		ExitDelay:      time.Duration(v.GetInt(FlagDelay)) * time.Second,
		LoopInterval:   time.Duration(v.GetInt(FlagForever)) * time.Second,
		ExitCode:       v.GetInt(FlagExitCode),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate enforces the configuration invariants: durations must not be
// negative, and one-shot delay and loop interval cannot both be set.
func (c *Config) Validate() error {
	if c.ExitDelay < 0 {
		return errors.ErrNegativeSeconds.WithUnderlying(
			fmt.Errorf("'-d' is %d", int(c.ExitDelay/time.Second)))
	}

	if c.LoopInterval < 0 {
		return errors.ErrNegativeSeconds.WithUnderlying(
			fmt.Errorf("'-f' is %d", int(c.LoopInterval/time.Second)))
	}

	if c.ExitDelay > 0 && c.LoopInterval > 0 {
		return errors.ErrConflictingModes
	}

	return nil
}

// Looping reports whether the run repeats until a stop signal arrives.
func (c *Config) Looping() bool {
	return c.LoopInterval > 0
}
