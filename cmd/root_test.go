package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bebsworthy/procpuppet/internal/errors"
	"github.com/bebsworthy/procpuppet/internal/lifecycle"
	"github.com/bebsworthy/procpuppet/internal/metrics"
)

type cmdFixture struct {
	state    *lifecycle.RunState
	monitor  *metrics.Monitor
	exitCode int
	cmd      *cobra.Command
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
}

func newCmdFixture(args ...string) *cmdFixture {
	f := &cmdFixture{
		state:   lifecycle.NewRunState(),
		monitor: metrics.NewMonitor(),
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
	}
	f.cmd = newRootCmd(f.state, f.monitor, &f.exitCode)
	f.cmd.SetOut(f.stdout)
	f.cmd.SetErr(f.stderr)
	// Never nil: cobra falls back to os.Args for nil, which under go test
	// would hand the fixture the test binary's own flags.
	f.cmd.SetArgs(append([]string{}, args...))
	return f
}

func TestRunEmitsVerbatimAndExitsZero(t *testing.T) {
	f := newCmdFixture("-o", "hello", "-e", "oops")

	err := f.cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 0, f.exitCode)
	assert.Equal(t, "hello", f.stdout.String(), "stdout message should be verbatim, no added newline")
	assert.Equal(t, "oops", f.stderr.String(), "stderr message should be verbatim, no added newline")
}

func TestRunWithoutFlagsIsSilent(t *testing.T) {
	f := newCmdFixture()

	err := f.cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 0, f.exitCode)
	assert.Empty(t, f.stdout.String())
	assert.Empty(t, f.stderr.String())
}

func TestExitCodeFlag(t *testing.T) {
	f := newCmdFixture("-r", "7")

	err := f.cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 7, f.exitCode)
}

func TestLongFlagNames(t *testing.T) {
	f := newCmdFixture("--stdout", "a", "--stderr", "b", "--exit-code", "2")

	err := f.cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 2, f.exitCode)
	assert.Equal(t, "a", f.stdout.String())
	assert.Equal(t, "b", f.stderr.String())
}

func TestConflictingModesRejected(t *testing.T) {
	f := newCmdFixture("-d", "2", "-f", "3", "-o", "never emitted")

	err := f.cmd.Execute()

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflictingModes))
	assert.Contains(t, err.Error(), "'-d' and '-f' used together")
	assert.Empty(t, f.stdout.String(), "validation must fail before any emission")
}

func TestNegativeDelayRejected(t *testing.T) {
	f := newCmdFixture("--delay=-1")

	err := f.cmd.Execute()

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNegativeSeconds))
}

func TestNegativeIntervalRejected(t *testing.T) {
	f := newCmdFixture("--forever=-5")

	err := f.cmd.Execute()

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNegativeSeconds))
}

func TestUnknownFlagRejected(t *testing.T) {
	f := newCmdFixture("--no-such-flag")

	err := f.cmd.Execute()

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadFlag))
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestMalformedFlagValueRejected(t *testing.T) {
	f := newCmdFixture("-d", "soon")

	err := f.cmd.Execute()

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadFlag))
}

func TestPositionalArgumentsRejected(t *testing.T) {
	f := newCmdFixture("stray")

	err := f.cmd.Execute()

	require.Error(t, err)
	assert.Empty(t, f.stdout.String())
}

func TestHelpFlag(t *testing.T) {
	f := newCmdFixture("-h")

	err := f.cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 0, f.exitCode)
	assert.Contains(t, f.stdout.String(), "Usage:")
	assert.Contains(t, f.stdout.String(), "--segfault")
	assert.Contains(t, f.stdout.String(), "--exit-code")
}

func TestVersionCommand(t *testing.T) {
	f := newCmdFixture("version")

	err := f.cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "procpuppet")
	assert.Contains(t, f.stdout.String(), "Go version:")
}

func TestDelayedExitKeepsConfiguredCode(t *testing.T) {
	f := newCmdFixture("-d", "1", "-r", "4", "-o", "waiting")

	// Pre-request the stop so the delay is cut short and the test stays fast.
	f.state.RequestStop()

	start := time.Now()
	err := f.cmd.Execute()
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, 4, f.exitCode, "an interrupted delay still exits with the configured code")
	assert.Equal(t, "waiting", f.stdout.String())
	assert.Less(t, elapsed, 5*time.Second)
}

func TestLoopModeEmitsOnceWhenAlreadyStopped(t *testing.T) {
	f := newCmdFixture("-f", "1", "-o", "tick", "-r", "9")

	f.state.RequestStop()

	err := f.cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 9, f.exitCode)
	assert.Equal(t, "tick", f.stdout.String(), "even a pre-stopped loop emits exactly once")
	assert.EqualValues(t, 1, f.monitor.Snapshot().Emits)
}

func TestRecordsEmitsInMonitor(t *testing.T) {
	f := newCmdFixture("-o", "x")

	require.NoError(t, f.cmd.Execute())
	assert.EqualValues(t, 1, f.monitor.Snapshot().Emits)
}
