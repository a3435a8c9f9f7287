// Package output implements the fixture's controlled emission: writing the
// configured messages to the standard streams so a supervising harness can
// observe them immediately.
package output

import "io"

// flusher is satisfied by buffered writers (bufio.Writer and friends).
// os.Stdout and os.Stderr carry no userspace buffer, so for them flushing is
// a no-op and every write is already visible to the supervising process.
type flusher interface {
	Flush() error
}

// Emitter writes configured messages to a stdout/stderr writer pair. One
// Emitter performs every emission of a run; the writers never change after
// construction.
type Emitter struct {
	stdout io.Writer
	stderr io.Writer
}

// NewEmitter returns an Emitter bound to the given stream writers.
func NewEmitter(stdout, stderr io.Writer) *Emitter {
	return &Emitter{stdout: stdout, stderr: stderr}
}

// Emit writes stdoutMsg to the stdout writer and stderrMsg to the stderr
// writer, in that order, skipping whichever is empty, then flushes both
// streams. Messages go out verbatim: no newline or other framing is
// appended. Write errors are not reported; the fixture has no recovery path
// for a lost stream.
func (e *Emitter) Emit(stdoutMsg, stderrMsg string) {
	if stdoutMsg != "" {
		_, _ = io.WriteString(e.stdout, stdoutMsg)
	}
	if stderrMsg != "" {
		_, _ = io.WriteString(e.stderr, stderrMsg)
	}

	flush(e.stdout)
	flush(e.stderr)
}

func flush(w io.Writer) {
	if f, ok := w.(flusher); ok {
		_ = f.Flush()
	}
}
