//go:build unix && !linux

package crash

import (
	"os"
	"syscall"
)

// Abort ends the process abnormally. Restoring SIGSEGV's default
// disposition needs the Linux sigaction ABI; here the runtime keeps its
// handler and a self-raise would surface as a runtime throw that dumps
// goroutines over stderr. Exiting with the conventional 128+signal status
// keeps the abnormal outcome and the silent streams instead.
func Abort() {
	os.Exit(128 + int(syscall.SIGSEGV))
}
