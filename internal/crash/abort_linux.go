//go:build linux

package crash

import (
	"syscall"
	"time"
	"unsafe"
)

// kernelSigaction mirrors the struct the kernel's rt_sigaction expects. The
// zero value reads as SIG_DFL with no flags and an empty mask on every
// layout the kernel uses, which is exactly the disposition Abort installs.
type kernelSigaction struct {
	handler  uintptr
	flags    uintptr
	restorer uintptr
	mask     uint64
}

// kernelSigsetSize is the sigset size rt_sigaction insists on: 64 signals,
// 8 bytes.
const kernelSigsetSize = 8

// Abort raises SIGSEGV against the whole process. The runtime installs its
// own SIGSEGV handler at startup and reports a self-sent fault signal as a
// runtime throw (goroutine dump on stderr, exit status 2), and
// os/signal.Reset cannot take that handler down because the runtime never
// routes SIGSEGV through the signal package. Abort therefore hands the
// disposition back to the kernel with a raw rt_sigaction call before
// raising. The observable then matches the wild pointer write this stands
// in for: the process dies killed-by-SIGSEGV, core dump included where the
// environment allows one, with nothing written to either stream. Abort
// never returns; if the kernel ever delays a delivery it re-raises instead
// of letting execution continue.
func Abort() {
	var dfl kernelSigaction
	syscall.Syscall6(syscall.SYS_RT_SIGACTION,
		uintptr(syscall.SIGSEGV),
		uintptr(unsafe.Pointer(&dfl)),
		0,
		kernelSigsetSize,
		0, 0)

	for {
		_ = syscall.Kill(syscall.Getpid(), syscall.SIGSEGV)
		time.Sleep(10 * time.Millisecond)
	}
}
