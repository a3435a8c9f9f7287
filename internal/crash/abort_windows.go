//go:build windows

package crash

import "os"

// STATUS_ACCESS_VIOLATION, the status a Windows process reports after an
// unhandled memory fault.
const accessViolation uint32 = 0xC0000005

// Abort terminates the process with the access-violation status. Windows has
// no fault signal to raise, so the exit status alone carries the abnormality.
// The conversion goes through a variable so 32-bit int targets accept it;
// ExitProcess truncates to the same 32-bit status either way.
func Abort() {
	status := accessViolation
	os.Exit(int(status))
}
