// Package crash terminates the fixture the way a genuinely crashing program
// would, so a harness watching the process observes an abnormal death rather
// than a clean exit. On Linux that death is a real killed-by-SIGSEGV wait
// status; other platforms approximate it with the closest status they can
// produce without touching either stream.
package crash
