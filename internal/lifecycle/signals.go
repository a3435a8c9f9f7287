package lifecycle

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bebsworthy/procpuppet/internal/metrics"
)

// NotifyStop installs the process-wide stop handling: SIGINT and SIGTERM
// flip rs. The signal path only flips the flag and bumps a counter, nothing
// that could block or allocate. The returned function uninstalls the
// handlers and releases the watcher goroutine.
func NotifyStop(rs *RunState, mon *metrics.Monitor) func() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		for sig := range sigChan {
			rs.RequestStop()
			mon.RecordStopSignal(sig.String())
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(sigChan)
	}
}
