package fetch

import (
	"fmt"
	"os"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	code := m.Run()

	// Closing clients only releases per-worker state; the shared transport
	// keeps idle connections until the process-wide teardown runs.
	Shutdown()

	if code == 0 {
		if err := goleak.Find(); err != nil {
			fmt.Fprintf(os.Stderr, "goroutine leak after shutdown: %v\n", err)
			code = 1
		}
	}
	os.Exit(code)
}
