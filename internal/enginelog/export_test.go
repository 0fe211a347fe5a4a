package enginelog

import "log"

// SetOutputForTest redirects l's destination logger, for asserting on
// Fatalf's output without touching stderr.
func SetOutputForTest(l *Logger, out *log.Logger) {
	l.out = out
}

// SetExitForTest overrides the function Fatalf calls after logging, so
// tests can observe the exit code instead of killing the test binary.
func SetExitForTest(exit func(code int)) {
	fatalExit = exit
}

// ResetExitForTest restores the real os.Exit.
func ResetExitForTest() {
	fatalExit = realExit
}
