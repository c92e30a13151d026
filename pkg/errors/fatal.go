package errors

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	fatalMu sync.RWMutex

	// exitFunc terminates the process after a fatal error has been reported.
	// Tests replace it via SetExitFunc to observe fatals without dying.
	exitFunc = func(code int) { os.Exit(code) }
)

// SetExitFunc overrides the process-exit function invoked by Fatal and Fatalf.
// Pass nil to restore os.Exit. Intended for tests; a replacement that returns
// normally causes the fatal call site to panic instead, so control never flows
// past a structural error.
func SetExitFunc(fn func(code int)) {
	fatalMu.Lock()
	defer fatalMu.Unlock()
	if fn == nil {
		exitFunc = func(code int) { os.Exit(code) }
	} else {
		exitFunc = fn
	}
}

func getExitFunc() func(int) {
	fatalMu.RLock()
	defer fatalMu.RUnlock()
	return exitFunc
}

// Fatal reports a structural error and terminates the process. Structural
// errors indicate a programming mistake in the UI definition; they are caught
// at construction or mutation time and are not recoverable.
func Fatal(op string, err error) {
	e := &BorealError{
		Op:         op,
		Kind:       KindStructural,
		Err:        err,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
	Report(e)
	getExitFunc()(1)
	// Only reachable when a test stubbed the exit func.
	panic(e)
}

// Fatalf is Fatal with fmt.Errorf formatting.
func Fatalf(op, format string, args ...any) {
	Fatal(op, fmt.Errorf(format, args...))
}
