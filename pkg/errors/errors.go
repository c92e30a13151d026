// Package errors provides structured error handling for the Boreal toolkit.
//
// Errors come in two tiers. Structural errors (bad insertion index, malformed
// XML root, duplicate attribute forwarding) indicate a programming mistake in
// the UI definition and are fatal: Fatal reports them and terminates the
// process. Runtime callback errors are reported through the global handler and
// isolated so one failing callback never takes down the frame that runs it.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindStructural indicates a fatal mistake in the UI definition,
	// such as an out-of-range insertion or a bad forwarding registration.
	KindStructural
	// KindInflate indicates an XML inflation failure.
	KindInflate
	// KindLayout indicates a layout engine boundary error.
	KindLayout
	// KindCallback indicates a failure inside a scheduled callback.
	KindCallback
	// KindConfig indicates a configuration loading error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindInflate:
		return "inflate"
	case KindLayout:
		return "layout"
	case KindCallback:
		return "callback"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BorealError represents a structured error in the Boreal toolkit.
type BorealError struct {
	// Op is the operation that failed (e.g., "core.Box.AddViewAt").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// View describes the view involved, if applicable.
	View string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BorealError) Error() string {
	if e.View != "" {
		return fmt.Sprintf("%s [%s] view=%s: %v", e.Op, e.Kind, e.View, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BorealError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "task.Runner.Drain").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the Boreal toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BorealError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
