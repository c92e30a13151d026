// Package boreal is the front door of the toolkit: constructing an
// application, inflating UI documents and dispatching work to the main
// thread without importing the individual subsystem packages.
package boreal

import (
	"time"

	"github.com/go-boreal/boreal/pkg/app"
	"github.com/go-boreal/boreal/pkg/core"
	"github.com/go-boreal/boreal/pkg/errors"
	"github.com/go-boreal/boreal/pkg/inflate"
	"github.com/go-boreal/boreal/pkg/task"
)

// NewApp creates an application drawing through the given renderer. When a
// boreal.yaml sits in the working directory it is applied; a missing file is
// fine, a malformed one is a fatal configuration error.
func NewApp(renderer core.Renderer) *app.Application {
	a := app.New(renderer)
	cfg, err := app.LoadConfig(".")
	if err != nil {
		errors.Fatalf("boreal.NewApp", "loading configuration: %v", err)
	}
	a.ApplyConfig(cfg)
	return a
}

// Inflate builds the application's UI from an XML document string.
func Inflate(a *app.Application, markup string) {
	inflate.String(a.Root(), markup)
}

// InflateResource builds the application's UI from a named bundled resource.
func InflateResource(a *app.Application, name string) {
	inflate.Resource(a.Root(), name)
}

// Dispatch schedules fn to run on the main thread during the next frame.
// Safe to call from any goroutine.
func Dispatch(fn func()) {
	task.Sync(fn)
}

// DispatchDelayed schedules fn to run on the main thread once the delay has
// elapsed. The returned identifier cancels it via CancelDispatch.
func DispatchDelayed(delay time.Duration, fn func()) uint64 {
	return task.Delay(delay, fn)
}

// CancelDispatch cancels a delayed dispatch that has not fired yet.
func CancelDispatch(id uint64) {
	task.CancelDelay(id)
}
