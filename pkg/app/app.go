// Package app ties the view tree, the task runner and the abstract platform
// boundaries together into a frame loop.
//
// Everything here runs on the main thread. Each Tick drains the task runner,
// recomputes layout when the tree was invalidated, and walks the tree for
// drawing; input events resolve to a consumed view (pointer) or a focus move
// (navigation).
package app

import (
	"time"

	"github.com/go-boreal/boreal/pkg/core"
	"github.com/go-boreal/boreal/pkg/inflate"
	"github.com/go-boreal/boreal/pkg/input"
	"github.com/go-boreal/boreal/pkg/layout"
	"github.com/go-boreal/boreal/pkg/task"
)

// Application owns the root container, the focus state and the lifecycle of
// the process-wide task runner.
type Application struct {
	name     string
	root     *core.Box
	renderer core.Renderer
	runner   *task.Runner

	width  float64
	height float64

	focused core.View
}

// New returns an application with an empty column root, drawing through the
// given renderer and scheduling through the process-wide task runner.
func New(renderer core.Renderer) *Application {
	return &Application{
		root:     core.NewBox(layout.AxisColumn),
		renderer: renderer,
		runner:   task.Default(),
	}
}

// ApplyConfig applies a loaded configuration: resource directories, worker
// poll interval and application metadata.
func (a *Application) ApplyConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	a.name = cfg.App.Name
	if cfg.Resources.Path != "" {
		inflate.SetResourcesPath(cfg.Resources.Path)
	}
	if cfg.Resources.CustomPath != "" {
		inflate.SetCustomResourcesPath(cfg.Resources.CustomPath)
	}
	if cfg.Tasks.PollIntervalMs > 0 {
		a.runner.SetPollInterval(time.Duration(cfg.Tasks.PollIntervalMs) * time.Millisecond)
	}
}

// Name returns the configured application name.
func (a *Application) Name() string {
	return a.name
}

// Root returns the root container.
func (a *Application) Root() *core.Box {
	return a.root
}

// Runner returns the task runner driving this application.
func (a *Application) Runner() *task.Runner {
	return a.runner
}

// Start launches the background task worker.
func (a *Application) Start() {
	a.runner.Start()
}

// Stop shuts the background task worker down and waits for it to exit.
func (a *Application) Stop() {
	a.runner.Stop()
}

// SetWindowSize updates the available dimensions, notifies the tree and
// schedules a re-layout.
func (a *Application) SetWindowSize(width, height float64) {
	a.width = width
	a.height = height
	a.root.OnWindowSizeChanged()
	a.root.Invalidate()
}

// Tick runs one frame: drain due callbacks, recompute layout if the tree was
// invalidated, then draw. Main thread only.
func (a *Application) Tick() {
	a.runner.Drain()

	if a.root.NeedsLayout() {
		a.root.LayoutNode().Calculate(a.width, a.height)
		a.root.ClearNeedsLayout()
	}

	a.root.Draw(&core.FrameContext{Renderer: a.renderer})
}

// FocusedView returns the view currently holding focus, or nil.
func (a *Application) FocusedView() core.View {
	return a.focused
}

// GiveFocus moves focus to the given view's default focus target. Both
// notifications fire: descendants of the old and new focus hear about the
// ancestor change, and ancestors update their last-focused bookkeeping.
func (a *Application) GiveFocus(view core.View) {
	if view == nil {
		return
	}
	newFocus := view.DefaultFocus()
	if newFocus == nil || newFocus == a.focused {
		return
	}

	if old := a.focused; old != nil {
		old.OnFocusLost()
		if parent := old.Base().Parent(); parent != nil {
			parent.OnChildFocusLost(old, old)
		}
	}

	a.focused = newFocus
	newFocus.OnFocusGained()
	if parent := newFocus.Base().Parent(); parent != nil {
		parent.OnChildFocusGained(newFocus, newFocus)
	}
}

// ClearFocus drops the current focus, if any.
func (a *Application) ClearFocus() {
	if a.focused == nil {
		return
	}
	old := a.focused
	a.focused = nil
	old.OnFocusLost()
	if parent := old.Base().Parent(); parent != nil {
		parent.OnChildFocusLost(old, old)
	}
}

// Navigate moves focus in a direction. With no current focus it resolves the
// tree's default focus instead. Returns the newly focused view, or nil when
// navigation hit the root boundary and was a no-op.
func (a *Application) Navigate(direction input.Direction) core.View {
	if a.focused == nil {
		a.GiveFocus(a.root)
		return a.focused
	}

	parent := a.focused.Base().Parent()
	if parent == nil {
		return nil
	}
	next := parent.Self().NextFocus(direction, a.focused)
	if next == nil {
		return nil
	}
	a.GiveFocus(next)
	return a.focused
}

// ProcessEvent consumes one abstract input event, resolving a pointer event
// through hit-testing and a navigation event through the focus tree. The
// returned view is the hit or newly focused view, nil when nothing consumed
// the event.
func (a *Application) ProcessEvent(event input.Event) core.View {
	switch event.Kind {
	case input.KindPointer:
		return a.root.HitTest(event.Point)
	case input.KindNavigate:
		return a.Navigate(event.Direction)
	}
	return nil
}
