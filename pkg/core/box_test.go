package core

import (
	"testing"

	"github.com/go-boreal/boreal/pkg/errors"
	"github.com/go-boreal/boreal/pkg/layout"
)

// quietHandler keeps expected error reports out of test output.
type quietHandler struct{}

func (quietHandler) HandleError(err *errors.BorealError) {}
func (quietHandler) HandlePanic(err *errors.PanicError)  {}

// expectFatal runs fn expecting it to hit a structural fatal. The exit func
// is stubbed, so the fatal surfaces as a panic we recover here.
func expectFatal(t *testing.T, fn func()) {
	t.Helper()
	errors.SetHandler(quietHandler{})
	errors.SetExitFunc(func(code int) {})
	defer errors.SetHandler(nil)
	defer errors.SetExitFunc(nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected a fatal structural error")
		}
	}()
	fn()
}

// lifecycleView records lifecycle callbacks for assertions.
type lifecycleView struct {
	ViewBase
	appeared    int
	disappeared int
	resized     int
	destroyed   bool
}

func newLifecycleView() *lifecycleView {
	v := &lifecycleView{}
	v.Init(v)
	return v
}

func (v *lifecycleView) WillAppear(resetState bool)    { v.appeared++ }
func (v *lifecycleView) WillDisappear(resetState bool) { v.disappeared++ }
func (v *lifecycleView) OnWindowSizeChanged()          { v.resized++ }

func (v *lifecycleView) Destroy() {
	if v.pins > 0 {
		v.freeOnZero = true
		return
	}
	v.destroyed = true
	v.ViewBase.Destroy()
}

func TestAddRemoveSymmetry(t *testing.T) {
	box := NewBox(layout.AxisRow)

	const n = 5
	views := make([]View, n)
	for i := range views {
		views[i] = NewView()
		box.AddView(views[i])
	}

	if box.ChildCount() != n {
		t.Fatalf("expected %d children, got %d", n, box.ChildCount())
	}
	if got := box.LayoutNode().ChildCount(); got != n {
		t.Fatalf("expected %d layout children, got %d", n, got)
	}

	for i := n - 1; i >= 0; i-- {
		box.RemoveView(views[i], false)
	}

	if box.ChildCount() != 0 {
		t.Fatalf("expected empty container, got %d children", box.ChildCount())
	}
	if got := box.LayoutNode().ChildCount(); got != 0 {
		t.Fatalf("expected empty layout tree, got %d children", got)
	}
}

func TestInsertShiftsSiblingTokensByOne(t *testing.T) {
	for position := 0; position <= 3; position++ {
		box := NewBox(layout.AxisRow)
		for i := 0; i < 3; i++ {
			box.AddView(NewView())
		}

		before := make(map[View]int)
		for _, child := range box.Children() {
			index, _ := box.SiblingIndex(child)
			before[child] = index
		}

		box.AddViewAt(NewView(), position)

		for child, old := range before {
			now, ok := box.SiblingIndex(child)
			if !ok {
				t.Fatalf("position %d: child lost its token", position)
			}
			if old >= position {
				if now != old+1 {
					t.Fatalf("position %d: token %d should shift to %d, got %d", position, old, old+1, now)
				}
			} else if now != old {
				t.Fatalf("position %d: token %d should be untouched, got %d", position, old, now)
			}
		}
	}
}

func TestAddViewAtOutOfRangeIsFatal(t *testing.T) {
	box := NewBox(layout.AxisRow)
	box.AddView(NewView())

	expectFatal(t, func() {
		box.AddViewAt(NewView(), 5)
	})
}

func TestAddViewAtNegativeIsFatal(t *testing.T) {
	box := NewBox(layout.AxisRow)
	expectFatal(t, func() {
		box.AddViewAt(NewView(), -1)
	})
}

func TestRemoveNonChildIsNoop(t *testing.T) {
	box := NewBox(layout.AxisRow)
	box.AddView(NewView())

	stranger := NewView()
	box.RemoveView(stranger, true)
	box.RemoveView(nil, true)

	if box.ChildCount() != 1 {
		t.Fatalf("redundant removal must not touch the tree, got %d children", box.ChildCount())
	}
}

func TestRemoveUpdatesTokensAndParent(t *testing.T) {
	box := NewBox(layout.AxisRow)
	a, b, c := NewView(), NewView(), NewView()
	box.AddView(a)
	box.AddView(b)
	box.AddView(c)

	box.RemoveView(a, false)

	if a.Parent() != nil {
		t.Fatal("removed view must lose its parent back-reference")
	}
	if index, _ := box.SiblingIndex(b); index != 0 {
		t.Fatalf("expected b at token 0 after removal, got %d", index)
	}
	if index, _ := box.SiblingIndex(c); index != 1 {
		t.Fatalf("expected c at token 1 after removal, got %d", index)
	}
}

func TestLifecycleHooksOnAddRemove(t *testing.T) {
	box := NewBox(layout.AxisRow)
	v := newLifecycleView()

	box.AddView(v)
	if v.appeared != 1 {
		t.Fatalf("expected WillAppear once on insert, got %d", v.appeared)
	}

	box.RemoveView(v, false)
	if v.disappeared != 1 {
		t.Fatalf("expected WillDisappear once on removal, got %d", v.disappeared)
	}
	if v.destroyed {
		t.Fatal("removal without destroy must not destroy the view")
	}
}

func TestRemoveWithDestroy(t *testing.T) {
	box := NewBox(layout.AxisRow)
	v := newLifecycleView()
	box.AddView(v)

	box.RemoveView(v, true)
	if !v.destroyed {
		t.Fatal("expected the subtree to be destroyed")
	}
}

func TestClearViews(t *testing.T) {
	box := NewBox(layout.AxisColumn)
	views := []*lifecycleView{newLifecycleView(), newLifecycleView(), newLifecycleView()}
	for _, v := range views {
		box.AddView(v)
	}
	box.SetLastFocusedView(views[1])

	box.ClearViews(true)

	if box.ChildCount() != 0 {
		t.Fatalf("expected empty container, got %d", box.ChildCount())
	}
	if box.LayoutNode().ChildCount() != 0 {
		t.Fatalf("expected empty layout tree, got %d", box.LayoutNode().ChildCount())
	}
	if box.lastFocused != nil {
		t.Fatal("last-focused back-reference must be cleared before teardown")
	}
	for i, v := range views {
		if v.disappeared != 1 || !v.destroyed {
			t.Fatalf("child %d: expected disappear+destroy, got disappear=%d destroyed=%v",
				i, v.disappeared, v.destroyed)
		}
	}
}

func TestDetachedViewsSkipLayoutTree(t *testing.T) {
	box := NewBox(layout.AxisRow)
	attached := NewView()
	overlay := NewView()
	overlay.SetDetached(true)
	overlay.SetDetachedPosition(10, 20)

	box.AddView(attached)
	box.AddView(overlay)

	if box.ChildCount() != 2 {
		t.Fatalf("detached views still count as children, got %d", box.ChildCount())
	}
	if box.LayoutNode().ChildCount() != 1 {
		t.Fatalf("detached views must not join the layout tree, got %d", box.LayoutNode().ChildCount())
	}

	box.RemoveView(overlay, false)
	if box.LayoutNode().ChildCount() != 1 {
		t.Fatalf("removing a detached view must not touch the layout tree, got %d", box.LayoutNode().ChildCount())
	}
}

func TestPinnedChildSurvivesDestroy(t *testing.T) {
	box := NewBox(layout.AxisRow)
	pinned := newLifecycleView()
	plain := newLifecycleView()
	pinned.Pin()
	box.AddView(pinned)
	box.AddView(plain)

	box.Destroy()

	if pinned.destroyed {
		t.Fatal("pinned child must not be destroyed by the owner's teardown")
	}
	if pinned.Parent() != nil {
		t.Fatal("pinned child must be detached from the destroyed owner")
	}
	if !plain.destroyed {
		t.Fatal("unpinned child must be destroyed with the owner")
	}

	// Dropping the last pin completes the deferred destruction.
	pinned.Unpin()
	if !pinned.destroyed {
		t.Fatal("expected deferred destruction once the last pin dropped")
	}
}

func TestUnpinWithoutDeferredDestroyIsHarmless(t *testing.T) {
	v := newLifecycleView()
	v.Pin()
	v.Unpin()
	v.Unpin() // extra unpin is ignored
	if v.destroyed {
		t.Fatal("unpin without a pending destroy must not destroy the view")
	}
}

func TestViewByID(t *testing.T) {
	root := NewBox(layout.AxisColumn)
	root.SetID("root")
	inner := NewBox(layout.AxisRow)
	leaf := NewView()
	leaf.SetID("leaf")
	inner.AddView(leaf)
	root.AddView(inner)

	if root.ViewByID("root") != View(root) {
		t.Fatal("expected the root to find itself")
	}
	if root.ViewByID("leaf") != View(leaf) {
		t.Fatal("expected recursive lookup to find the leaf")
	}
	if root.ViewByID("missing") != nil {
		t.Fatal("unknown identifiers resolve to nil")
	}
	if root.ViewByID("") != nil {
		t.Fatal("empty identifiers never match")
	}
}

func TestWindowSizeChangeRecurses(t *testing.T) {
	root := NewBox(layout.AxisColumn)
	inner := NewBox(layout.AxisRow)
	leaf := newLifecycleView()
	inner.AddView(leaf)
	root.AddView(inner)

	root.OnWindowSizeChanged()
	if leaf.resized != 1 {
		t.Fatalf("expected resize notification to reach the leaf, got %d", leaf.resized)
	}
}

func TestInvalidateBubblesToRoot(t *testing.T) {
	root := NewBox(layout.AxisColumn)
	inner := NewBox(layout.AxisRow)
	leaf := NewView()
	inner.AddView(leaf)
	root.AddView(inner)
	root.LayoutNode().Calculate(100, 100)
	root.ClearNeedsLayout()

	leaf.Invalidate()
	if !root.NeedsLayout() {
		t.Fatal("invalidation must bubble to the root")
	}
}
