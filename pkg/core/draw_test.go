package core_test

import (
	stdtesting "testing"

	"github.com/go-boreal/boreal/pkg/core"
	"github.com/go-boreal/boreal/pkg/geometry"
	"github.com/go-boreal/boreal/pkg/layout"
	boretest "github.com/go-boreal/boreal/pkg/testing"
)

// fixedView is a leaf with an explicit size.
func fixedView(width, height float64) *core.ViewBase {
	v := core.NewView()
	v.LayoutNode().SetWidth(width)
	v.LayoutNode().SetHeight(height)
	return v
}

func drawPass(root *core.Box) *boretest.RecordingRenderer {
	renderer := &boretest.RecordingRenderer{}
	root.Draw(&core.FrameContext{Renderer: renderer})
	return renderer
}

func TestDrawEmitsVisibleLeaves(t *stdtesting.T) {
	root := core.NewBox(layout.AxisColumn)
	root.LayoutNode().SetWidth(100)
	root.LayoutNode().SetHeight(100)
	a := fixedView(100, 40)
	b := fixedView(100, 40)
	root.AddView(a)
	root.AddView(b)
	root.LayoutNode().Calculate(100, 100)

	renderer := drawPass(root)
	if !renderer.Drew(a) || !renderer.Drew(b) {
		t.Fatal("expected both leaves in the frame")
	}
	if len(renderer.Calls) != 2 {
		t.Fatalf("expected 2 draw calls, got %d", len(renderer.Calls))
	}
}

func TestCullingAgainstGrandparentBounds(t *stdtesting.T) {
	// A 100x100 viewport holding a 300-tall inner column. The leaf sits at
	// y=250 inside the inner column: inside its parent, far outside the
	// grandparent, so the ancestor conjunction must cull it.
	root := core.NewBox(layout.AxisColumn)
	root.LayoutNode().SetWidth(100)
	root.LayoutNode().SetHeight(100)

	inner := core.NewBox(layout.AxisColumn)
	inner.LayoutNode().SetWidth(100)
	inner.LayoutNode().SetHeight(300)

	filler := fixedView(100, 250)
	leaf := fixedView(100, 20)
	inner.AddView(filler)
	inner.AddView(leaf)
	root.AddView(inner)
	root.LayoutNode().Calculate(100, 300)

	renderer := drawPass(root)
	if renderer.Drew(leaf) {
		t.Fatal("a leaf outside the grandparent's bounds must be culled")
	}
	if !renderer.Drew(filler) {
		t.Fatal("a leaf overlapping the grandparent's bounds must be drawn")
	}

	// Shrinking the filler moves the leaf back into view.
	filler.LayoutNode().SetHeight(10)
	filler.Invalidate()
	root.LayoutNode().Calculate(100, 300)

	renderer = drawPass(root)
	if !renderer.Drew(leaf) {
		t.Fatal("the leaf must be drawn once it re-enters the viewport")
	}
}

func TestLeafTouchingClipEdgeIsNotCulled(t *stdtesting.T) {
	root := core.NewBox(layout.AxisColumn)
	root.LayoutNode().SetWidth(100)
	root.LayoutNode().SetHeight(100)
	filler := fixedView(100, 100)
	leaf := fixedView(100, 20)
	root.AddView(filler)
	root.AddView(leaf)
	root.LayoutNode().Calculate(100, 200)

	// The leaf starts exactly at the clip boundary (y=100).
	renderer := drawPass(root)
	if !renderer.Drew(leaf) {
		t.Fatal("a leaf flush against the clip boundary is not offscreen")
	}
}

func TestNonCullableLeafAlwaysDrawn(t *stdtesting.T) {
	root := core.NewBox(layout.AxisColumn)
	root.LayoutNode().SetWidth(100)
	root.LayoutNode().SetHeight(100)
	filler := fixedView(100, 500)
	leaf := fixedView(100, 20)
	leaf.SetCullable(false)
	root.AddView(filler)
	root.AddView(leaf)
	root.LayoutNode().Calculate(100, 600)

	renderer := drawPass(root)
	if !renderer.Drew(leaf) {
		t.Fatal("an opted-out leaf must be drawn regardless of bounds")
	}
}

func TestCustomCullingBoundsShadowFrame(t *stdtesting.T) {
	// A container whose culling bounds extend past its frame keeps
	// out-of-frame leaves alive.
	root := newExpandedClipBox()
	root.LayoutNode().SetWidth(100)
	root.LayoutNode().SetHeight(100)
	filler := fixedView(100, 150)
	leaf := fixedView(100, 20)
	root.AddView(filler)
	root.AddView(leaf)
	root.LayoutNode().Calculate(100, 200)

	renderer := &boretest.RecordingRenderer{}
	root.Draw(&core.FrameContext{Renderer: renderer})
	if !renderer.Drew(leaf) {
		t.Fatal("expected the widened culling bounds to keep the leaf")
	}
}

// expandedClipBox widens its culling bounds past its frame, the shape a
// scrolling container takes.
type expandedClipBox struct {
	core.Box
}

func newExpandedClipBox() *expandedClipBox {
	b := &expandedClipBox{}
	b.InitBox(b, layout.AxisColumn)
	return b
}

func (b *expandedClipBox) CullingBounds() geometry.Rect {
	frame := b.Frame()
	frame.Bottom += 100
	return frame
}

func TestHiddenContainerDrawsNothing(t *stdtesting.T) {
	root := core.NewBox(layout.AxisColumn)
	root.LayoutNode().SetWidth(100)
	root.LayoutNode().SetHeight(100)
	leaf := fixedView(100, 40)
	root.AddView(leaf)
	root.LayoutNode().Calculate(100, 100)

	for _, visibility := range []core.Visibility{core.VisibilityInvisible, core.VisibilityGone} {
		root.SetVisibility(visibility)
		renderer := drawPass(root)
		if len(renderer.Calls) != 0 {
			t.Fatalf("visibility %v: expected no draw calls, got %d", visibility, len(renderer.Calls))
		}
	}
}

func TestTransparentLeafSkipsDraw(t *stdtesting.T) {
	root := core.NewBox(layout.AxisColumn)
	root.LayoutNode().SetWidth(100)
	root.LayoutNode().SetHeight(100)
	leaf := fixedView(100, 40)
	leaf.SetAlpha(0)
	root.AddView(leaf)
	root.LayoutNode().Calculate(100, 100)

	renderer := drawPass(root)
	if renderer.Drew(leaf) {
		t.Fatal("a fully transparent leaf must not be drawn")
	}
}

func TestHitTestPrefersTopmost(t *stdtesting.T) {
	root := core.NewBox(layout.AxisColumn)
	root.LayoutNode().SetWidth(100)
	root.LayoutNode().SetHeight(100)

	under := fixedView(100, 100)
	over := core.NewView()
	over.SetDetached(true)
	over.SetDetachedPosition(10, 10)
	over.LayoutNode().SetWidth(30)
	over.LayoutNode().SetHeight(30)
	root.AddView(under)
	root.AddView(over) // later sibling draws on top
	root.LayoutNode().Calculate(100, 100)
	over.LayoutNode().Calculate(30, 30) // detached views are their own layout root

	if got := root.HitTest(geometry.Point{X: 20, Y: 20}); got != core.View(over) {
		t.Fatalf("expected the topmost view, got %v", got)
	}
	if got := root.HitTest(geometry.Point{X: 80, Y: 80}); got != core.View(under) {
		t.Fatalf("expected the underlying view, got %v", got)
	}
}

func TestHitTestRespectsVisibilityAndBounds(t *stdtesting.T) {
	root := core.NewBox(layout.AxisColumn)
	root.LayoutNode().SetWidth(100)
	root.LayoutNode().SetHeight(100)
	leaf := fixedView(100, 40)
	root.AddView(leaf)
	root.LayoutNode().Calculate(100, 100)

	if root.HitTest(geometry.Point{X: 200, Y: 200}) != nil {
		t.Fatal("a point outside the tree must miss")
	}

	leaf.SetVisibility(core.VisibilityInvisible)
	// The container itself still catches the point.
	if got := root.HitTest(geometry.Point{X: 50, Y: 20}); got != core.View(root) {
		t.Fatalf("expected the container to catch the point, got %v", got)
	}
}
