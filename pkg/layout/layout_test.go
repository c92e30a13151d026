package layout

import "testing"

func TestBasicEngineRowFlow(t *testing.T) {
	engine := NewBasicEngine()
	root := NewNodeAdapter(engine)
	root.SetAxis(AxisRow)
	root.SetWidth(100)
	root.SetHeight(40)

	first := NewNodeAdapter(engine)
	first.SetWidth(30)
	second := NewNodeAdapter(engine)
	second.SetWidth(20)

	root.InsertChildAt(first, 0)
	root.InsertChildAt(second, 1)
	root.Calculate(100, 40)

	if first.X() != 0 || second.X() != 30 {
		t.Fatalf("expected sequential row placement, got x=%v then x=%v", first.X(), second.X())
	}
	if first.Height() != 40 {
		t.Fatalf("expected cross-axis stretch to 40, got %v", first.Height())
	}
}

func TestBasicEngineColumnFlowWithPadding(t *testing.T) {
	engine := NewBasicEngine()
	root := NewNodeAdapter(engine)
	root.SetAxis(AxisColumn)
	root.SetWidth(80)
	root.SetHeight(100)
	root.SetPadding(10, 5, 10, 5)

	child := NewNodeAdapter(engine)
	child.SetHeight(25)
	root.InsertChildAt(child, 0)
	root.Calculate(80, 100)

	if child.X() != 5 || child.Y() != 10 {
		t.Fatalf("expected child offset by padding (5,10), got (%v,%v)", child.X(), child.Y())
	}
	if child.Width() != 70 {
		t.Fatalf("expected child width 70 inside padding, got %v", child.Width())
	}
}

func TestBasicEngineGrowDistribution(t *testing.T) {
	engine := NewBasicEngine()
	root := NewNodeAdapter(engine)
	root.SetAxis(AxisRow)
	root.SetWidth(100)
	root.SetHeight(10)

	fixed := NewNodeAdapter(engine)
	fixed.SetWidth(40)
	spacer := NewNodeAdapter(engine)
	spacer.SetGrow(1)

	root.InsertChildAt(fixed, 0)
	root.InsertChildAt(spacer, 1)
	root.Calculate(100, 10)

	if spacer.Width() != 60 {
		t.Fatalf("expected grow child to take remaining 60, got %v", spacer.Width())
	}
}

func TestAdapterMirrorsChildMutations(t *testing.T) {
	engine := NewBasicEngine()
	root := NewNodeAdapter(engine)
	a := NewNodeAdapter(engine)
	b := NewNodeAdapter(engine)

	root.InsertChildAt(a, 0)
	root.InsertChildAt(b, 0)
	if root.ChildCount() != 2 {
		t.Fatalf("expected 2 engine children, got %d", root.ChildCount())
	}

	root.RemoveChild(a)
	if root.ChildCount() != 1 {
		t.Fatalf("expected 1 engine child after removal, got %d", root.ChildCount())
	}

	// Removing an unknown child is a silent no-op.
	root.RemoveChild(a)
	if root.ChildCount() != 1 {
		t.Fatalf("redundant removal must not change the tree, got %d", root.ChildCount())
	}
}

func TestAxisTranslation(t *testing.T) {
	if flexDirectionForAxis(AxisRow) != FlexDirectionRow {
		t.Fatal("row axis must translate to row flex direction")
	}
	if flexDirectionForAxis(AxisColumn) != FlexDirectionColumn {
		t.Fatal("column axis must translate to column flex direction")
	}
}
