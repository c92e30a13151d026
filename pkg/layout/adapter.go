package layout

// Axis is the container-level layout axis. It is the vocabulary containers
// speak; the adapter translates it to the engine's flex direction.
type Axis int

const (
	// AxisRow lays container children out horizontally.
	AxisRow Axis = iota
	// AxisColumn lays container children out vertically.
	AxisColumn
)

// flexDirectionForAxis translates a container axis to the engine vocabulary.
func flexDirectionForAxis(axis Axis) FlexDirection {
	if axis == AxisColumn {
		return FlexDirectionColumn
	}
	return FlexDirectionRow
}

// NodeAdapter wraps one engine node and translates container semantics
// (axis, padding, alignment) into engine style calls. It owns no children:
// child bookkeeping belongs to the container, the adapter only mirrors
// structural mutations into the engine tree.
type NodeAdapter struct {
	engine Engine
	node   Node
}

// NewNodeAdapter allocates an adapter backed by a fresh engine node.
func NewNodeAdapter(engine Engine) *NodeAdapter {
	return &NodeAdapter{
		engine: engine,
		node:   engine.NewNode(),
	}
}

// Engine returns the engine this adapter's node belongs to.
func (a *NodeAdapter) Engine() Engine {
	return a.engine
}

// SetAxis sets the main layout axis.
func (a *NodeAdapter) SetAxis(axis Axis) {
	a.node.StyleSetFlexDirection(flexDirectionForAxis(axis))
}

// SetDirection sets the text direction.
func (a *NodeAdapter) SetDirection(direction TextDirection) {
	a.node.StyleSetDirection(direction)
}

// SetJustifyContent sets main-axis distribution.
func (a *NodeAdapter) SetJustifyContent(justify Justify) {
	a.node.StyleSetJustifyContent(justify)
}

// SetAlignItems sets cross-axis alignment.
func (a *NodeAdapter) SetAlignItems(align Align) {
	a.node.StyleSetAlignItems(align)
}

// SetPadding sets all four padding edges at once.
func (a *NodeAdapter) SetPadding(top, right, bottom, left float64) {
	a.node.StyleSetPadding(EdgeTop, top)
	a.node.StyleSetPadding(EdgeRight, right)
	a.node.StyleSetPadding(EdgeBottom, bottom)
	a.node.StyleSetPadding(EdgeLeft, left)
}

// SetPaddingEdge sets the padding of a single edge.
func (a *NodeAdapter) SetPaddingEdge(edge Edge, value float64) {
	a.node.StyleSetPadding(edge, value)
}

// PaddingEdge returns the padding of a single edge.
func (a *NodeAdapter) PaddingEdge(edge Edge) float64 {
	return a.node.StyleGetPadding(edge)
}

// SetWidth sets an explicit width on the node.
func (a *NodeAdapter) SetWidth(width float64) {
	a.node.StyleSetWidth(width)
}

// SetHeight sets an explicit height on the node.
func (a *NodeAdapter) SetHeight(height float64) {
	a.node.StyleSetHeight(height)
}

// SetGrow sets the flex grow factor.
func (a *NodeAdapter) SetGrow(grow float64) {
	a.node.StyleSetFlexGrow(grow)
}

// InsertChildAt mirrors a container insertion into the engine tree.
func (a *NodeAdapter) InsertChildAt(child *NodeAdapter, position int) {
	a.node.InsertChild(child.node, position)
}

// RemoveChild mirrors a container removal into the engine tree.
func (a *NodeAdapter) RemoveChild(child *NodeAdapter) {
	a.node.RemoveChild(child.node)
}

// ChildCount returns the engine tree's child count for this node.
func (a *NodeAdapter) ChildCount() int {
	return a.node.ChildCount()
}

// MarkDirty flags the node for the next calculate pass.
func (a *NodeAdapter) MarkDirty() {
	a.node.MarkDirty()
}

// Calculate resolves geometry for the tree rooted at this node.
func (a *NodeAdapter) Calculate(availableWidth, availableHeight float64) {
	a.engine.Calculate(a.node, availableWidth, availableHeight)
}

// X returns the resolved x position relative to the parent node.
func (a *NodeAdapter) X() float64 {
	return a.node.LayoutLeft()
}

// Y returns the resolved y position relative to the parent node.
func (a *NodeAdapter) Y() float64 {
	return a.node.LayoutTop()
}

// Width returns the resolved width.
func (a *NodeAdapter) Width() float64 {
	return a.node.LayoutWidth()
}

// Height returns the resolved height.
func (a *NodeAdapter) Height() float64 {
	return a.node.LayoutHeight()
}
