// Package layout defines the boundary to the external flexbox engine and the
// node adapter that translates container semantics into engine style calls.
//
// The engine is a black box to the rest of the toolkit: nodes accept style
// properties and child mutations, a calculate pass resolves x/y/width/height.
// The toolkit never reads geometry without triggering a recompute first.
package layout

// FlexDirection is the engine-level main axis of a flex node.
type FlexDirection int

const (
	// FlexDirectionRow lays children out horizontally.
	FlexDirectionRow FlexDirection = iota
	// FlexDirectionColumn lays children out vertically.
	FlexDirectionColumn
)

// TextDirection controls the engine's left-to-right/right-to-left resolution.
type TextDirection int

const (
	// TextDirectionInherit uses the parent node's direction.
	TextDirectionInherit TextDirection = iota
	// TextDirectionLTR resolves layout left to right.
	TextDirectionLTR
	// TextDirectionRTL resolves layout right to left.
	TextDirectionRTL
)

// Justify distributes children along the main axis.
type Justify int

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align positions children along the cross axis.
type Align int

const (
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
)

// Edge identifies a padding edge.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Undefined marks a dimension the engine should resolve itself.
const Undefined = -1.0

// Node is a single node in the external layout tree. Geometry accessors
// return values resolved by the most recent Engine.Calculate pass; positions
// are relative to the parent node.
type Node interface {
	// StyleSetFlexDirection sets the main axis.
	StyleSetFlexDirection(direction FlexDirection)
	// StyleSetDirection sets the text direction.
	StyleSetDirection(direction TextDirection)
	// StyleSetJustifyContent sets main-axis distribution.
	StyleSetJustifyContent(justify Justify)
	// StyleSetAlignItems sets cross-axis alignment.
	StyleSetAlignItems(align Align)
	// StyleSetPadding sets the padding of one edge.
	StyleSetPadding(edge Edge, value float64)
	// StyleGetPadding returns the padding of one edge.
	StyleGetPadding(edge Edge) float64
	// StyleSetWidth sets an explicit width, or Undefined to let the engine decide.
	StyleSetWidth(width float64)
	// StyleSetHeight sets an explicit height, or Undefined to let the engine decide.
	StyleSetHeight(height float64)
	// StyleSetFlexGrow sets the grow factor.
	StyleSetFlexGrow(grow float64)

	// InsertChild inserts a child node at the given index.
	InsertChild(child Node, index int)
	// RemoveChild removes a child node; unknown children are ignored.
	RemoveChild(child Node)
	// ChildCount returns the number of child nodes.
	ChildCount() int

	// MarkDirty flags the node so the next calculate pass revisits it.
	MarkDirty()

	// LayoutLeft returns the resolved x position relative to the parent.
	LayoutLeft() float64
	// LayoutTop returns the resolved y position relative to the parent.
	LayoutTop() float64
	// LayoutWidth returns the resolved width.
	LayoutWidth() float64
	// LayoutHeight returns the resolved height.
	LayoutHeight() float64
}

// Engine creates layout nodes and resolves geometry for a node tree.
type Engine interface {
	// NewNode allocates a fresh, unattached node.
	NewNode() Node
	// Calculate resolves geometry for the tree rooted at root within the
	// given available dimensions.
	Calculate(root Node, availableWidth, availableHeight float64)
}
