package layout

// BasicEngine is a minimal sequential-flow implementation of Engine used by
// tests and headless runs. It honors axis, padding, explicit dimensions and
// grow factors; justify and align values beyond flex-start/stretch are
// accepted but not distributed. Production builds plug in a full flexbox
// engine behind the same interfaces.
type BasicEngine struct{}

// NewBasicEngine returns a ready-to-use BasicEngine.
func NewBasicEngine() *BasicEngine {
	return &BasicEngine{}
}

// NewNode allocates a fresh node with undefined dimensions.
func (e *BasicEngine) NewNode() Node {
	return &basicNode{
		width:  Undefined,
		height: Undefined,
	}
}

// Calculate resolves geometry for the tree rooted at root.
func (e *BasicEngine) Calculate(root Node, availableWidth, availableHeight float64) {
	n, ok := root.(*basicNode)
	if !ok {
		return
	}
	n.left = 0
	n.top = 0
	n.w = resolveDimension(n.width, availableWidth)
	n.h = resolveDimension(n.height, availableHeight)
	layoutChildren(n)
	clearDirty(n)
}

func resolveDimension(styled, available float64) float64 {
	if styled == Undefined {
		return available
	}
	return styled
}

// layoutChildren places n's children sequentially along the main axis,
// distributing leftover main-axis space across grow factors.
func layoutChildren(n *basicNode) {
	innerWidth := n.w - n.padding[EdgeLeft] - n.padding[EdgeRight]
	innerHeight := n.h - n.padding[EdgeTop] - n.padding[EdgeBottom]

	row := n.direction == FlexDirectionRow
	mainAvail := innerHeight
	if row {
		mainAvail = innerWidth
	}

	var fixed, growTotal float64
	for _, child := range n.children {
		fixed += styledMainSize(child, row)
		growTotal += child.grow
	}
	remaining := mainAvail - fixed
	if remaining < 0 {
		remaining = 0
	}

	offset := n.padding[EdgeTop]
	crossStart := n.padding[EdgeLeft]
	if row {
		offset = n.padding[EdgeLeft]
		crossStart = n.padding[EdgeTop]
	}

	for _, child := range n.children {
		main := styledMainSize(child, row)
		if child.grow > 0 && growTotal > 0 {
			main += remaining * child.grow / growTotal
		}

		if row {
			child.left = offset
			child.top = crossStart
			child.w = main
			child.h = resolveDimension(child.height, innerHeight)
		} else {
			child.left = crossStart
			child.top = offset
			child.w = resolveDimension(child.width, innerWidth)
			child.h = main
		}

		layoutChildren(child)
		offset += main
	}
}

// styledMainSize returns the child's explicit main-axis dimension, or 0 when
// the engine must resolve it through grow distribution.
func styledMainSize(child *basicNode, row bool) float64 {
	styled := child.height
	if row {
		styled = child.width
	}
	if styled == Undefined {
		return 0
	}
	return styled
}

func clearDirty(n *basicNode) {
	n.dirty = false
	for _, child := range n.children {
		clearDirty(child)
	}
}

// basicNode is BasicEngine's Node implementation.
type basicNode struct {
	direction FlexDirection
	textDir   TextDirection
	justify   Justify
	align     Align
	padding   [4]float64
	width     float64
	height    float64
	grow      float64

	children []*basicNode

	// resolved geometry, relative to the parent
	left, top, w, h float64

	dirty bool
}

func (n *basicNode) StyleSetFlexDirection(direction FlexDirection) {
	n.direction = direction
	n.dirty = true
}

func (n *basicNode) StyleSetDirection(direction TextDirection) {
	n.textDir = direction
	n.dirty = true
}

func (n *basicNode) StyleSetJustifyContent(justify Justify) {
	n.justify = justify
	n.dirty = true
}

func (n *basicNode) StyleSetAlignItems(align Align) {
	n.align = align
	n.dirty = true
}

func (n *basicNode) StyleSetPadding(edge Edge, value float64) {
	n.padding[edge] = value
	n.dirty = true
}

func (n *basicNode) StyleGetPadding(edge Edge) float64 {
	return n.padding[edge]
}

func (n *basicNode) StyleSetWidth(width float64) {
	n.width = width
	n.dirty = true
}

func (n *basicNode) StyleSetHeight(height float64) {
	n.height = height
	n.dirty = true
}

func (n *basicNode) StyleSetFlexGrow(grow float64) {
	n.grow = grow
	n.dirty = true
}

func (n *basicNode) InsertChild(child Node, index int) {
	c, ok := child.(*basicNode)
	if !ok {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(n.children) {
		index = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = c
	n.dirty = true
}

func (n *basicNode) RemoveChild(child Node) {
	c, ok := child.(*basicNode)
	if !ok {
		return
	}
	for i, existing := range n.children {
		if existing == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			n.dirty = true
			return
		}
	}
}

func (n *basicNode) ChildCount() int {
	return len(n.children)
}

func (n *basicNode) MarkDirty() {
	n.dirty = true
}

func (n *basicNode) LayoutLeft() float64 {
	return n.left
}

func (n *basicNode) LayoutTop() float64 {
	return n.top
}

func (n *basicNode) LayoutWidth() float64 {
	return n.w
}

func (n *basicNode) LayoutHeight() float64 {
	return n.h
}
