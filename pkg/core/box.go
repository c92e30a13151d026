package core

import (
	"github.com/go-boreal/boreal/pkg/errors"
	"github.com/go-boreal/boreal/pkg/geometry"
	"github.com/go-boreal/boreal/pkg/input"
	"github.com/go-boreal/boreal/pkg/layout"
)

// forwardedAttribute routes an externally-applied attribute to a descendant.
type forwardedAttribute struct {
	name   string
	target View
}

// Box is the composite view: it owns an ordered list of children, mirrors
// every structural mutation into the external layout tree, and implements
// culling, hit-testing and focus delegation. Insertion order is both visual
// order and z-order; the last child is topmost.
type Box struct {
	ViewBase

	axis     layout.Axis
	children []View

	// childIndex holds the parent-assigned sibling-index tokens, keyed by
	// child identity so navigation does O(1) lookups instead of scans.
	childIndex map[View]int

	forwarded map[string]forwardedAttribute

	lastFocused         View
	defaultFocusedIndex int
}

// NewBox returns an empty container laying children out along the given axis.
func NewBox(axis layout.Axis) *Box {
	b := &Box{}
	b.InitBox(b, axis)
	return b
}

// InitBox prepares an embedded Box. Constructors of types embedding Box must
// call it with the outermost value.
func (b *Box) InitBox(self View, axis layout.Axis) {
	b.ViewBase.Init(self)
	b.axis = axis
	b.childIndex = make(map[View]int)
	b.forwarded = make(map[string]forwardedAttribute)
	b.layoutNode.SetAxis(axis)
	b.registerBoxAttributes()
}

// AsBox identifies the view as a container.
func (b *Box) AsBox() *Box {
	return b
}

// Children returns the ordered child sequence. The returned slice is the
// container's own bookkeeping; callers must not mutate it.
func (b *Box) Children() []View {
	return b.children
}

// ChildCount returns the number of children.
func (b *Box) ChildCount() int {
	return len(b.children)
}

// SiblingIndex returns the parent-assigned index token for a direct child.
func (b *Box) SiblingIndex(child View) (int, bool) {
	index, ok := b.childIndex[child]
	return index, ok
}

// AddView appends a view to the child sequence.
func (b *Box) AddView(view View) {
	b.AddViewAt(view, len(b.children))
}

// AddViewAt inserts a view at the given position. A position outside
// [0, ChildCount] is a fatal structural error. Unless the view is detached,
// it is inserted at the same position in the external layout tree.
func (b *Box) AddViewAt(view View, position int) {
	if position < 0 || position > len(b.children) {
		errors.Fatalf("core.Box.AddViewAt",
			"cannot insert view at %s: %d/%d", b.Describe(), position, len(b.children))
	}

	b.children = append(b.children, nil)
	copy(b.children[position+1:], b.children[position:])
	b.children[position] = view

	if !view.Base().Detached() {
		b.layoutNode.InsertChildAt(view.Base().LayoutNode(), position)
	}

	b.childIndex[view] = position
	for i := position + 1; i < len(b.children); i++ {
		b.childIndex[b.children[i]]++
	}

	view.Base().setParent(b)

	b.Invalidate()
	view.WillAppear(false)
}

// RemoveView removes a direct child. Views that are not direct children are
// silently ignored, so redundant removals during teardown races are safe.
// When destroy is set, ownership of the subtree is released: the subtree is
// destroyed unless pinned, in which case control passes to the pin holder.
func (b *Box) RemoveView(view View, destroy bool) {
	if view == nil {
		return
	}
	index, ok := b.childIndex[view]
	if !ok {
		return
	}

	if !view.Base().Detached() {
		b.layoutNode.RemoveChild(view.Base().LayoutNode())
	}

	b.children = append(b.children[:index], b.children[index+1:]...)
	delete(b.childIndex, view)
	for i := index; i < len(b.children); i++ {
		b.childIndex[b.children[i]]--
	}

	view.Base().setParent(nil)
	view.WillDisappear(true)
	if destroy {
		view.Destroy()
	}

	b.Invalidate()
}

// ClearViews removes all children back-to-front, so each removal only ever
// touches the tail of the sequence. The last-focused back-reference is
// cleared first to avoid dangling access during teardown callbacks.
func (b *Box) ClearViews(destroy bool) {
	b.lastFocused = nil

	for len(b.children) > 0 {
		view := b.children[len(b.children)-1]

		if !view.Base().Detached() {
			b.layoutNode.RemoveChild(view.Base().LayoutNode())
		}
		b.children = b.children[:len(b.children)-1]
		delete(b.childIndex, view)

		view.Base().setParent(nil)
		view.WillDisappear(true)
		if destroy {
			view.Destroy()
		}
	}

	b.Invalidate()
}

// CullingBounds returns the clip bounds descendants are culled against.
// Scrolling containers shadow this to return their viewport.
func (b *Box) CullingBounds() geometry.Rect {
	return b.Frame()
}

// cullingBoundsProvider lets embedders shadow CullingBounds; dispatch goes
// through the self reference.
type cullingBoundsProvider interface {
	CullingBounds() geometry.Rect
}

// Draw walks the children, culling leaf children whose bounds fall outside
// any ancestor's culling bounds. Nested boxes recurse and cull their own
// leaves, so the ancestor walk only runs for leaf children.
func (b *Box) Draw(ctx *FrameContext) {
	if b.visibility != VisibilityVisible || b.alpha == 0 {
		return
	}

	for _, child := range b.children {
		if child.AsBox() == nil && child.Base().Cullable() {
			childFrame := child.Base().Frame()
			culled := false
			for bounds := b; bounds != nil; bounds = bounds.Base().parent {
				clip := bounds.Frame()
				if provider, ok := bounds.Base().self.(cullingBoundsProvider); ok {
					clip = provider.CullingBounds()
				}
				if !childFrame.Intersects(clip) {
					culled = true
					break
				}
			}
			if culled {
				continue
			}
		}

		child.Draw(ctx)
	}
}

// HitTest returns the topmost descendant containing the point. Children are
// walked last-to-first so the view drawn on top wins.
func (b *Box) HitTest(point geometry.Point) View {
	if b.alpha == 0 || b.visibility != VisibilityVisible {
		return nil
	}
	if !b.Frame().Contains(point) {
		return nil
	}
	for i := len(b.children) - 1; i >= 0; i-- {
		if result := b.children[i].HitTest(point); result != nil {
			return result
		}
	}
	return b.self
}

// DefaultFocus resolves, in order: the box itself when focusable, the
// previously-focused child, the configured default-focus index, then the
// first child yielding a focus target.
func (b *Box) DefaultFocus() View {
	if b.Focusable() && b.visibility == VisibilityVisible {
		return b.self
	}

	if b.lastFocused != nil {
		if focus := b.lastFocused.DefaultFocus(); focus != nil {
			return focus
		}
	}

	if b.defaultFocusedIndex < len(b.children) {
		if focus := b.children[b.defaultFocusedIndex].DefaultFocus(); focus != nil {
			return focus
		}
	}

	for _, child := range b.children {
		if focus := child.DefaultFocus(); focus != nil {
			return focus
		}
	}

	return nil
}

// directionMatchesAxis reports whether a directional intent travels along
// the container's layout axis.
func directionMatchesAxis(direction input.Direction, axis layout.Axis) bool {
	if axis == layout.AxisRow {
		return direction == input.DirectionLeft || direction == input.DirectionRight
	}
	return direction == input.DirectionUp || direction == input.DirectionDown
}

// backwardDirection reports whether the intent walks the sibling sequence
// toward lower indices.
func backwardDirection(direction input.Direction) bool {
	return direction == input.DirectionLeft || direction == input.DirectionUp
}

// NextFocus resolves a directional intent leaving the given direct child.
// An intent orthogonal to the layout axis escalates immediately; an intent
// along the axis walks the sibling sequence, skipping children that yield no
// focus target. Either way the result passes through the parent navigation
// decision hook, and an empty result escalates to the real parent. At the
// root the escalation terminates with nil: navigation is a no-op at the
// boundary, not an error.
func (b *Box) NextFocus(direction input.Direction, from View) View {
	if !directionMatchesAxis(direction, b.axis) {
		next := b.self.ParentNavigationDecision(b.self, nil, direction)
		if next == nil && b.parent != nil {
			next = b.parent.Base().self.NextFocus(direction, b.self)
		}
		return next
	}

	offset := 1
	if backwardDirection(direction) {
		offset = -1
	}

	var next View
	if start, ok := b.childIndex[from]; ok {
		for i := start + offset; i >= 0 && i < len(b.children); i += offset {
			if next = b.children[i].DefaultFocus(); next != nil {
				break
			}
		}
	}

	next = b.self.ParentNavigationDecision(b.self, next, direction)
	if next == nil && b.parent != nil {
		next = b.parent.Base().self.NextFocus(direction, b.self)
	}
	return next
}

// OnFocusGained marks the box focused and tells every descendant that an
// ancestor gained focus.
func (b *Box) OnFocusGained() {
	b.ViewBase.OnFocusGained()
	for _, child := range b.children {
		child.OnParentFocusGained(b.self)
	}
}

// OnFocusLost marks the box unfocused and tells every descendant that the
// ancestor chain lost focus.
func (b *Box) OnFocusLost() {
	b.ViewBase.OnFocusLost()
	for _, child := range b.children {
		child.OnParentFocusLost(b.self)
	}
}

// OnParentFocusGained propagates the downward focus notification.
func (b *Box) OnParentFocusGained(focused View) {
	for _, child := range b.children {
		child.OnParentFocusGained(focused)
	}
}

// OnParentFocusLost propagates the downward focus notification.
func (b *Box) OnParentFocusLost(focused View) {
	for _, child := range b.children {
		child.OnParentFocusLost(focused)
	}
}

// OnChildFocusGained updates the last-focused bookkeeping at this level and
// notifies the ancestors, so re-entering the container restores focus.
func (b *Box) OnChildFocusGained(directChild View, focused View) {
	b.lastFocused = directChild
	if b.parent != nil {
		b.parent.OnChildFocusGained(b.self, focused)
	}
}

// OnChildFocusLost notifies the ancestors that a descendant lost focus.
func (b *Box) OnChildFocusLost(directChild View, focused View) {
	if b.parent != nil {
		b.parent.OnChildFocusLost(b.self, focused)
	}
}

// SetLastFocusedView overrides the last-focused child remembered for
// DefaultFocus resolution.
func (b *Box) SetLastFocusedView(view View) {
	b.lastFocused = view
}

// SetDefaultFocusedIndex sets the child index DefaultFocus tries when no
// child was focused before. Negative indices are ignored.
func (b *Box) SetDefaultFocusedIndex(index int) {
	if index < 0 {
		return
	}
	b.defaultFocusedIndex = index
}

// DefaultFocusedIndex returns the configured default-focus index.
func (b *Box) DefaultFocusedIndex() int {
	return b.defaultFocusedIndex
}

// IsChildFocused reports whether any descendant currently holds focus.
func (b *Box) IsChildFocused() bool {
	for _, child := range b.children {
		if box := child.AsBox(); box != nil {
			if box.Focused() || box.IsChildFocused() {
				return true
			}
		} else if child.Base().Focused() {
			return true
		}
	}
	return false
}

// WillAppear recurses into the children.
func (b *Box) WillAppear(resetState bool) {
	for _, child := range b.children {
		child.WillAppear(resetState)
	}
}

// WillDisappear recurses into the children.
func (b *Box) WillDisappear(resetState bool) {
	for _, child := range b.children {
		child.WillDisappear(resetState)
	}
}

// OnWindowSizeChanged recurses into the children.
func (b *Box) OnWindowSizeChanged() {
	for _, child := range b.children {
		child.OnWindowSizeChanged()
	}
}

// ViewByID finds a view by identifier in this subtree.
func (b *Box) ViewByID(id string) View {
	if id != "" && id == b.id {
		return b.self
	}
	for _, child := range b.children {
		if result := child.ViewByID(id); result != nil {
			return result
		}
	}
	return nil
}

// ApplyAttribute re-routes forwarded attribute names to their target view
// before falling back to the box's own attribute table.
func (b *Box) ApplyAttribute(name, value string) {
	if fw, ok := b.forwarded[name]; ok {
		fw.target.ApplyAttribute(fw.name, value)
		return
	}
	b.ViewBase.ApplyAttribute(name, value)
}

// HasAttribute also recognizes forwarded attribute names.
func (b *Box) HasAttribute(name string) bool {
	if _, ok := b.forwarded[name]; ok {
		return true
	}
	return b.ViewBase.HasAttribute(name)
}

// ForwardAttribute redirects an externally-applied attribute name to the
// same attribute on a descendant view.
func (b *Box) ForwardAttribute(name string, target View) {
	b.ForwardAttributeTo(name, target, name)
}

// ForwardAttributeTo redirects an externally-applied attribute name to a
// named attribute on a descendant view. Forwarding to an attribute the
// target does not recognize, or forwarding the same source name twice, is a
// fatal configuration error raised here so authoring mistakes surface
// immediately.
func (b *Box) ForwardAttributeTo(name string, target View, targetName string) {
	if !target.HasAttribute(targetName) {
		errors.Fatalf("core.Box.ForwardAttribute",
			"cannot forward %q of %s: %q is not an attribute of %s",
			name, b.Describe(), targetName, target.Describe())
	}
	if _, ok := b.forwarded[name]; ok {
		errors.Fatalf("core.Box.ForwardAttribute",
			"cannot forward %q of %s: the same attribute cannot be forwarded twice",
			name, b.Describe())
	}
	b.forwarded[name] = forwardedAttribute{name: targetName, target: target}
}

// Destroy releases the subtree. Parent back-references are cleared before
// any destruction; pinned children are detached and left to their pin
// holders.
func (b *Box) Destroy() {
	if b.pins > 0 {
		b.freeOnZero = true
		return
	}

	b.lastFocused = nil
	for _, child := range b.children {
		child.Base().setParent(nil)
		child.Destroy()
	}
	b.children = nil
	clear(b.childIndex)
	b.setParent(nil)
}

// Axis returns the container's layout axis.
func (b *Box) Axis() layout.Axis {
	return b.axis
}

// SetAxis changes the layout axis.
func (b *Box) SetAxis(axis layout.Axis) {
	b.axis = axis
	b.layoutNode.SetAxis(axis)
	b.Invalidate()
}

// SetDirection sets the text direction.
func (b *Box) SetDirection(direction layout.TextDirection) {
	b.layoutNode.SetDirection(direction)
	b.Invalidate()
}

// SetJustifyContent sets main-axis distribution.
func (b *Box) SetJustifyContent(justify layout.Justify) {
	b.layoutNode.SetJustifyContent(justify)
	b.Invalidate()
}

// SetAlignItems sets cross-axis alignment.
func (b *Box) SetAlignItems(align layout.Align) {
	b.layoutNode.SetAlignItems(align)
	b.Invalidate()
}

// SetPadding sets all four padding edges.
func (b *Box) SetPadding(top, right, bottom, left float64) {
	b.layoutNode.SetPadding(top, right, bottom, left)
	b.Invalidate()
}

// SetPaddingUniform sets the same padding on all edges.
func (b *Box) SetPaddingUniform(padding float64) {
	b.SetPadding(padding, padding, padding, padding)
}

// SetPaddingTop sets the top padding.
func (b *Box) SetPaddingTop(value float64) {
	b.layoutNode.SetPaddingEdge(layout.EdgeTop, value)
	b.Invalidate()
}

// SetPaddingRight sets the right padding.
func (b *Box) SetPaddingRight(value float64) {
	b.layoutNode.SetPaddingEdge(layout.EdgeRight, value)
	b.Invalidate()
}

// SetPaddingBottom sets the bottom padding.
func (b *Box) SetPaddingBottom(value float64) {
	b.layoutNode.SetPaddingEdge(layout.EdgeBottom, value)
	b.Invalidate()
}

// SetPaddingLeft sets the left padding.
func (b *Box) SetPaddingLeft(value float64) {
	b.layoutNode.SetPaddingEdge(layout.EdgeLeft, value)
	b.Invalidate()
}

// PaddingTop returns the top padding.
func (b *Box) PaddingTop() float64 {
	return b.layoutNode.PaddingEdge(layout.EdgeTop)
}

// PaddingRight returns the right padding.
func (b *Box) PaddingRight() float64 {
	return b.layoutNode.PaddingEdge(layout.EdgeRight)
}

// PaddingBottom returns the bottom padding.
func (b *Box) PaddingBottom() float64 {
	return b.layoutNode.PaddingEdge(layout.EdgeBottom)
}

// PaddingLeft returns the left padding.
func (b *Box) PaddingLeft() float64 {
	return b.layoutNode.PaddingEdge(layout.EdgeLeft)
}

// registerBoxAttributes declares the container attribute set.
func (b *Box) registerBoxAttributes() {
	RegisterEnumAttribute(&b.ViewBase, "axis", map[string]layout.Axis{
		"row":    layout.AxisRow,
		"column": layout.AxisColumn,
	}, b.SetAxis)

	RegisterEnumAttribute(&b.ViewBase, "direction", map[string]layout.TextDirection{
		"inherit":     layout.TextDirectionInherit,
		"leftToRight": layout.TextDirectionLTR,
		"rightToLeft": layout.TextDirectionRTL,
	}, b.SetDirection)

	RegisterEnumAttribute(&b.ViewBase, "justifyContent", map[string]layout.Justify{
		"flexStart":    layout.JustifyFlexStart,
		"center":       layout.JustifyCenter,
		"flexEnd":      layout.JustifyFlexEnd,
		"spaceBetween": layout.JustifySpaceBetween,
		"spaceAround":  layout.JustifySpaceAround,
		"spaceEvenly":  layout.JustifySpaceEvenly,
	}, b.SetJustifyContent)

	RegisterEnumAttribute(&b.ViewBase, "alignItems", map[string]layout.Align{
		"auto":         layout.AlignAuto,
		"flexStart":    layout.AlignFlexStart,
		"center":       layout.AlignCenter,
		"flexEnd":      layout.AlignFlexEnd,
		"stretch":      layout.AlignStretch,
		"baseline":     layout.AlignBaseline,
		"spaceBetween": layout.AlignSpaceBetween,
		"spaceAround":  layout.AlignSpaceAround,
	}, b.SetAlignItems)

	b.RegisterFloatAttribute("padding", b.SetPaddingUniform)
	b.RegisterFloatAttribute("paddingTop", b.SetPaddingTop)
	b.RegisterFloatAttribute("paddingRight", b.SetPaddingRight)
	b.RegisterFloatAttribute("paddingBottom", b.SetPaddingBottom)
	b.RegisterFloatAttribute("paddingLeft", b.SetPaddingLeft)
}

// Spacer is an empty grow-all view used to push siblings apart.
type Spacer struct {
	ViewBase
}

// NewSpacer returns a spacer with a grow factor of 1.
func NewSpacer() *Spacer {
	s := &Spacer{}
	s.Init(s)
	s.layoutNode.SetGrow(1)
	return s
}

// Draw renders nothing: a spacer only occupies layout space.
func (s *Spacer) Draw(ctx *FrameContext) {}
