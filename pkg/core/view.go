// Package core implements the retained view tree: views, containers with
// layout delegation, spatial focus navigation and culling.
//
// Views form a tree owned from the top: a Box exclusively owns its children
// unless a child is pinned, and every view keeps a non-owning back-pointer to
// its parent used only for upward traversal. The tree is not thread-safe and
// must only be touched from the main thread; background work reaches it by
// submitting sync callbacks to the task runner.
package core

import (
	"reflect"

	"github.com/go-boreal/boreal/pkg/geometry"
	"github.com/go-boreal/boreal/pkg/input"
	"github.com/go-boreal/boreal/pkg/layout"
)

// Visibility controls whether a view is drawn and hit-testable.
type Visibility int

const (
	// VisibilityVisible draws the view normally.
	VisibilityVisible Visibility = iota
	// VisibilityInvisible hides the view but keeps its layout slot.
	VisibilityInvisible
	// VisibilityGone hides the view entirely.
	VisibilityGone
)

// View is the protocol every tree member implements. ViewBase provides the
// default behavior; Box overrides the composite parts. Concrete views embed
// ViewBase (or Box) and may shadow any of these methods — dispatch goes
// through the self reference set at Init time.
type View interface {
	// Base returns the embedded ViewBase carrying common state.
	Base() *ViewBase

	// AsBox returns the receiver as a *Box when the view is a container,
	// nil otherwise.
	AsBox() *Box

	// DefaultFocus resolves the view this subtree yields when focus enters
	// without a specific target, or nil.
	DefaultFocus() View

	// NextFocus resolves the next focus for a directional intent leaving
	// the given direct child, escalating to the parent when this level has
	// no candidate. Returns nil at the root boundary.
	NextFocus(direction input.Direction, from View) View

	// ParentNavigationDecision lets an ancestor intercept a navigation
	// result before it is accepted. The default passes through to the
	// actual parent, recursively.
	ParentNavigationDecision(from View, proposed View, direction input.Direction) View

	// HitTest returns the topmost view containing the point, or nil.
	HitTest(point geometry.Point) View

	// Draw renders this view (and, for containers, its children) into the
	// frame context.
	Draw(ctx *FrameContext)

	// WillAppear runs just before the view becomes part of the visible tree.
	WillAppear(resetState bool)
	// WillDisappear runs just before the view leaves the visible tree.
	WillDisappear(resetState bool)
	// OnWindowSizeChanged notifies the subtree that the window was resized.
	OnWindowSizeChanged()

	// OnFocusGained runs when this view becomes the focused view.
	OnFocusGained()
	// OnFocusLost runs when this view stops being the focused view.
	OnFocusLost()
	// OnParentFocusGained tells a descendant that an ancestor chain now
	// contains the focused view.
	OnParentFocusGained(focused View)
	// OnParentFocusLost tells a descendant that the ancestor chain no
	// longer contains the focused view.
	OnParentFocusLost(focused View)

	// ViewByID finds a view by identifier in this subtree, or nil.
	ViewByID(id string) View

	// ApplyAttribute applies a named attribute value. Unknown names are a
	// fatal inflation error.
	ApplyAttribute(name, value string)
	// HasAttribute reports whether the view recognizes an attribute name.
	HasAttribute(name string) bool

	// Destroy releases the subtree. Pinned views are detached instead and
	// freed when the last pin drops.
	Destroy()

	// Describe returns a short human-readable description for diagnostics.
	Describe() string
}

// ViewBase is the base unit of the tree. It owns visibility, opacity and
// focusability state, delegates geometry to its layout node adapter, and
// keeps a weak back-reference to the owning Box.
type ViewBase struct {
	id         string
	layoutNode *layout.NodeAdapter

	parent *Box
	self   View

	visibility Visibility
	alpha      float64
	focusable  bool
	focused    bool
	cullable   bool

	detached       bool
	detachedOrigin geometry.Point

	pins       int
	freeOnZero bool

	needsLayout bool

	attributes map[string]attributeSetter
}

// NewView returns a standalone leaf view.
func NewView() *ViewBase {
	v := &ViewBase{}
	v.Init(v)
	return v
}

// Init prepares an embedded ViewBase: allocates its layout node from the
// current engine, sets defaults and registers the base attribute set. Every
// constructor of a type embedding ViewBase must call it with the outermost
// value so overridden methods dispatch correctly.
func (v *ViewBase) Init(self View) {
	v.self = self
	v.layoutNode = layout.NewNodeAdapter(LayoutEngine())
	v.visibility = VisibilityVisible
	v.alpha = 1
	v.cullable = true
	v.attributes = make(map[string]attributeSetter)
	v.registerBaseAttributes()
}

// Base returns the view's common state.
func (v *ViewBase) Base() *ViewBase {
	return v
}

// AsBox returns nil: a plain view is not a container.
func (v *ViewBase) AsBox() *Box {
	return nil
}

// Self returns the outermost view this base belongs to.
func (v *ViewBase) Self() View {
	return v.self
}

// ID returns the view identifier.
func (v *ViewBase) ID() string {
	return v.id
}

// SetID sets the view identifier. Uniqueness within a tree is conventional,
// not enforced.
func (v *ViewBase) SetID(id string) {
	v.id = id
}

// Parent returns the owning container, or nil for a root or standalone view.
func (v *ViewBase) Parent() *Box {
	return v.parent
}

// setParent updates the non-owning back-reference. Always cleared before the
// view is destroyed.
func (v *ViewBase) setParent(parent *Box) {
	v.parent = parent
}

// LayoutNode returns the adapter delegating this view's geometry.
func (v *ViewBase) LayoutNode() *layout.NodeAdapter {
	return v.layoutNode
}

// X returns the view's absolute x position.
func (v *ViewBase) X() float64 {
	parentX := 0.0
	if v.parent != nil {
		parentX = v.parent.X()
	}
	if v.detached {
		return v.detachedOrigin.X + parentX
	}
	return v.layoutNode.X() + parentX
}

// Y returns the view's absolute y position.
func (v *ViewBase) Y() float64 {
	parentY := 0.0
	if v.parent != nil {
		parentY = v.parent.Y()
	}
	if v.detached {
		return v.detachedOrigin.Y + parentY
	}
	return v.layoutNode.Y() + parentY
}

// Width returns the view's resolved width.
func (v *ViewBase) Width() float64 {
	return v.layoutNode.Width()
}

// Height returns the view's resolved height.
func (v *ViewBase) Height() float64 {
	return v.layoutNode.Height()
}

// Frame returns the view's absolute bounds.
func (v *ViewBase) Frame() geometry.Rect {
	return geometry.RectFromXYWH(v.X(), v.Y(), v.Width(), v.Height())
}

// Visibility returns the view's visibility state.
func (v *ViewBase) Visibility() Visibility {
	return v.visibility
}

// SetVisibility updates the visibility state.
func (v *ViewBase) SetVisibility(visibility Visibility) {
	v.visibility = visibility
	v.Invalidate()
}

// Alpha returns the view's opacity in [0,1].
func (v *ViewBase) Alpha() float64 {
	return v.alpha
}

// SetAlpha sets the view's opacity, clamped to [0,1].
func (v *ViewBase) SetAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	v.alpha = alpha
}

// Focusable reports whether the view can receive focus.
func (v *ViewBase) Focusable() bool {
	return v.focusable
}

// SetFocusable updates the focusable flag.
func (v *ViewBase) SetFocusable(focusable bool) {
	v.focusable = focusable
}

// Focused reports whether this view currently holds focus.
func (v *ViewBase) Focused() bool {
	return v.focused
}

// Cullable reports whether the draw pass may cull this view against
// ancestor bounds.
func (v *ViewBase) Cullable() bool {
	return v.cullable
}

// SetCullable updates the cullable flag. Views drawing outside their frame
// (shadows, overflowing decorations) turn this off.
func (v *ViewBase) SetCullable(cullable bool) {
	v.cullable = cullable
}

// Detached reports whether the view is excluded from layout-engine
// participation.
func (v *ViewBase) Detached() bool {
	return v.detached
}

// SetDetached marks the view as detached. Must be set before the view is
// added to a container.
func (v *ViewBase) SetDetached(detached bool) {
	v.detached = detached
}

// SetDetachedPosition positions a detached view relative to its parent.
func (v *ViewBase) SetDetachedPosition(x, y float64) {
	v.detachedOrigin = geometry.Point{X: x, Y: y}
}

// Pin marks the view as externally retained: teardown of the owning
// container detaches it instead of destroying it.
func (v *ViewBase) Pin() {
	v.pins++
}

// Unpin releases one external retain. When the last pin drops on a view
// whose destruction was deferred, the view is destroyed.
func (v *ViewBase) Unpin() {
	if v.pins == 0 {
		return
	}
	v.pins--
	if v.pins == 0 && v.freeOnZero {
		v.freeOnZero = false
		v.self.Destroy()
	}
}

// Pinned reports whether the view is externally retained.
func (v *ViewBase) Pinned() bool {
	return v.pins > 0
}

// Invalidate marks the subtree for re-layout and bubbles the flag to the
// root so the next frame recomputes geometry before reading it.
func (v *ViewBase) Invalidate() {
	if v.layoutNode != nil {
		v.layoutNode.MarkDirty()
	}
	v.needsLayout = true
	if v.parent != nil {
		v.parent.Invalidate()
	}
}

// NeedsLayout reports whether geometry must be recomputed before reading.
func (v *ViewBase) NeedsLayout() bool {
	return v.needsLayout
}

// ClearNeedsLayout resets the re-layout flag after a calculate pass.
func (v *ViewBase) ClearNeedsLayout() {
	v.needsLayout = false
}

// DefaultFocus returns the view itself when focusable, nil otherwise.
func (v *ViewBase) DefaultFocus() View {
	if v.focusable && v.visibility == VisibilityVisible {
		return v.self
	}
	return nil
}

// NextFocus on a leaf view yields nothing; navigation starts at the parent.
func (v *ViewBase) NextFocus(direction input.Direction, from View) View {
	return nil
}

// ParentNavigationDecision passes through to the actual parent, recursively,
// until a container chooses to intercept.
func (v *ViewBase) ParentNavigationDecision(from View, proposed View, direction input.Direction) View {
	if v.parent == nil {
		return proposed
	}
	// Dispatch through the parent's self reference so a container that
	// shadows the hook (grids, wraparound menus) intercepts here.
	return v.parent.Base().self.ParentNavigationDecision(from, proposed, direction)
}

// HitTest returns the view when the point lies inside a visible, non
// transparent frame.
func (v *ViewBase) HitTest(point geometry.Point) View {
	if v.alpha == 0 || v.visibility != VisibilityVisible {
		return nil
	}
	if v.Frame().Contains(point) {
		return v.self
	}
	return nil
}

// Draw issues the view's draw call unless it is hidden or fully transparent.
func (v *ViewBase) Draw(ctx *FrameContext) {
	if v.visibility != VisibilityVisible || v.alpha == 0 {
		return
	}
	if ctx != nil && ctx.Renderer != nil {
		ctx.Renderer.DrawView(v.self, v.Frame())
	}
}

// WillAppear is a lifecycle hook; the base implementation does nothing.
func (v *ViewBase) WillAppear(resetState bool) {}

// WillDisappear is a lifecycle hook; the base implementation does nothing.
func (v *ViewBase) WillDisappear(resetState bool) {}

// OnWindowSizeChanged is a lifecycle hook; the base implementation does
// nothing.
func (v *ViewBase) OnWindowSizeChanged() {}

// OnFocusGained records that this view now holds focus.
func (v *ViewBase) OnFocusGained() {
	v.focused = true
}

// OnFocusLost records that this view no longer holds focus.
func (v *ViewBase) OnFocusLost() {
	v.focused = false
}

// OnParentFocusGained is a hook for combined highlight states.
func (v *ViewBase) OnParentFocusGained(focused View) {}

// OnParentFocusLost is a hook for combined highlight states.
func (v *ViewBase) OnParentFocusLost(focused View) {}

// ViewByID returns the view when the identifier matches, nil otherwise.
func (v *ViewBase) ViewByID(id string) View {
	if id != "" && id == v.id {
		return v.self
	}
	return nil
}

// Destroy releases a leaf view. Pinned views defer to the pin holder.
func (v *ViewBase) Destroy() {
	if v.pins > 0 {
		v.freeOnZero = true
		return
	}
	v.setParent(nil)
}

// Describe returns the concrete type name, with the identifier when set.
func (v *ViewBase) Describe() string {
	name := "View"
	if v.self != nil {
		t := reflect.TypeOf(v.self)
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		name = t.Name()
	}
	if v.id != "" {
		return name + "(" + v.id + ")"
	}
	return name
}
