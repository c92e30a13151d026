// Package inflate builds view trees from XML UI documents.
//
// A document is a single root element whose tag must match the container tag
// ("Box"); each element maps to a registered view kind, its attributes are
// applied in authoring order, and its child elements become child views.
// Structural mistakes — wrong root tag, unknown tag, unknown attribute —
// are fatal: they indicate a bug in the UI definition, caught at inflation
// time rather than deferred.
package inflate

import (
	"os"
	"sync"

	"github.com/go-boreal/boreal/pkg/core"
	"github.com/go-boreal/boreal/pkg/errors"
	"github.com/go-boreal/boreal/pkg/layout"
)

// RootTag is the tag the root element of every UI document must carry.
const RootTag = "Box"

// Creator constructs an empty view of one registered kind.
type Creator func() core.View

var (
	registryMu sync.RWMutex
	registry   = map[string]Creator{}
)

// RegisterView registers a view kind under a tag name. Registering a tag
// again overrides the previous creator, which lets applications substitute
// their own implementation for a built-in kind.
func RegisterView(tag string, creator Creator) {
	registryMu.Lock()
	registry[tag] = creator
	registryMu.Unlock()
}

// creatorFor looks up a registered view kind.
func creatorFor(tag string) (Creator, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	creator, ok := registry[tag]
	return creator, ok
}

func init() {
	RegisterView("Box", func() core.View { return core.NewBox(layout.AxisRow) })
	RegisterView("View", func() core.View { return core.NewView() })
	RegisterView("Spacer", func() core.View { return core.NewSpacer() })
}

// String inflates a UI document held in markup text into the target box.
func String(target *core.Box, markup string) {
	root, err := ParseString(markup)
	if err != nil {
		errors.Fatalf("inflate.String", "invalid markup when inflating %s: %v", target.Describe(), err)
	}
	Tree(target, root)
}

// File inflates a UI document read from an explicit file path.
func File(target *core.Box, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		errors.Fatalf("inflate.File", "cannot read %s when inflating %s: %v", path, target.Describe(), err)
	}
	String(target, string(data))
}

// Resource inflates a named bundled resource. The custom resources override
// directory is checked first, then the bundled resources directory.
func Resource(target *core.Box, name string) {
	if path, ok := lookupResource(name); ok {
		File(target, path)
		return
	}
	errors.Fatalf("inflate.Resource", "resource %q not found when inflating %s", name, target.Describe())
}

// Tree inflates a parsed document into the target box. The root element's
// tag must be RootTag; its attributes apply to the target and its children
// become the target's child views.
func Tree(target *core.Box, root *Element) {
	if root.Tag != RootTag {
		errors.Fatalf("inflate.Tree", "root element is %q, expected %q", root.Tag, RootTag)
	}

	for _, attr := range root.Attributes {
		target.ApplyAttribute(attr.Name, attr.Value)
	}

	for _, child := range root.Children {
		target.AddView(ViewFromElement(child))
	}
}

// ViewFromElement builds one view (and its subtree) from an element.
// An unregistered tag is fatal, as are child elements under a leaf view.
func ViewFromElement(element *Element) core.View {
	creator, ok := creatorFor(element.Tag)
	if !ok {
		errors.Fatalf("inflate.ViewFromElement", "unknown view tag %q", element.Tag)
	}

	view := creator()
	for _, attr := range element.Attributes {
		view.ApplyAttribute(attr.Name, attr.Value)
	}

	if len(element.Children) > 0 {
		box := view.AsBox()
		if box == nil {
			errors.Fatalf("inflate.ViewFromElement",
				"%s is not a container and cannot have child elements", view.Describe())
		}
		for _, child := range element.Children {
			box.AddView(ViewFromElement(child))
		}
	}

	return view
}
