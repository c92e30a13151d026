package core

import (
	"strconv"

	"github.com/go-boreal/boreal/pkg/errors"
)

// attributeSetter applies a raw attribute value to a view.
type attributeSetter func(value string)

// RegisterStringAttribute declares a string attribute on the view.
// Registering a name again overrides the previous setter, which is how an
// embedding view specializes an inherited attribute.
func (v *ViewBase) RegisterStringAttribute(name string, apply func(value string)) {
	v.attributes[name] = func(value string) {
		apply(value)
	}
}

// RegisterFloatAttribute declares a float attribute on the view. A value
// that does not parse is a fatal inflation error.
func (v *ViewBase) RegisterFloatAttribute(name string, apply func(value float64)) {
	v.attributes[name] = func(value string) {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			errors.Fatalf("core.View.ApplyAttribute",
				"attribute %q of %s: %q is not a number", name, v.Describe(), value)
		}
		apply(parsed)
	}
}

// RegisterBoolAttribute declares a boolean attribute on the view.
func (v *ViewBase) RegisterBoolAttribute(name string, apply func(value bool)) {
	v.attributes[name] = func(value string) {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			errors.Fatalf("core.View.ApplyAttribute",
				"attribute %q of %s: %q is not a boolean", name, v.Describe(), value)
		}
		apply(parsed)
	}
}

// RegisterIntAttribute declares an integer attribute on the view.
func (v *ViewBase) RegisterIntAttribute(name string, apply func(value int)) {
	v.attributes[name] = func(value string) {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			errors.Fatalf("core.View.ApplyAttribute",
				"attribute %q of %s: %q is not an integer", name, v.Describe(), value)
		}
		apply(parsed)
	}
}

// RegisterEnumAttribute declares an enum attribute on the view, mapping
// attribute values to enum constants. An unmapped value is a fatal
// inflation error.
func RegisterEnumAttribute[T comparable](v *ViewBase, name string, values map[string]T, apply func(value T)) {
	v.attributes[name] = func(value string) {
		mapped, ok := values[value]
		if !ok {
			errors.Fatalf("core.View.ApplyAttribute",
				"attribute %q of %s: unknown value %q", name, v.Describe(), value)
		}
		apply(mapped)
	}
}

// HasAttribute reports whether the view declares the attribute.
func (v *ViewBase) HasAttribute(name string) bool {
	_, ok := v.attributes[name]
	return ok
}

// ApplyAttribute applies a named attribute value. An unrecognized name is a
// fatal inflation error: it indicates a mistake in the UI definition.
func (v *ViewBase) ApplyAttribute(name, value string) {
	setter, ok := v.attributes[name]
	if !ok {
		errors.Fatalf("core.View.ApplyAttribute",
			"unknown attribute %q for %s", name, v.Describe())
	}
	setter(value)
}

// registerBaseAttributes declares the attributes every view understands.
func (v *ViewBase) registerBaseAttributes() {
	v.RegisterStringAttribute("id", v.SetID)

	RegisterEnumAttribute(v, "visibility", map[string]Visibility{
		"visible":   VisibilityVisible,
		"invisible": VisibilityInvisible,
		"gone":      VisibilityGone,
	}, v.SetVisibility)

	v.RegisterFloatAttribute("alpha", v.SetAlpha)
	v.RegisterBoolAttribute("focusable", v.SetFocusable)

	v.RegisterFloatAttribute("width", func(value float64) {
		v.layoutNode.SetWidth(value)
		v.Invalidate()
	})
	v.RegisterFloatAttribute("height", func(value float64) {
		v.layoutNode.SetHeight(value)
		v.Invalidate()
	})
	v.RegisterFloatAttribute("grow", func(value float64) {
		v.layoutNode.SetGrow(value)
		v.Invalidate()
	})
}
