package vdom

import "strings"

// VKind discriminates the node variants.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Escaped text
	KindFragment              // Grouping without a wrapper element
	KindRaw                   // Unescaped HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a single node in the virtual tree.
type VNode struct {
	Kind     VKind    // Node variant
	Tag      string   // Element tag name, e.g. "div"
	Props    Props    // Attributes and event handlers
	Children []*VNode // Child nodes
	Key      string   // Reconciliation key
	Text     string   // Content for KindText and KindRaw
	HID      string   // Hydration ID, assigned before live rendering
}

// Props holds attributes and event handlers keyed by attribute name.
// Event handlers use their "on"-prefixed name ("onclick", "onchange").
type Props map[string]any

// IsInteractive reports whether the node carries any event handler and
// therefore needs a hydration ID.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if IsHandlerKey(key) {
			return true
		}
	}
	return false
}

// IsHandlerKey reports whether a prop key names an event handler.
// Handler keys are "on"-prefixed: "onclick", "onchange", and so on.
func IsHandlerKey(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// Attr is a single attribute key/value pair.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty reports whether the attribute is the zero value. Conditional
// helpers return empty attrs, which element constructors skip.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler binds a handler to an event name.
type EventHandler struct {
	Event   string // "onclick", "onchange", etc.
	Handler any    // func(), func(bool), func(string), or func(Event) wire types
}
