package vtest

import (
	"testing"

	"github.com/picklist-dev/picklist/pkg/vdom"
)

// Click invokes the node's onclick handler, failing the test when none
// is registered.
func Click(t *testing.T, node *vdom.VNode) {
	t.Helper()
	fire(t, node, "onclick", "")
}

// Change invokes the node's onchange handler with the given value.
// Checkbox handlers taking a bool receive value == "true".
func Change(t *testing.T, node *vdom.VNode, value string) {
	t.Helper()
	fire(t, node, "onchange", value)
}

// Input invokes the node's oninput handler with the given value.
func Input(t *testing.T, node *vdom.VNode, value string) {
	t.Helper()
	fire(t, node, "oninput", value)
}

// fire dispatches to the registered handler the way the live runtime
// does: no-arg handlers run as-is, typed handlers get the value coerced.
func fire(t *testing.T, node *vdom.VNode, event, value string) {
	t.Helper()

	if node == nil {
		t.Fatalf("fire %s: nil node", event)
	}
	handler, ok := node.Props[event]
	if !ok {
		t.Fatalf("fire %s: no handler registered on <%s>", event, node.Tag)
	}

	switch h := handler.(type) {
	case func():
		h()
	case func(bool):
		h(value == "true")
	case func(string):
		h(value)
	default:
		t.Fatalf("fire %s: unsupported handler type %T", event, handler)
	}
}
