package vtest

import (
	"strings"
	"testing"

	"github.com/picklist-dev/picklist/pkg/render"
	"github.com/picklist-dev/picklist/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string. Render
// errors come back as an empty string; assertions on the result fail
// loudly enough to surface them.
//
// Example:
//
//	html := vtest.RenderToString(view())
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.New(render.Config{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that the rendered output contains a substring.
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the rendered output does not contain a
// substring.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that the rendered output contains the tag.
func ExpectElement(t *testing.T, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that the rendered output contains attr="value".
func ExpectAttribute(t *testing.T, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// ExpectOrder asserts that the parts appear in the rendered output in
// the given order, each strictly after the previous one.
//
// Example:
//
//	vtest.ExpectOrder(t, tree, "Check All", "Uncheck All")
func ExpectOrder(t *testing.T, node *vdom.VNode, parts ...string) {
	t.Helper()
	html := RenderToString(node)
	at := 0
	for _, part := range parts {
		i := strings.Index(html[at:], part)
		if i < 0 {
			t.Errorf("expected %q at or after offset %d (order %v), got:\n%s",
				part, at, parts, truncate(html, 500))
			return
		}
		at += i + len(part)
	}
}

// truncate shortens a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
