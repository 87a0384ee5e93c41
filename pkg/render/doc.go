// Package render turns vdom trees into HTML.
//
// The renderer is pure: it writes out whatever the tree contains and
// never mutates it. Hydration IDs are emitted as data-hid attributes
// only when a node already carries one; assigning them is the live
// session's job (see vdom.AssignHIDs). Event handlers never reach the
// output. Each handled event leaves a data-on-<event> marker so the
// browser client knows which listeners to attach.
//
// Basic usage:
//
//	r := render.New(render.Config{})
//	html, err := r.RenderToString(tree)
//
// RenderPage wraps a tree in a full HTML document, and
// StreamingRenderer flushes the document in sections for faster
// first paint.
package render
