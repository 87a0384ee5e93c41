// Package vdom defines the virtual node tree that picklist components
// render into, along with the helpers to build, walk, and diff it.
//
// Trees are plain values. Nothing in this package performs I/O or holds
// global state; rendering a tree to HTML lives in pkg/render, and pushing
// tree updates to a browser lives in pkg/live.
//
// Building a tree:
//
//	node := vdom.Div(
//	    vdom.Class("panel"),
//	    vdom.Button(vdom.OnClick(onToggle), vdom.Text("Fruits")),
//	)
//
// Element constructors accept attributes, event handlers, child nodes,
// child slices, and bare strings (shorthand for text nodes) in any order.
// Nil arguments are skipped, which keeps conditional construction terse.
package vdom
