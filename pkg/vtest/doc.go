// Package vtest provides testing helpers for picklist views.
//
// It renders VNode trees to HTML for substring assertions, queries the
// tree directly, and fires events against registered handlers so intent
// callbacks can be tested without a browser.
//
// # Render assertions
//
//	tree := picklist.Render(cfg, state, items)
//	vtest.ExpectContains(t, tree, "Check All")
//	vtest.ExpectOrder(t, tree, "Apple", "Banana", "Cherry")
//
// # Tree queries
//
//	boxes := vtest.FindAll(tree, "input")
//	button := vtest.FindByText(tree, "Uncheck All")
//
// # Event firing
//
//	vtest.Click(t, button)          // runs the onclick handler
//	vtest.Change(t, boxes[0], "true") // runs the onchange handler
package vtest
