// Package clientdist embeds the browser runtime served by the live
// server.
package clientdist

import _ "embed"

// PicklistJS is the thin client served at the configured client path.
// It connects the page back to its session, forwards DOM events, and
// applies patch frames.
//
//go:embed picklist.js
var PicklistJS []byte
