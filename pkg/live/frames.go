package live

import (
	"fmt"

	"github.com/picklist-dev/picklist/pkg/render"
	"github.com/picklist-dev/picklist/pkg/vdom"
)

// Frame types on the wire. All frames are JSON text messages.
const (
	frameEvent   = "event"   // client → server
	framePing    = "ping"    // both directions
	framePong    = "pong"    // both directions
	framePatches = "patches" // server → client
	frameError   = "error"   // server → client
)

// eventFrame is an incoming frame from the client. Type selects which of
// the remaining fields are meaningful.
type eventFrame struct {
	Type  string `json:"type"`
	HID   string `json:"hid,omitempty"`
	Event string `json:"event,omitempty"` // "click", "change", "input"
	Value string `json:"value,omitempty"`
	TS    int64  `json:"ts,omitempty"`
}

// patchesFrame carries a batch of DOM patches to the client.
type patchesFrame struct {
	Type    string      `json:"type"`
	Seq     uint64      `json:"seq"`
	Patches []wirePatch `json:"patches"`
}

// wirePatch is the JSON form of a vdom.Patch. Node payloads are rendered
// to an HTML string the client can splice into the document.
type wirePatch struct {
	Op       string `json:"op"`
	HID      string `json:"hid,omitempty"`
	Key      string `json:"key,omitempty"`
	Value    string `json:"value,omitempty"`
	HTML     string `json:"html,omitempty"`
	Index    int    `json:"index"`
	ParentID string `json:"parent,omitempty"`
}

// errorFrame reports a coded error to the client.
type errorFrame struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// pingFrame is the heartbeat sent by the write loop; the client echoes it
// back as a pong with the same timestamp.
type pingFrame struct {
	Type string `json:"type"`
	TS   int64  `json:"ts"`
}

// opString maps a patch op to its wire name.
func opString(op vdom.PatchOp) string {
	switch op {
	case vdom.PatchSetText:
		return "set-text"
	case vdom.PatchSetAttr:
		return "set-attr"
	case vdom.PatchRemoveAttr:
		return "remove-attr"
	case vdom.PatchInsertNode:
		return "insert"
	case vdom.PatchRemoveNode:
		return "remove"
	case vdom.PatchMoveNode:
		return "move"
	case vdom.PatchReplaceNode:
		return "replace"
	case vdom.PatchSetValue:
		return "set-value"
	case vdom.PatchSetChecked:
		return "set-checked"
	default:
		return "unknown"
	}
}

// convertPatches turns vdom patches into their wire form, rendering node
// payloads to HTML. Rendered nodes keep their data-hid attributes, so
// handlers stay addressable after the client splices them in.
func convertPatches(r *render.Renderer, patches []vdom.Patch) ([]wirePatch, error) {
	wire := make([]wirePatch, 0, len(patches))
	for _, p := range patches {
		wp := wirePatch{
			Op:       opString(p.Op),
			HID:      p.HID,
			Key:      p.Key,
			Value:    p.Value,
			Index:    p.Index,
			ParentID: p.ParentID,
		}
		if p.Node != nil {
			html, err := r.RenderToString(p.Node)
			if err != nil {
				return nil, fmt.Errorf("render patch node: %w", err)
			}
			wp.HTML = html
		}
		wire = append(wire, wp)
	}
	return wire, nil
}

// hasUnanchored reports whether any patch targets an element without a
// hydration ID. Such patches cannot be applied client-side; the session
// falls back to replacing the whole view.
func hasUnanchored(patches []vdom.Patch) bool {
	for _, p := range patches {
		switch p.Op {
		case vdom.PatchInsertNode, vdom.PatchMoveNode:
			if p.ParentID == "" {
				return true
			}
		default:
			if p.HID == "" {
				return true
			}
		}
	}
	return false
}
