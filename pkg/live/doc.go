// Package live provides the server-driven runtime that makes picklist
// widgets interactive in the browser without any client-side widget code.
//
// A host registers pages. Each page mounts a View, a closure that renders
// the host's current state as a vdom tree. The server renders the initial
// HTML with hydration IDs, the thin client connects back over WebSocket,
// and from then on every browser event round-trips through the server:
//
//  1. The client sends a JSON event frame {type, hid, event, value}.
//  2. The session finds the handler registered for that hydration ID and
//     event type and runs it. Handlers are the widget's intent callbacks,
//     so the host updates its state here.
//  3. The view re-renders, the old and new trees are diffed, and the
//     resulting patches are pushed to the client as a JSON frame.
//  4. The client applies the patches to the DOM.
//
// # Sessions
//
// A Session is created per page load and identified by a random ID that the
// page embeds in its boot script. The WebSocket connect attaches to that
// session. Each connected session runs three goroutines:
//
//   - ReadLoop: reads frames, answers pings, queues events
//   - EventLoop: dispatches events to handlers and re-renders
//   - WriteLoop: sends heartbeat pings
//
// Handlers and the current tree are confined to the event loop once the
// session starts; connection writes are serialized by a mutex shared with
// the ping loop.
//
// # Example
//
//	srv := live.New(nil)
//	srv.RegisterPage("/", live.Page{
//	    Title: "Fruit",
//	    Mount: func() live.View {
//	        state := picklist.NewState()
//	        items := []picklist.Item{{Label: "Apple"}, {Label: "Banana"}}
//	        cfg := picklist.New("Fruit",
//	            func(it picklist.Item) { items = picklist.ToggleItem(it, items) },
//	            func(next picklist.State) { state = next },
//	        )
//	        return func() *vdom.VNode { return picklist.Render(cfg, state, items) }
//	    },
//	})
//	srv.Run()
//
// The runtime reports session, event, and patch counters through the
// middleware package and opens a span per dispatched event.
package live
