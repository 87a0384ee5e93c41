package showcase

import (
	"fmt"

	"github.com/picklist-dev/picklist"
	"github.com/picklist-dev/picklist/pkg/live"
	"github.com/picklist-dev/picklist/pkg/render"
	"github.com/picklist-dev/picklist/pkg/vdom"
)

// pageStyles fixes the chrome around the demos. Widget styling comes
// from picklist.Stylesheet.
const pageStyles = `body{margin:0;font-family:system-ui,sans-serif;color:#1a1a1a}
.showcase{max-width:40rem;margin:0 auto;padding:1rem 1rem 8rem}
.showcase-nav{display:flex;flex-wrap:wrap;gap:1rem;padding:1rem 0;border-bottom:1px solid #e0e0e0;margin-bottom:1.5rem}
.showcase-nav a{color:#3451b2;text-decoration:none}
.showcase-nav a:hover{text-decoration:underline}
.showcase-blurb{color:#555;max-width:34rem}
.showcase-summary{color:#555;font-size:.9rem}`

var navLinks = []struct {
	route string
	label string
}{
	{"/", "Basic"},
	{"/groups", "Group operations"},
	{"/tasks", "Custom items"},
	{"/direction", "Drop-up"},
	{"/palette", "Palette"},
}

// Pages returns every demo page keyed by route.
func Pages() map[string]live.Page {
	return map[string]live.Page{
		"/":          basicPage(),
		"/groups":    groupOpsPage(),
		"/tasks":     tasksPage(),
		"/direction": directionPage(),
		"/palette":   palettePage(),
	}
}

// StaticPages renders each demo once, in its mount state, for snapshot
// publishing. The snapshots carry no live bootstrap and stay inert.
func StaticPages() map[string]render.Page {
	out := make(map[string]render.Page)
	for route, pg := range Pages() {
		view := pg.Mount()
		out[route] = render.Page{
			Title:  pg.Title,
			Styles: pg.Styles,
			Body:   view(),
		}
	}
	return out
}

// page wraps demo content in the shared chrome.
func page(title, blurb string, content ...any) *vdom.VNode {
	args := []any{
		vdom.Class("showcase"),
		nav(),
		vdom.H1(title),
		vdom.P(vdom.Class("showcase-blurb"), blurb),
	}
	return vdom.Main(append(args, content...)...)
}

func nav() *vdom.VNode {
	links := make([]*vdom.VNode, 0, len(navLinks))
	for _, l := range navLinks {
		links = append(links, vdom.A(vdom.Href(l.route), l.label))
	}
	return vdom.Nav(vdom.Class("showcase-nav"), links)
}

func checkedSummary(items []picklist.Item) *vdom.VNode {
	n := 0
	for _, item := range items {
		if item.Checked {
			n++
		}
	}
	return vdom.P(vdom.Class("showcase-summary"), vdom.Textf("%d of %d checked", n, len(items)))
}

// basicPage owns its state the way any host does: the item slice and
// open flag live in the mount closure, and every intent callback
// replaces them before the session re-renders.
func basicPage() live.Page {
	return live.Page{
		Title:  "Picklist",
		Styles: []string{picklist.Stylesheet, pageStyles},
		Mount: func() live.View {
			state := picklist.NewState()
			items := []picklist.Item{
				{Label: "milk", Checked: true},
				{Label: "eggs"},
				{Label: "bread"},
				{Label: "coffee"},
			}
			return func() *vdom.VNode {
				cfg := picklist.New("Groceries",
					func(it picklist.Item) { items = picklist.ToggleItem(it, items) },
					func(s picklist.State) { state = s },
				)
				return page("Basic",
					"The widget is a pure view; this page keeps the item slice and swaps it on every toggle intent.",
					picklist.Render(cfg, state, items),
					checkedSummary(items),
				)
			}
		},
	}
}

func groupOpsPage() live.Page {
	return live.Page{
		Title:  "Group operations",
		Styles: []string{picklist.Stylesheet, pageStyles},
		Mount: func() live.View {
			state := picklist.NewState()
			items := []picklist.Item{
				{Label: "unit tests"},
				{Label: "integration tests"},
				{Label: "docs", Checked: true},
				{Label: "changelog"},
			}
			return func() *vdom.VNode {
				cfg := picklist.New("Release checklist",
					func(it picklist.Item) { items = picklist.ToggleItem(it, items) },
					func(s picklist.State) { state = s },
					picklist.WithGroupOperations(func(check bool) {
						items = picklist.SelectAll(check, items)
					}),
				)
				return page("Group operations",
					"WithGroupOperations adds the Check All and Uncheck All buttons; the host answers the set-all intent with SelectAll.",
					picklist.Render(cfg, state, items),
					checkedSummary(items),
				)
			}
		},
	}
}

// task is a richer item shape than picklist.Item. The projections hand
// the widget a label and a checked flag; toggling matches on ID so
// tasks with the same name stay independent.
type task struct {
	ID    int
	Name  string
	Owner string
	Done  bool
}

func toggleTask(id int, tasks []task) []task {
	next := make([]task, len(tasks))
	copy(next, tasks)
	for i := range next {
		if next[i].ID == id {
			next[i].Done = !next[i].Done
		}
	}
	return next
}

func tasksPage() live.Page {
	return live.Page{
		Title:  "Sprint tasks",
		Styles: []string{picklist.Stylesheet, pageStyles},
		Mount: func() live.View {
			state := picklist.NewState()
			tasks := []task{
				{ID: 1, Name: "wire metrics", Owner: "ana"},
				{ID: 2, Name: "review proxy change", Owner: "ben", Done: true},
				{ID: 3, Name: "fix flaky test", Owner: "ana"},
			}
			return func() *vdom.VNode {
				cfg := picklist.NewCustom("Sprint tasks",
					func(t task) string { return fmt.Sprintf("%s (%s)", t.Name, t.Owner) },
					func(t task) bool { return t.Done },
					func(t task) { tasks = toggleTask(t.ID, tasks) },
					func(s picklist.State) { state = s },
				)
				return page("Custom items",
					"NewCustom renders any item type; this page projects label and checked state out of a task struct and toggles by ID.",
					picklist.Render(cfg, state, tasks),
				)
			}
		},
	}
}

func directionPage() live.Page {
	return live.Page{
		Title:  "Drop-up",
		Styles: []string{picklist.Stylesheet, pageStyles},
		Mount: func() live.View {
			state := picklist.NewState()
			items := []picklist.Item{
				{Label: "syslog"},
				{Label: "stdout", Checked: true},
				{Label: "otlp"},
			}
			return func() *vdom.VNode {
				cfg := picklist.New("Log sinks",
					func(it picklist.Item) { items = picklist.ToggleItem(it, items) },
					func(s picklist.State) { state = s },
					picklist.WithDirection(picklist.Up),
					picklist.WithGroupOperations(func(check bool) {
						items = picklist.SelectAll(check, items)
					}),
				)
				return page("Drop-up",
					"WithDirection(Up) stacks the panels above the button, with the group panel kept adjacent to it.",
					vdom.Div(vdom.StyleAttr("margin-top:14rem"),
						picklist.Render(cfg, state, items),
					),
				)
			}
		},
	}
}

// palettePage starts open so the snapshot shows the colored panels.
func palettePage() live.Page {
	return live.Page{
		Title:  "Palette",
		Styles: []string{picklist.Stylesheet, pageStyles},
		Mount: func() live.View {
			state := picklist.State{Open: true}
			items := []picklist.Item{
				{Label: "amber", Checked: true},
				{Label: "teal"},
				{Label: "slate"},
			}
			return func() *vdom.VNode {
				cfg := picklist.New("Theme colors",
					func(it picklist.Item) { items = picklist.ToggleItem(it, items) },
					func(s picklist.State) { state = s },
					picklist.WithPalette(picklist.Palette{
						Fill:         "#1f2430",
						Border:       "#343f4c",
						ButtonFill:   "#2b3440",
						ButtonBorder: "#46525f",
						Text:         "#e6e1cf",
					}),
				)
				return page("Palette",
					"All five palette knobs ride along as inline styles: panel fill and border, button fill and border, text.",
					picklist.Render(cfg, state, items),
				)
			}
		},
	}
}
