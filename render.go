package picklist

import (
	"github.com/picklist-dev/picklist/pkg/vdom"
)

// Stylesheet is the widget's base layout CSS, served once per page (see
// render.Page.Styles). All coloring comes from Palette inline styles;
// the stylesheet only fixes structure.
const Stylesheet = `.picklist{display:inline-flex;flex-direction:column;gap:2px;font-family:system-ui,sans-serif;min-width:12rem}
.picklist-toggle{padding:6px 12px;text-align:left;cursor:pointer;border-radius:3px}
.picklist-group{display:flex;gap:2px;padding:2px;border-radius:3px}
.picklist-group-btn{flex:1;padding:4px 8px;cursor:pointer;background:transparent;border:none;color:inherit;border-radius:2px}
.picklist-group-btn:hover{background:rgba(0,0,0,.06)}
.picklist-options{display:flex;flex-direction:column;padding:4px;max-height:15rem;overflow-y:auto;border-radius:3px}
.picklist-row{display:flex;align-items:center;gap:6px;padding:3px 4px;cursor:pointer;border-radius:2px}
.picklist-row:hover{background:rgba(0,0,0,.04)}`

// Render produces the widget's visual tree for the given config, state,
// and items. It is pure: the host's slice is only read, and interaction
// surfaces as intent callbacks on the config.
//
// Closed state renders the toggle button alone. Open state adds the
// group-operations panel (when configured) and the checklist. Direction
// affects stacking only: panels open below the button for Down and above
// it for Up, with the group panel always adjacent to the button.
func Render[T any](cfg Config[T], state State, items []T) *vdom.VNode {
	args := []any{
		vdom.Class("picklist"),
		vdom.Data("state", stateName(state)),
		vdom.Data("direction", cfg.direction.String()),
	}

	button := toggleButton(cfg, state)

	if !state.Open {
		return vdom.Div(append(args, button)...)
	}

	group := groupPanel(cfg)
	list := checklistPanel(cfg, items)

	if cfg.direction == Up {
		args = append(args, list, group, button)
	} else {
		args = append(args, button, group, list)
	}
	return vdom.Div(args...)
}

func stateName(s State) string {
	if s.Open {
		return "open"
	}
	return "closed"
}

// toggleButton renders the always-present button. Activation computes
// the next state and hands it to the host; the button stores nothing.
func toggleButton[T any](cfg Config[T], state State) *vdom.VNode {
	return vdom.Button(
		vdom.Type("button"),
		vdom.Class("picklist-toggle"),
		vdom.StyleAttr("background-color:"+cfg.palette.ButtonFill+
			";border:1px solid "+cfg.palette.ButtonBorder+
			";color:"+cfg.palette.Text),
		vdom.AriaExpanded(state.Open),
		vdom.AriaHasPopup("listbox"),
		vdom.OnClick(func() {
			if cfg.onStateChange != nil {
				cfg.onStateChange(state.Toggle())
			}
		}),
		cfg.label,
	)
}

// groupPanel renders the check-all/uncheck-all buttons, or nothing when
// group operations were not configured. The two buttons are fixed in
// label and order.
func groupPanel[T any](cfg Config[T]) *vdom.VNode {
	if cfg.onSetAll == nil {
		return nil
	}
	return vdom.Div(
		vdom.Class("picklist-group"),
		vdom.StyleAttr(panelStyle(cfg.palette)),
		groupButton(cfg.onSetAll, true, "Check All"),
		groupButton(cfg.onSetAll, false, "Uncheck All"),
	)
}

func groupButton(onSetAll func(bool), check bool, label string) *vdom.VNode {
	return vdom.Button(
		vdom.Type("button"),
		vdom.Class("picklist-group-btn"),
		vdom.OnClick(func() { onSetAll(check) }),
		label,
	)
}

// checklistPanel renders one row per item in input order.
func checklistPanel[T any](cfg Config[T], items []T) *vdom.VNode {
	return vdom.Div(
		vdom.Class("picklist-options"),
		vdom.Role("listbox"),
		vdom.AriaLabel(cfg.label),
		vdom.StyleAttr(panelStyle(cfg.palette)),
		vdom.Range(items, func(item T, _ int) *vdom.VNode {
			return checklistRow(cfg, item)
		}),
	)
}

// checklistRow renders a label-wrapped checkbox. The checkbox reflects
// itemChecked(item); activating it reports the item back to the host,
// which decides the new checked value (typically via ToggleItem). The
// browser-side checked flag is deliberately ignored.
func checklistRow[T any](cfg Config[T], item T) *vdom.VNode {
	checked := cfg.itemChecked(item)

	checkboxState := "unchecked"
	if checked {
		checkboxState = "checked"
	}

	return vdom.El("label",
		vdom.Class("picklist-row"),
		vdom.Input(
			vdom.Type("checkbox"),
			vdom.Class("picklist-checkbox"),
			vdom.AttrIf(checked, vdom.Checked()),
			vdom.Data("state", checkboxState),
			vdom.OnChange(func(bool) {
				if cfg.onToggleItem != nil {
					cfg.onToggleItem(item)
				}
			}),
		),
		vdom.Span(cfg.itemLabel(item)),
	)
}

func panelStyle(p Palette) string {
	return "background-color:" + p.Fill + ";border:1px solid " + p.Border + ";color:" + p.Text
}
