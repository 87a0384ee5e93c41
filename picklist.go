// Package picklist renders a multi-select dropdown checklist for
// server-driven Go web UIs.
//
// The widget is a pure view over host-owned state: the host keeps the
// State value and the item list, builds a Config fresh on every render,
// and reacts to the intents the widget emits (onStateChange,
// onToggleItem, group set-all). The widget never mutates anything and
// holds nothing between renders.
//
//	state := picklist.NewState()
//	items := []picklist.Item{{Label: "Apple"}, {Label: "Banana"}}
//
//	view := func() *vdom.VNode {
//		cfg := picklist.New("Fruit",
//			func(it picklist.Item) { items = picklist.ToggleItem(it, items) },
//			func(s picklist.State) { state = s },
//			picklist.WithGroupOperations(func(check bool) {
//				items = picklist.SelectAll(check, items)
//			}),
//		)
//		return picklist.Render(cfg, state, items)
//	}
//
// Render the view with pkg/render for static HTML, or mount it on
// pkg/live for checkbox-level interactivity over WebSocket.
package picklist

// Option adjusts the presentation settings shared by New and NewCustom.
type Option func(*settings)

// settings are the optional knobs. They are independent of the item
// type, which keeps options usable with any Config instantiation.
type settings struct {
	direction Direction
	palette   Palette
	onSetAll  func(bool)
}

func defaultSettings() settings {
	return settings{palette: DefaultPalette()}
}

// WithDirection sets which way the panels open. Default is Down.
func WithDirection(d Direction) Option {
	return func(s *settings) { s.direction = d }
}

// WithPalette overrides the default colors.
func WithPalette(p Palette) Option {
	return func(s *settings) { s.palette = p }
}

// WithGroupOperations enables the check-all/uncheck-all panel. onSetAll
// receives true for "Check All" and false for "Uncheck All". Without
// this option the group panel is not rendered at all.
func WithGroupOperations(onSetAll func(bool)) Option {
	return func(s *settings) { s.onSetAll = onSetAll }
}

// Config describes one widget instance for one render: the label,
// presentation settings, item projections, and the intent callbacks.
// Configs are cheap throwaway values; hosts build them fresh each render
// and never store them.
type Config[T any] struct {
	label         string
	direction     Direction
	palette       Palette
	onSetAll      func(bool)
	itemLabel     func(T) string
	itemChecked   func(T) bool
	onToggleItem  func(T)
	onStateChange func(State)
}

// New builds a Config for the stock Item shape. onToggleItem receives
// the item whose checkbox was activated; onStateChange receives the next
// State whenever the toggle button is activated.
func New(label string, onToggleItem func(Item), onStateChange func(State), opts ...Option) Config[Item] {
	return NewCustom(label,
		func(item Item) string { return item.Label },
		func(item Item) bool { return item.Checked },
		onToggleItem, onStateChange, opts...)
}

// NewCustom builds a Config for an arbitrary item type. itemLabel and
// itemChecked project the row text and checkbox state out of each item;
// the widget never looks inside T any other way.
func NewCustom[T any](label string,
	itemLabel func(T) string,
	itemChecked func(T) bool,
	onToggleItem func(T),
	onStateChange func(State),
	opts ...Option,
) Config[T] {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return Config[T]{
		label:         label,
		direction:     s.direction,
		palette:       s.palette,
		onSetAll:      s.onSetAll,
		itemLabel:     itemLabel,
		itemChecked:   itemChecked,
		onToggleItem:  onToggleItem,
		onStateChange: onStateChange,
	}
}
