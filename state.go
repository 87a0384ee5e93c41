package picklist

// State is the widget's entire runtime state: whether the panel is open.
// The host application owns the State value and replaces it wholesale
// whenever the widget emits a new one through onStateChange. The widget
// itself never stores state between renders.
type State struct {
	Open bool
}

// NewState returns the initial state: closed.
func NewState() State {
	return State{}
}

// Toggle returns a new State with Open negated. It is pure and total;
// toggling twice returns the original state.
func (s State) Toggle() State {
	return State{Open: !s.Open}
}

// Direction controls which way the panels open relative to the toggle
// button. The zero value is Down.
type Direction uint8

const (
	// Down opens the panels below the button.
	Down Direction = iota
	// Up opens the panels above the button.
	Up
)

// String returns the direction in the lowercase form used for the
// container's data-direction attribute.
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}
