package picklist

import "testing"

func TestNewStateIsClosed(t *testing.T) {
	if NewState().Open {
		t.Error("initial state should be closed")
	}
}

func TestToggleNegates(t *testing.T) {
	s := NewState().Toggle()
	if !s.Open {
		t.Error("toggling the initial state should open it")
	}
	if s.Toggle().Open {
		t.Error("toggling an open state should close it")
	}
}

func TestToggleInvolution(t *testing.T) {
	states := []State{{Open: false}, {Open: true}}
	for _, s := range states {
		if s.Toggle().Toggle() != s {
			t.Errorf("Toggle twice changed %+v", s)
		}
	}
}

func TestToggleDoesNotMutateReceiver(t *testing.T) {
	s := NewState()
	s.Toggle()
	if s.Open {
		t.Error("Toggle must return a new state, not mutate the receiver")
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{Down, "down"},
		{Up, "up"},
		{Direction(0), "down"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}
