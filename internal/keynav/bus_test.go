package keynav

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestBus_DispatchOrder(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.AddListener(func(ev *Event) { got = append(got, "first:"+ev.Key) })
	bus.AddListener(func(ev *Event) { got = append(got, "second:"+ev.Key) })

	bus.Dispatch("x")
	bus.Dispatch("y")

	want := []string{"first:x", "second:x", "first:y", "second:y"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBus_RemoveListener(t *testing.T) {
	bus := NewBus()
	var calls int
	id := bus.AddListener(func(*Event) { calls++ })
	if bus.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bus.Len())
	}
	bus.RemoveListener(id)
	bus.RemoveListener(id)
	bus.RemoveListener(12345)
	bus.Dispatch("x")
	if calls != 0 {
		t.Errorf("removed listener called %d times", calls)
	}
	if bus.Len() != 0 {
		t.Errorf("Len = %d, want 0", bus.Len())
	}
}

func TestBus_NilListenerIgnored(t *testing.T) {
	bus := NewBus()
	if id := bus.AddListener(nil); id != 0 {
		t.Errorf("AddListener(nil) = %d, want 0", id)
	}
	if bus.Len() != 0 {
		t.Errorf("Len = %d, want 0", bus.Len())
	}
}

func TestBus_RemoveDuringDispatchSkipsPending(t *testing.T) {
	bus := NewBus()
	var secondID ListenerID
	var secondCalls int
	bus.AddListener(func(*Event) { bus.RemoveListener(secondID) })
	secondID = bus.AddListener(func(*Event) { secondCalls++ })

	bus.Dispatch("x")
	if secondCalls != 0 {
		t.Errorf("listener removed mid-dispatch was called %d times", secondCalls)
	}
}

func TestBus_AddDuringDispatchWaitsForNextEvent(t *testing.T) {
	bus := NewBus()
	var lateCalls int
	added := false
	bus.AddListener(func(*Event) {
		if !added {
			added = true
			bus.AddListener(func(*Event) { lateCalls++ })
		}
	})

	bus.Dispatch("x")
	if lateCalls != 0 {
		t.Fatalf("listener added mid-dispatch saw the current event")
	}
	bus.Dispatch("y")
	if lateCalls != 1 {
		t.Errorf("lateCalls = %d, want 1", lateCalls)
	}
}

func TestBus_PreventDefaultVisibleToCaller(t *testing.T) {
	bus := NewBus()
	bus.AddListener(func(ev *Event) {
		if ev.Key == KeyHome {
			ev.PreventDefault()
		}
	})
	if bus.Dispatch("x").DefaultPrevented() {
		t.Error("x should not be prevented")
	}
	if !bus.Dispatch(KeyHome).DefaultPrevented() {
		t.Error("Home should be prevented")
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want string
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, KeyArrowUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, KeyArrowDown},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, KeyArrowLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, KeyArrowRight},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, KeyHome},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, KeyEnd},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, KeyEnter},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, KeySpace},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "q"},
		{"shift left", tea.KeyMsg{Type: tea.KeyShiftLeft}, "shift+left"},
		{"alt down", tea.KeyMsg{Type: tea.KeyDown, Alt: true}, "alt+down"},
		{"ctrl c", tea.KeyMsg{Type: tea.KeyCtrlC}, "ctrl+c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyName(tt.msg); got != tt.want {
				t.Errorf("KeyName = %q, want %q", got, tt.want)
			}
		})
	}
}
