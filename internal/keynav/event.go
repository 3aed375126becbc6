package keynav

// Key names recognized by the navigation table. Matching is exact and case-sensitive.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyEnter      = "Enter"
	KeySpace      = " "
)

// Event is a single key press delivered by a Source.
type Event struct {
	Key string

	defaultPrevented bool
}

// NewEvent creates an event for the given key name.
func NewEvent(key string) *Event {
	return &Event{Key: key}
}

// PreventDefault marks the event's default action as suppressed.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether any listener suppressed the default action.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}
