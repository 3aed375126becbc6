package keynav

import tea "github.com/charmbracelet/bubbletea"

// teaKeyNames maps Bubble Tea key types onto navigation key names.
var teaKeyNames = map[tea.KeyType]string{
	tea.KeyUp:    KeyArrowUp,
	tea.KeyDown:  KeyArrowDown,
	tea.KeyLeft:  KeyArrowLeft,
	tea.KeyRight: KeyArrowRight,
	tea.KeyHome:  KeyHome,
	tea.KeyEnd:   KeyEnd,
	tea.KeyEnter: KeyEnter,
	tea.KeySpace: KeySpace,
}

// KeyName converts a Bubble Tea key message into a navigation key name.
// Keys without a mapping, and any key pressed with alt, keep their
// tea.KeyMsg.String() form (e.g. "q", "shift+left", "alt+down").
func KeyName(msg tea.KeyMsg) string {
	if !msg.Alt {
		if name, ok := teaKeyNames[msg.Type]; ok {
			return name
		}
	}
	return msg.String()
}
