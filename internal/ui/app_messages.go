package ui

// AddTaskMsg adds an untitled task to the board in the visible month (a).
type AddTaskMsg struct{}

// ShiftTaskMsg moves the focused task by Days, keeping its duration (shift+←/→).
type ShiftTaskMsg struct {
	Days int
}

// ChangeMonthMsg moves the visible month by Delta months ([ ], g p, g n).
type ChangeMonthMsg struct {
	Delta int
}

// ToggleThemeMsg switches between the dark and light themes (t).
type ToggleThemeMsg struct{}

// ShowHelpMsg opens the key reference (?).
type ShowHelpMsg struct{}

// DismissOverlayMsg closes the top overlay.
type DismissOverlayMsg struct{}
