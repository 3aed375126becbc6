package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

func newHelpModel(th Theme) help.Model {
	m := help.New()
	m.Styles.ShortKey = th.Key
	m.Styles.ShortDesc = th.Hint
	m.Styles.ShortSeparator = th.Hint
	m.Styles.FullKey = th.Key
	m.Styles.FullDesc = th.Hint
	m.Styles.FullSeparator = th.Hint
	return m
}

// RenderKeybindHelp produces the transient hint box shown while a leader
// sequence is pending, e.g. after "g".
func RenderKeybindHelp(h *KeyHandler, th Theme) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	pending := h.Pending()
	hints := h.Registry.NextHints(pending)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	content := th.Hint.Render(pending) + " " + newHelpModel(th).ShortHelpView(bindings)
	return th.HintBox.Render(content)
}

// RenderHintBar renders the single-key bindings as a one-line footer.
func RenderHintBar(reg *KeybindRegistry, th Theme, width int) string {
	m := newHelpModel(th)
	m.Width = width
	return m.ShortHelpView(NewKeyMap(reg).ShortHelp())
}
