package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// navigationHelp lists the roving-focus keys handled by keynav.
var navigationHelp = [][2]string{
	{"→ / ↓", "focus next task"},
	{"← / ↑", "focus previous task"},
	{"home", "focus first task"},
	{"end", "focus last task"},
	{"enter / space", "open focused task"},
}

// HelpView is the key reference popup.
type HelpView struct {
	registry *KeybindRegistry
	theme    Theme
	viewport viewport.Model
}

// Ensure HelpView implements View.
var _ View = (*HelpView)(nil)

// NewHelpView creates the help popup for the bindings in reg.
func NewHelpView(reg *KeybindRegistry, th Theme, width, height int) *HelpView {
	v := &HelpView{registry: reg, theme: th}
	v.resize(width, height)
	return v
}

// Markdown returns the key reference as markdown.
func (v *HelpView) Markdown() string {
	var b strings.Builder
	b.WriteString("# Keys\n\n## Navigation\n\n| Key | Action |\n|---|---|\n")
	for _, row := range navigationHelp {
		fmt.Fprintf(&b, "| `%s` | %s |\n", row[0], row[1])
	}

	b.WriteString("\n## Commands\n\n| Key | Action |\n|---|---|\n")
	hints := v.registry.Hints()
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "| `%s` | %s |\n", k, hints[k])
	}
	return b.String()
}

func (v *HelpView) resize(width, height int) {
	w, h := overlaySize(width, height)
	v.viewport = viewport.New(w, h)
	v.viewport.SetContent(renderMarkdown(v.Markdown(), w, v.theme.Dark))
}

// Init implements View.
func (v *HelpView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *HelpView) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		v.resize(ws.Width, ws.Height)
		return v, nil
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *HelpView) View() string {
	return v.theme.Box.Render(v.viewport.View() + "\n" + v.theme.Hint.Render("↑/↓ scroll  esc/? close"))
}
