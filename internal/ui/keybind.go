package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// LeaderKey starts a two-key sequence ("g n", "g p").
// Space is a selection key for timeline navigation, so it cannot lead.
const LeaderKey = "g"

// KeybindRegistry maps key sequences to commands.
// Sequences are space-separated tea key strings: "a", "shift+left", "g n".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help views.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// Hints returns all bound sequences with descriptions for display.
// Values are descriptions, or the sequence itself when none was set.
func (r *KeybindRegistry) Hints() map[string]string {
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == nil {
			continue
		}
		if d, ok := r.descriptions[seq]; ok && d != "" {
			out[seq] = d
		} else {
			out[seq] = seq
		}
	}
	return out
}

// NextHints returns the keys that may follow currentSeq, with descriptions.
func (r *KeybindRegistry) NextHints(currentSeq string) map[string]string {
	out := make(map[string]string)
	prefix := normalizeSeq(currentSeq) + " "
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		next := strings.Fields(rest)[0]
		if next != rest {
			out[next] = next + "…"
			continue
		}
		if d, ok := r.descriptions[seq]; ok && d != "" {
			out[next] = d
		} else {
			out[next] = seq
		}
	}
	return out
}

// normalizeSeq collapses whitespace so "g  n" and "g n" match.
func normalizeSeq(seq string) string {
	return strings.Join(strings.Fields(seq), " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // tea.KeyMsg.String() format
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with LeaderKey as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: LeaderKey,
	}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and must not
// reach the navigation bus.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, s)
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq); c != nil {
			h.reset()
			return true, c
		}
		// Stay in leader mode if a longer binding exists
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.reset()
		return true, nil
	}

	if s == h.LeaderKey && h.Registry.HasPrefix(s) {
		h.LeaderWaiting = true
		h.Buffer = []string{s}
		return true, nil
	}

	if c := h.Registry.Lookup(s); c != nil {
		return true, c
	}
	return false, nil
}

// Pending returns the sequence typed so far in leader mode.
func (h *KeyHandler) Pending() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// KeyMap implements help.KeyMap over a registry. Short help lists single-key
// bindings; full help adds leader sequences as a second column.
type KeyMap struct {
	registry *KeybindRegistry
}

// NewKeyMap creates a KeyMap for the given registry.
func NewKeyMap(registry *KeybindRegistry) help.KeyMap {
	return &KeyMap{registry: registry}
}

// ShortHelp returns single-key bindings sorted by key.
func (km *KeyMap) ShortHelp() []key.Binding {
	single, _ := km.split()
	return single
}

// FullHelp returns single-key bindings and leader sequences as two columns.
func (km *KeyMap) FullHelp() [][]key.Binding {
	single, seqs := km.split()
	var cols [][]key.Binding
	if len(single) > 0 {
		cols = append(cols, single)
	}
	if len(seqs) > 0 {
		cols = append(cols, seqs)
	}
	return cols
}

func (km *KeyMap) split() (single, seqs []key.Binding) {
	if km.registry == nil {
		return nil, nil
	}
	hints := km.registry.Hints()
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b := key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k]))
		if strings.Contains(k, " ") {
			seqs = append(seqs, b)
		} else {
			single = append(single, b)
		}
	}
	return single, seqs
}
