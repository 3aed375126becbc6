package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached per style and wrap width. A fixed standard style is
	// used instead of auto style, which would query the terminal on every build.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown renders md for the terminal. On renderer failure the raw
// markdown is returned so overlays always show something.
func renderMarkdown(md string, width int, dark bool) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	style := "light"
	if dark {
		style = "dark"
	}
	cacheKey := fmt.Sprintf("%s:%d", style, width)

	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()
	r := mdRenderers[cacheKey]
	if r == nil {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRenderers[cacheKey] = r
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
