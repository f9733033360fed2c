package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

var (
	rendererOnce     sync.Once
	markdownRenderer *glamour.TermRenderer
)

// renderMarkdown renders markdown for terminal display. Returns the original
// content if the renderer is unavailable or fails.
func renderMarkdown(content string) string {
	rendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			markdownRenderer = r
		}
	})
	if markdownRenderer == nil {
		return content
	}

	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// display writes markdown to w, rendered only when w is a terminal and raw
// output was not requested so piped output stays plain.
func display(w io.Writer, markdown string, raw bool) {
	if !raw && isTerminal(w) {
		fmt.Fprint(w, renderMarkdown(markdown))
		return
	}
	fmt.Fprintln(w, markdown)
}
