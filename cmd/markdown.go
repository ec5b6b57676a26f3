package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// printMarkdown prints a markdown document, styled when stdout is a terminal.
func printMarkdown(doc string) {
	if f, ok := stdout.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(stdout, doc)
		return
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		logger.Debug().Err(err).Msg("markdown-renderer-unavailable")
		fmt.Fprint(stdout, doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		logger.Debug().Err(err).Msg("markdown-render-failed")
		fmt.Fprint(stdout, doc)
		return
	}
	fmt.Fprint(stdout, out)
}
