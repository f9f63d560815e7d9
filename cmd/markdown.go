package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// printMarkdown renders md to stdout, styled for the terminal when stdout is one.
func printMarkdown(md string) {
	writeMarkdown(os.Stdout, md, isatty.IsTerminal(os.Stdout.Fd()))
}

// writeMarkdown writes md to w, as is or rendered for a terminal.
func writeMarkdown(w io.Writer, md string, terminal bool) {
	if !terminal {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
