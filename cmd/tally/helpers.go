package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"
	"github.com/mattn/go-runewidth"
)

// loadDotEnv loads environment variables from path. Missing files are
// ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// decodeEscapes turns the escape sequences `\n`, `\t` and `\\` in a shell
// argument into their literal characters, so custom-delimiter headers can be
// passed on a single command line: tally "//;\n1;2".
func decodeEscapes(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}

		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
		}
		i++
	}

	return b.String()
}

// displayInput renders a raw input for output, replacing control characters
// so multi-line inputs stay on one line.
func displayInput(s string) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	return strings.ReplaceAll(s, "\t", "\\t")
}

// runeDisplayWidth is the terminal-cell width of an input as displayInput
// would show it.
func runeDisplayWidth(s string) int {
	return runewidth.StringWidth(displayInput(s))
}

// padInput right-pads a display input to width terminal cells so result
// columns line up. Display width, not byte length: delimiters may be wide
// runes.
func padInput(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// mdRenderer renders markdown help text; nil when initialization failed, in
// which case the raw markdown is shown instead.
var mdRenderer *glamour.TermRenderer

func initMarkdownRenderer() {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return
	}
	mdRenderer = r
}

// renderMarkdown renders md for the terminal, falling back to the source
// text when no renderer is available.
func renderMarkdown(md string) string {
	if mdRenderer == nil {
		return md
	}

	out, err := mdRenderer.Render(md)
	if err != nil {
		return md
	}

	return out
}

// formatResultLine renders one evaluated input and its outcome.
func formatResultLine(st styleSet, input string, width int, sum int, err error) string {
	shown := padInput(displayInput(input), width)

	if err != nil {
		return fmt.Sprintf("%s  %s %s",
			st.input.Render(shown),
			st.errLabel.Render("error:"),
			err.Error())
	}

	return fmt.Sprintf("%s  %s %s",
		st.input.Render(shown),
		st.dim.Render("="),
		st.sum.Render(fmt.Sprintf("%d", sum)))
}
