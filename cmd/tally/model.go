package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/germanamz/tally/pkg/calc"
)

// helpMarkdown is rendered with glamour when the help view is open.
const helpMarkdown = `# tally

Type a delimited list of numbers and press **enter** to sum it.

- Default delimiters: comma and newline (type ` + "`\\n`" + ` for a newline).
- Custom delimiters: start with ` + "`//<delim>\\n`" + `, e.g. ` + "`//;\\n1;2`" + `.
- Bracketed delimiters may be long or many: ` + "`//[***][%%]\\n1***2%%3`" + `.
- Negative numbers are rejected; values over 1000 are ignored.

Keys: **enter** evaluate · **ctrl+g** toggle help · **ctrl+c** quit
`

const maxHistory = 100

// replKeys are the REPL key bindings.
type replKeys struct {
	Submit key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var defaultReplKeys = replKeys{
	Submit: key.NewBinding(key.WithKeys("enter")),
	Help:   key.NewBinding(key.WithKeys("ctrl+g")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc")),
}

// historyEntry is one evaluated line in the scrollback.
type historyEntry struct {
	input string
	sum   int
	err   error
}

// replModel is the root bubbletea model for interactive mode.
type replModel struct {
	calc     *calc.Calculator
	styles   styleSet
	keys     replKeys
	input    textinput.Model
	history  []historyEntry
	sub      *calc.Subscription
	lastNote string
	showHelp bool
	width    int
}

func newReplModel(c *calc.Calculator, st styleSet) *replModel {
	ti := textinput.New()
	ti.Placeholder = `1,2,3 or //;\n1;2`
	ti.Prompt = "> "
	ti.Focus()

	m := &replModel{
		calc:   c,
		styles: st,
		keys:   defaultReplKeys,
		input:  ti,
	}

	// The status line reflects the engine's own notification, not the
	// Update loop's bookkeeping.
	m.sub = c.AddListener(func(input string, sum int) {
		m.lastNote = fmt.Sprintf("%s = %d", displayInput(input), sum)
	})

	return m
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.calc.RemoveListener(m.sub)
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *replModel) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return m, nil
	}

	in := decodeEscapes(raw)
	sum, err := m.calc.Evaluate(in)

	m.history = append(m.history, historyEntry{input: in, sum: sum, err: err})
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}

	m.input.SetValue("")

	return m, nil
}

func (m *replModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.banner.Render("tally — string calculator"))
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(renderMarkdown(helpMarkdown))
		b.WriteString("\n")
		return b.String()
	}

	width := 0
	for _, h := range m.history {
		if w := runeDisplayWidth(h.input); w > width {
			width = w
		}
	}

	for _, h := range m.history {
		b.WriteString(formatResultLine(m.styles, h.input, width, h.sum, h.err))
		b.WriteString("\n")
	}

	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.status.Render(m.statusLine()))
	b.WriteString("\n")

	return b.String()
}

func (m *replModel) statusLine() string {
	s := fmt.Sprintf("calls: %d", m.calc.CalledCount())
	if m.lastNote != "" {
		s += "  ·  last: " + m.lastNote
	}

	return s + "  ·  ctrl+g help, ctrl+c quit"
}
