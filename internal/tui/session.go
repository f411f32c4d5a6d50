package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trknhr/hmmtag/internal/corpus"
)

var (
	tagStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// Tagger is satisfied by *hmm.Decoder.
type Tagger interface {
	Decode(words []string) ([]string, error)
}

type Session struct {
	input  textinput.Model
	list   list.Model
	tagger Tagger
	lines  []list.Item
	width  int
	height int
}

// compactDelegate renders items in a single-line compact form.
type compactDelegate struct{}

func (d compactDelegate) Height() int                               { return 1 }
func (d compactDelegate) Spacing() int                              { return 0 }
func (d compactDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d compactDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(taggedItem)
	if !ok {
		return
	}
	fmt.Fprint(w, "  "+i.Render())
}

type taggedItem struct {
	words []string
	tags  []string
	err   error
}

func (i taggedItem) Title() string       { return strings.Join(i.words, " ") }
func (i taggedItem) Description() string { return "" }
func (i taggedItem) FilterValue() string { return i.Title() }

// Render formats the sentence as word/TAG pairs.
func (i taggedItem) Render() string {
	if i.err != nil {
		return i.Title() + "  " + errorStyle.Render(i.err.Error())
	}
	pairs := make([]string, len(i.words))
	for j, w := range i.words {
		pairs[j] = w + "/" + tagStyle.Render(i.tags[j])
	}
	return strings.Join(pairs, " ")
}

// NewSession returns a console that tags one line of free text per Enter.
// Typing q quits.
func NewSession(tagger Tagger) *Session {
	input := textinput.New()
	input.Placeholder = "Type a sentence..."
	input.Focus()

	l := list.New([]list.Item{}, &compactDelegate{}, 80, 10)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return &Session{input: input, list: l, tagger: tagger}
}

func (m *Session) Init() tea.Cmd {
	return textinput.Blink
}

type taggedMsg taggedItem

func decodeCmd(tagger Tagger, words []string) tea.Cmd {
	return func() tea.Msg {
		tags, err := tagger.Decode(words)
		return taggedMsg{words: words, tags: tags, err: err}
	}
}

func (m *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-5)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if strings.EqualFold(line, "q") {
				return m, tea.Quit
			}
			words := corpus.Tokenize(line)
			if len(words) == 0 {
				return m, nil
			}
			return m, decodeCmd(m.tagger, words)

		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

	case taggedMsg:
		m.lines = append([]list.Item{taggedItem(msg)}, m.lines...)
		m.list.SetItems(m.lines)
		m.list.ResetSelected()
	}

	return m, nil
}

func (m *Session) View() string {
	s := titleStyle.Render("Part-of-speech tagging console") + "\n\n"
	s += m.input.View() + "\n\n"
	s += m.list.View() + "\n"
	s += "(q + Enter or Ctrl+C to quit)"
	return s
}

// Lines returns the tagged sentences, newest first.
func (m *Session) Lines() []string {
	out := make([]string, len(m.lines))
	for i, item := range m.lines {
		t := item.(taggedItem)
		if t.err != nil {
			out[i] = t.Title() + ": " + t.err.Error()
			continue
		}
		pairs := make([]string, len(t.words))
		for j, w := range t.words {
			pairs[j] = w + "/" + t.tags[j]
		}
		out[i] = strings.Join(pairs, " ")
	}
	return out
}
