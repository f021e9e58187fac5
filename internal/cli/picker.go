package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inovacc/repojump/internal/match"
	"github.com/inovacc/repojump/internal/session"
)

var (
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	cursorRowStyle = lipgloss.NewStyle().Bold(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Underline(true)
	dimStyle       = lipgloss.NewStyle().Faint(true)
)

// capture receives the session's emitted calls so the picker can render
// them on the next frame.
type capture struct {
	defaultLine string
	results     []match.Annotated
	navigateTo  string
}

func (c *capture) SetDefaultSuggestion(text string) { c.defaultLine = text }

func (c *capture) SuggestResults(results []match.Annotated) { c.results = results }

func (c *capture) Navigate(url string) { c.navigateTo = url }

// PickerModel is the interactive stand-in for the browser address bar: a
// text input over the live-ranked suggestion list.
type PickerModel struct {
	ctx      context.Context
	input    textinput.Model
	session  *session.Session
	out      *capture
	cursor   int
	chosen   string
	quitting bool
}

// NewPicker creates the picker over a warm cache.
func NewPicker(ctx context.Context, cache session.Cache, syncer session.Orchestrator, logger *slog.Logger) PickerModel {
	out := &capture{}

	ti := textinput.New()
	ti.Placeholder = "type to search your repositories"
	ti.Prompt = "repo> "
	ti.PromptStyle = promptStyle
	ti.Focus()

	m := PickerModel{
		ctx:     ctx,
		input:   ti,
		session: session.New(cache, syncer, out, logger),
		out:     out,
	}

	m.session.QueryChanged(ctx, "")

	return m
}

// Chosen returns the URL picked by the user, or "" when the picker was
// dismissed.
func (m PickerModel) Chosen() string {
	return m.chosen
}

func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.quitting = true

			return m, tea.Quit

		case "up", "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}

			return m, nil

		case "down", "ctrl+j":
			if m.cursor < len(m.out.results) {
				m.cursor++
			}

			return m, nil

		case "enter":
			if m.cursor > 0 && m.cursor <= len(m.out.results) {
				m.chosen = m.out.results[m.cursor-1].Content
			} else {
				m.out.navigateTo = ""
				m.session.Confirmed(m.ctx, m.input.Value())
				m.chosen = m.out.navigateTo
			}

			m.quitting = true

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		m.session.QueryChanged(m.ctx, m.input.Value())
		m.cursor = 0
	}

	return m, cmd
}

func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	writeRow(&b, m.out.defaultLine, m.cursor == 0)

	for i, r := range m.out.results {
		writeRow(&b, r.Display, m.cursor == i+1)
	}

	b.WriteString(dimStyle.Render("\nenter: open  ·  esc: quit\n"))

	return b.String()
}

func writeRow(b *strings.Builder, display string, selected bool) {
	marker := "  "
	if selected {
		marker = "> "
	}

	row := marker + RenderHighlights(display)
	if selected {
		row = cursorRowStyle.Render(row)
	}

	b.WriteString(row)
	b.WriteString("\n")
}

// RenderHighlights converts the matcher's markup markers into terminal
// styling.
func RenderHighlights(display string) string {
	var b strings.Builder

	rest := display

	for {
		open := strings.Index(rest, match.MarkerOpen)
		if open < 0 {
			b.WriteString(rest)

			break
		}

		b.WriteString(rest[:open])
		rest = rest[open+len(match.MarkerOpen):]

		end := strings.Index(rest, match.MarkerClose)
		if end < 0 {
			b.WriteString(rest)

			break
		}

		b.WriteString(highlightStyle.Render(rest[:end]))
		rest = rest[end+len(match.MarkerClose):]
	}

	return b.String()
}
