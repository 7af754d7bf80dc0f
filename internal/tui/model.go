// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typerun/internal/model"
	"github.com/verte-zerg/typerun/internal/session"
)

const (
	tickInterval = 500 * time.Millisecond
	undoLimit    = 100
)

type tickMsg time.Time

// Model implements the Bubble Tea typing UI.
type Model struct {
	session   *session.Session
	clipboard Clipboard

	input textinput.Model
	keys  keyMap
	help  help.Model

	undo []string

	width  int
	height int
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	extraStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8071A")).Strikethrough(true)
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = currentWordStyle.Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	statValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// NewModel constructs a typing TUI model around a session.
// A nil clipboard uses the system clipboard.
func NewModel(s *session.Session, cb Clipboard) *Model {
	if cb == nil {
		cb = systemClipboard{}
	}
	ti := textinput.New()
	ti.Placeholder = "Start typing..."
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.KeyMap = inputKeyMap()
	ti.Focus()

	return &Model{
		session:   s,
		clipboard: cb,
		input:     ti,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.contentWidth()-lipgloss.Width(m.input.Prompt)-1, 1)
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		m.session.Tick()
		return m, tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil
	case key.Matches(msg, m.keys.SelectAll), key.Matches(msg, m.keys.PassThrough):
		return m, nil
	case key.Matches(msg, m.keys.Undo):
		m.undoLast()
		return m, nil
	case key.Matches(msg, m.keys.Cut):
		m.cut()
		return m, nil
	case key.Matches(msg, m.keys.Paste):
		m.paste()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.pushUndo(before)
		m.session.OnInput(after)
	}
	return m, cmd
}

func (m *Model) reset() {
	m.session.Reset()
	m.input.Reset()
	m.undo = nil
	log.Printf("session reset")
}

func (m *Model) setInput(value string) {
	before := m.input.Value()
	if value == before {
		return
	}
	m.pushUndo(before)
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.session.OnInput(m.input.Value())
}

func (m *Model) pushUndo(value string) {
	m.undo = append(m.undo, value)
	if len(m.undo) > undoLimit {
		m.undo = m.undo[len(m.undo)-undoLimit:]
	}
}

func (m *Model) undoLast() {
	if len(m.undo) == 0 {
		return
	}
	prev := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.input.SetValue(prev)
	m.input.CursorEnd()
	m.session.OnInput(m.input.Value())
}

func (m *Model) cut() {
	value := m.input.Value()
	if value == "" {
		return
	}
	if err := m.clipboard.WriteAll(value); err != nil {
		log.Printf("failed to write clipboard: %v", err)
		return
	}
	m.setInput("")
}

func (m *Model) paste() {
	text, err := m.clipboard.ReadAll()
	if err != nil {
		log.Printf("failed to read clipboard: %v", err)
		return
	}
	text = sanitizePaste(text)
	if text == "" {
		return
	}
	m.setInput(m.input.Value() + text)
}

func sanitizePaste(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, text)
}

// View implements tea.Model.
func (m *Model) View() string {
	styled := buildStyledRunes(m.session.Line())
	if m.width == 0 || m.height == 0 {
		return renderStyledRunes(styled) + "\n\n" + m.input.View()
	}
	width := m.contentWidth()
	text := lipgloss.NewStyle().Width(width).Render(wrapStyledRunes(styled, width))
	content := lipgloss.JoinVertical(lipgloss.Left, text, "", m.input.View())
	footer := m.renderFooter()
	helpLine := m.help.View(m.keys)
	if m.height < 5 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 2
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	helpView := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, helpLine)
	return body + "\n" + footerLine + "\n" + helpView
}

func (m *Model) contentWidth() int {
	width := int(float64(m.width) * 0.70)
	if width < 1 {
		width = 1
	}
	return width
}

func (m *Model) renderFooter() string {
	metrics := m.session.Metrics()
	segments := []string{
		stat("WPM", fmt.Sprintf("%d", metrics.WPM)),
		stat("Accuracy", fmt.Sprintf("%d%%", metrics.Accuracy)),
		stat("Words", fmt.Sprintf("%d", metrics.Words)),
		stat("Characters", fmt.Sprintf("%d", metrics.Chars)),
		stat("Errors", fmt.Sprintf("%d", metrics.Errors)),
	}
	return strings.Join(segments, footerStyle.Render("  ·  "))
}

func stat(label, value string) string {
	return footerStyle.Render(label+" ") + statValueStyle.Render(value)
}

// Summary returns the final metrics and whether the session was ever started.
func (m *Model) Summary() (model.Metrics, time.Duration, bool) {
	m.session.Tick()
	return m.session.Metrics(), m.session.Elapsed(), m.session.Started()
}
