// Package tui is the interactive two-pane comparator.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/connmatch/internal/connstr"
	"github.com/Makepad-fr/connmatch/internal/logging"
	"github.com/Makepad-fr/connmatch/internal/model"
	"github.com/Makepad-fr/connmatch/internal/ui"
)

// ClipboardReader returns the current clipboard text.
type ClipboardReader func() (string, error)

type Options struct {
	Clipboard ClipboardReader // defaults to the system clipboard
	Logger    *slog.Logger
	Reveal    bool // start with secrets visible
	AltScreen bool

	// Left and Right prefill the panes.
	Left, Right string

	Input  io.Reader
	Output io.Writer
}

const (
	paneCount     = 2
	paneHeight    = 3
	sideBySideMin = 100
	placeholder   = "Focus here and your clipboard will be pasted automatically..."
)

var labels = [paneCount]string{"Connection String 1", "Connection String 2"}

// pasteMsg carries clipboard text to a pane. Auto pastes only fill empty panes.
type pasteMsg struct {
	pane int
	text string
	auto bool
}

type modelTUI struct {
	panes [paneCount]textarea.Model
	// values holds each pane's text as entered. The textarea rewrites tabs
	// and line endings for display, so comparisons never read it back.
	values [paneCount]string
	focus  int
	reveal bool
	width  int

	cmp model.Comparison

	clip ClipboardReader
	log  *slog.Logger
	keys keyMap
	help help.Model
}

func newModel(opt Options) modelTUI {
	m := modelTUI{
		reveal: opt.Reveal,
		clip:   opt.Clipboard,
		log:    opt.Logger,
		keys:   defaultKeys(),
		help:   help.New(),
	}
	if m.clip == nil {
		m.clip = clipboard.ReadAll
	}
	if m.log == nil {
		m.log = logging.NewNop()
	}
	for i := range m.panes {
		ta := textarea.New()
		ta.Placeholder = placeholder
		ta.ShowLineNumbers = false
		ta.CharLimit = 0
		ta.Prompt = ""
		ta.SetHeight(paneHeight)
		ta.SetWidth(60)
		// connection strings are single line; paste is handled by the model
		ta.KeyMap.InsertNewline.SetEnabled(false)
		ta.KeyMap.Paste.SetEnabled(false)
		m.panes[i] = ta
	}
	m.setValue(0, opt.Left)
	m.setValue(1, opt.Right)
	m.panes[0].Focus()
	m.recompute()
	return m
}

// Run starts the program and returns the comparison shown when the user quit.
func Run(ctx context.Context, opt Options) (model.Comparison, error) {
	m := newModel(opt)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opt.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opt.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opt.Input))
	}
	if opt.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opt.Output))
	}

	p := tea.NewProgram(m, progOpts...)
	finalModel, err := p.Run()
	if err != nil {
		return model.Comparison{}, fmt.Errorf("tui: %w", err)
	}
	fm, ok := finalModel.(modelTUI)
	if !ok {
		return m.cmp, nil
	}
	return fm.cmp, nil
}

func (m modelTUI) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.autoPaste(m.focus))
}

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil

	case pasteMsg:
		if msg.pane < 0 || msg.pane >= paneCount {
			return m, nil
		}
		if msg.auto && m.values[msg.pane] != "" {
			return m, nil
		}
		m.setValue(msg.pane, msg.text)
		m.recompute()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			cmd := m.focusPane((m.focus + 1) % paneCount)
			return m, cmd
		case key.Matches(msg, m.keys.Prev):
			cmd := m.focusPane((m.focus + paneCount - 1) % paneCount)
			return m, cmd
		case key.Matches(msg, m.keys.Paste):
			return m, m.paste(m.focus, false)
		case key.Matches(msg, m.keys.Clear):
			m.setValue(m.focus, "")
			m.recompute()
			return m, nil
		case key.Matches(msg, m.keys.Reveal):
			m.reveal = !m.reveal
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.panes[m.focus].Value()
	m.panes[m.focus], cmd = m.panes[m.focus].Update(msg)
	// only an actual edit replaces the raw value with what the textarea holds
	if after := m.panes[m.focus].Value(); after != before {
		m.values[m.focus] = after
	}
	m.recompute()
	return m, cmd
}

func (m *modelTUI) setValue(i int, text string) {
	m.values[i] = text
	m.panes[i].SetValue(text)
}

func (m *modelTUI) focusPane(i int) tea.Cmd {
	m.panes[m.focus].Blur()
	m.focus = i
	return tea.Batch(m.panes[i].Focus(), m.autoPaste(i))
}

func (m modelTUI) autoPaste(i int) tea.Cmd {
	if m.values[i] != "" {
		return nil
	}
	return m.paste(i, true)
}

// paste reads the clipboard off the update loop. Failures are a silent no-op.
func (m modelTUI) paste(i int, auto bool) tea.Cmd {
	read, log := m.clip, m.log
	return func() tea.Msg {
		text, err := read()
		if err != nil {
			log.Debug("clipboard read failed", "pane", i+1, "error", err)
			return nil
		}
		text = connstr.Trim(text)
		if text == "" {
			return nil
		}
		return pasteMsg{pane: i, text: text, auto: auto}
	}
}

func (m *modelTUI) recompute() {
	prev := m.cmp.State
	m.cmp = model.Evaluate(m.values[0], m.values[1])
	if m.cmp.State != prev {
		m.log.Debug("comparison changed",
			"state", m.cmp.State,
			"left", m.cmp.Left.Validity,
			"right", m.cmp.Right.Validity)
	}
}

func (m *modelTUI) resize(width int) {
	m.width = width
	m.help.Width = width
	paneWidth := width - 6
	if width >= sideBySideMin {
		paneWidth = width/2 - 6
	}
	if paneWidth < 20 {
		paneWidth = 20
	}
	for i := range m.panes {
		m.panes[i].SetWidth(paneWidth)
	}
}

func (m modelTUI) View() string {
	t := ui.Current()

	header := t.Title.Render("Connection String Comparator") + "\n" +
		t.Muted.Render("Nothing is saved - everything stays in this terminal")

	views := make([]string, paneCount)
	for i := range m.panes {
		views[i] = m.paneView(i)
	}
	var panes string
	if m.width >= sideBySideMin {
		panes = lipgloss.JoinHorizontal(lipgloss.Top, views...)
	} else {
		panes = lipgloss.JoinVertical(lipgloss.Left, views...)
	}

	parts := []string{header, "", panes}
	if m.cmp.Visible() {
		parts = append(parts, "", ui.Verdict(m.cmp, m.reveal))
	}
	parts = append(parts, "", m.help.View(m.keys))
	return strings.Join(parts, "\n")
}

func (m modelTUI) paneView(i int) string {
	t := ui.Current()
	f := m.cmp.Left
	if i == 1 {
		f = m.cmp.Right
	}

	border := t.BorderColor
	switch {
	case i == m.focus:
		border = t.Accent.GetForeground()
	case f.Validity == model.Valid:
		border = t.Success.GetForeground()
	case f.Validity == model.Invalid:
		border = t.Error.GetForeground()
	}

	head := fmt.Sprintf("%s  %s  %s",
		t.Title.Render(labels[i]),
		ui.Badge(f),
		t.Muted.Render(fmt.Sprintf("%d chars", f.Length)))
	return ui.Panel(border, head, m.panes[i].View())
}
