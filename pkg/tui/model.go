// Package tui is the Bubble Tea front end for an app.Service.
package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tabdo/pkg/app"
	"tableflip.dev/tabdo/pkg/tab"
	"tableflip.dev/tabdo/pkg/task"
	"tableflip.dev/tabdo/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeAddText
	modeAddCategory
	modeRegister
	modeEditText
	modeEditCategory
	modeHelp
)

const ddWindow = 600 * time.Millisecond

const defaultStatus = "o add, c category, x toggle, i edit, dd delete, h/l tabs, ? help"

// Model contains UI state. Task state lives in the Service.
type Model struct {
	svc   *app.Service
	theme theme.Theme
	mode  mode

	cursor int
	input  textinput.Model

	// draft holds the task being added or edited across the two prompts.
	draft  task.Task
	editID string

	status     string
	awaitingDD bool
	lastD      time.Time
	now        func() time.Time

	width  int
	height int
}

// New creates a UI model backed by svc.
func New(svc *app.Service) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = ""

	return Model{
		svc:    svc,
		theme:  theme.Default(),
		mode:   modeNormal,
		input:  ti,
		status: defaultStatus,
		now:    time.Now,
	}
}

// Run launches the Bubble Tea program on the alternate screen.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles window sizing and keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg.String(), msg)
	}
	return m, nil
}

// handleKey routes a key by mode. msg is forwarded to the text input while a
// prompt is open; it may be nil.
func (m Model) handleKey(key string, msg tea.Msg) (Model, tea.Cmd) {
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if _, showing := m.svc.Notice(); showing {
		switch key {
		case "enter", "esc", " ", "space", "q":
			m.svc.Dismiss()
			m.status = "Dismissed"
		}
		return m, nil
	}

	switch m.mode {
	case modeHelp:
		switch key {
		case "?", "q", "esc":
			m.mode = modeNormal
		}
		return m, nil
	case modeNormal:
		return m.handleNormal(key)
	}

	switch key {
	case "enter":
		return m.commit()
	case "esc":
		m.cancel()
		return m, nil
	}
	if msg == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleNormal(key string) (Model, tea.Cmd) {
	if key != "d" {
		m.awaitingDD = false
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "?":
		m.mode = modeHelp
	case "h", "left", "shift+tab":
		m.shiftTab(-1)
	case "l", "right", "tab":
		m.shiftTab(1)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(key)
		m.jumpTab(n - 1)
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.svc.Visible()) - 1
		m.clampCursor()
	case "x", " ", "space":
		if t, ok := m.selected(); ok {
			m.svc.Toggle(t.ID)
			if t.Completed {
				m.status = "Reopened"
			} else {
				m.status = "Completed"
			}
		}
	case "o", "a":
		m.draft = task.Task{}
		if active := m.svc.ActiveTab(); active.IsCategory() {
			m.draft.Category = string(active)
		}
		return m, m.prompt(modeAddText, "New task", "")
	case "c":
		return m, m.prompt(modeRegister, "Category name", "")
	case "i", "e":
		if t, ok := m.selected(); ok {
			m.draft = t
			m.editID = t.ID
			return m, m.prompt(modeEditText, "Edit task", t.Text)
		}
	case "d":
		t, ok := m.selected()
		if !ok {
			break
		}
		now := m.now()
		if m.awaitingDD && now.Sub(m.lastD) < ddWindow {
			m.svc.Delete(t.ID)
			m.awaitingDD = false
			m.status = "Deleted"
			m.clampCursor()
		} else {
			m.awaitingDD = true
			m.lastD = now
			m.status = "Press d again to delete"
		}
	}
	return m, nil
}

func (m *Model) prompt(next mode, placeholder, value string) tea.Cmd {
	m.mode = next
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return tea.Batch(cmd, textinput.Blink)
}

// commit finishes the current prompt, chaining text → category for add and edit.
func (m Model) commit() (Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeAddText:
		if value == "" {
			m.cancel()
			return m, nil
		}
		m.draft.Text = value
		return m, m.prompt(modeAddCategory, "Category (blank for none)", m.draft.Category)
	case modeAddCategory:
		if _, ok := m.svc.Submit(m.draft.Text, value); ok {
			m.status = "Added"
			m.cursor = len(m.svc.Visible()) - 1
			m.clampCursor()
		}
	case modeRegister:
		if m.svc.RegisterCategory(value) {
			m.status = "Category " + value + " added"
			m.cursor = 0
		} else if value != "" {
			m.status = "Category " + value + " already exists"
		}
	case modeEditText:
		if value == "" {
			m.cancel()
			return m, nil
		}
		m.draft.Text = value
		return m, m.prompt(modeEditCategory, "Category (blank for none)", m.draft.Category)
	case modeEditCategory:
		m.draft.Category = value
		if m.svc.Edit(m.editID, m.draft) {
			m.status = "Edited"
		}
		m.clampCursor()
	}
	m.closePrompt()
	return m, nil
}

func (m *Model) cancel() {
	switch m.mode {
	case modeAddText, modeAddCategory:
		m.status = "Add cancelled"
	case modeEditText, modeEditCategory:
		m.status = "Edit cancelled"
	default:
		m.status = "Cancelled"
	}
	m.closePrompt()
}

func (m *Model) closePrompt() {
	m.mode = modeNormal
	m.draft = task.Task{}
	m.editID = ""
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) shiftTab(delta int) {
	tabs := m.svc.Tabs()
	i := indexOf(tabs, m.svc.ActiveTab())
	if i < 0 {
		i = 0
	} else {
		i = (i + delta + len(tabs)) % len(tabs)
	}
	m.selectTab(tabs[i])
}

func (m *Model) jumpTab(i int) {
	tabs := m.svc.Tabs()
	if i < 0 || i >= len(tabs) {
		return
	}
	m.selectTab(tabs[i])
}

func (m *Model) selectTab(t tab.Tab) {
	if t != m.svc.ActiveTab() {
		m.cursor = 0
	}
	m.svc.SetTab(t)
	m.status = t.Title()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.svc.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (task.Task, bool) {
	visible := m.svc.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return task.Task{}, false
	}
	return visible[m.cursor], true
}

func indexOf(tabs []tab.Tab, t tab.Tab) int {
	for i, v := range tabs {
		if v == t {
			return i
		}
	}
	return -1
}
