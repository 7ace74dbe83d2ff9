package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/tabdo/pkg/glyph"
	"tableflip.dev/tabdo/pkg/notify"
	"tableflip.dev/tabdo/pkg/tab"
	"tableflip.dev/tabdo/pkg/task"
)

// View renders the tab bar, the active tab's tasks, prompts and the notice.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if notice, ok := m.svc.Notice(); ok {
		b.WriteString(m.renderNotice(notice))
	} else if m.mode == modeHelp {
		b.WriteString(m.renderHelp())
	} else {
		b.WriteString(m.renderTasks())
	}

	if prompt := m.promptLabel(); prompt != "" {
		b.WriteString("\n\n")
		b.WriteString(m.theme.Footer.Prompt.Render(prompt))
		b.WriteString(m.input.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Footer.Status.Render(m.status))
	return b.String()
}

func (m Model) renderTabs() string {
	tasks := m.svc.Tasks()
	active := m.svc.ActiveTab()
	parts := make([]string, 0)
	for i, t := range m.svc.Tabs() {
		visible := t.Visible(tasks)
		label := t.Label()
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		if len(visible) > 0 {
			label = fmt.Sprintf("%s %d/%d", label, countDone(visible), len(visible))
		}
		style := m.theme.Tabs.Inactive
		switch {
		case t == active:
			style = m.theme.Tabs.Active
		case t.IsCategory():
			style = m.theme.CategoryTab(string(t))
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, m.theme.Tabs.Gap)
}

func (m Model) renderTasks() string {
	active := m.svc.ActiveTab()
	visible := m.svc.Visible()

	var b strings.Builder
	b.WriteString(m.theme.Tabs.Title.Render(active.Title()))
	b.WriteString("\n\n")
	if len(visible) == 0 {
		b.WriteString(m.theme.Task.Empty.Render(fmt.Sprintf("No tasks in %s. Press o to add one.", active.Title())))
		return b.String()
	}

	width := m.width - 6
	if width < 20 {
		width = 60
	}
	for i, t := range visible {
		marker := "  "
		if i == m.cursor {
			marker = m.theme.Task.Cursor.Render("→ ")
		}
		style := m.theme.Task.Open
		if t.Completed {
			style = m.theme.Task.Done
		}
		text := t.Text
		if active == tab.All && t.HasCategory() {
			text = fmt.Sprintf("%s [%s]", text, t.Category)
		}
		lines := strings.Split(wordwrap.String(text, width), "\n")
		for j, line := range lines {
			if j == 0 {
				b.WriteString(fmt.Sprintf("%s%s %s", marker, glyph.ForTask(t.Completed), style.Render(line)))
			} else {
				b.WriteString("\n    " + style.Render(line))
			}
		}
		if i < len(visible)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderNotice(n notify.Notice) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Modal.Title.Render(glyph.Celebrate.Symbol+" "+n.Title),
		"",
		m.theme.Modal.Body.Render(n.Message),
		"",
		m.theme.Modal.Hint.Render("enter to dismiss"),
	)
	box := m.theme.Modal.Frame.Render(body)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, max(m.height-6, lipgloss.Height(box)), lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderHelp() string {
	lines := []string{m.theme.Tabs.Title.Render("Keys")}
	for _, k := range Bindings() {
		lines = append(lines, fmt.Sprintf("%-10s %s", k.Keys, m.theme.Footer.Help.Render(k.Meaning)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) promptLabel() string {
	switch m.mode {
	case modeAddText:
		return "Add: "
	case modeAddCategory:
		return fmt.Sprintf("Category for %q: ", m.draft.Text)
	case modeRegister:
		return "New category: "
	case modeEditText:
		return "Edit: "
	case modeEditCategory:
		return fmt.Sprintf("Category for %q: ", m.draft.Text)
	}
	return ""
}

func countDone(tasks []task.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}
