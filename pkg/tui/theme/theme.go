package theme

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Tabs   TabsTheme
	Task   TaskTheme
	Modal  ModalTheme
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Prompt lipgloss.Style
}

// TabsTheme styles the tab bar.
type TabsTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Title    lipgloss.Style
	Gap      string
}

// TaskTheme styles rows of the task list.
type TaskTheme struct {
	Open   lipgloss.Style
	Done   lipgloss.Style
	Cursor lipgloss.Style
	Empty  lipgloss.Style
}

// ModalTheme styles the completion notice overlay.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Hint  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	tabBase := lipgloss.NewStyle().Padding(0, 1)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Tabs: TabsTheme{
			Active:   tabBase.Bold(true).Reverse(true),
			Inactive: tabBase.Foreground(lipgloss.Color("250")),
			Title:    lipgloss.NewStyle().Bold(true).Underline(true),
			Gap:      " ",
		},
		Task: TaskTheme{
			Open:   lipgloss.NewStyle(),
			Done:   lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Empty:  lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("42")).
				Padding(1, 3),
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
			Body:  lipgloss.NewStyle(),
			Hint:  lipgloss.NewStyle().Faint(true),
		},
	}
}

// CategoryColor picks a stable hue for a category so its tab keeps the same
// color across sessions.
func CategoryColor(name string) colorful.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return colorful.Hsv(float64(h.Sum32()%360), 0.45, 0.9)
}

// CategoryTab styles an inactive category tab with its color.
func (t Theme) CategoryTab(name string) lipgloss.Style {
	return t.Tabs.Inactive.Foreground(CategoryColor(name))
}
