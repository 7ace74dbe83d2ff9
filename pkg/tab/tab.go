// Package tab models the tabs a task list can be viewed through.
package tab

import (
	"strings"

	"tableflip.dev/tabdo/pkg/task"
)

// Tab names the active view. It is All, Uncategorized, or a category name.
type Tab string

const (
	// All shows every task.
	All Tab = "all"
	// Uncategorized shows tasks without a category.
	Uncategorized Tab = "uncategorized"
)

// ForCategory returns the tab for a category name.
func ForCategory(category string) Tab {
	return Tab(strings.TrimSpace(category))
}

// Parse converts user input into a tab. Blank input selects Uncategorized.
// The built-in names match exactly, so "All" names a category.
func Parse(in string) Tab {
	in = strings.TrimSpace(in)
	switch in {
	case "", string(Uncategorized):
		return Uncategorized
	case string(All):
		return All
	}
	return Tab(in)
}

// IsCategory reports whether the tab selects a single category.
func (t Tab) IsCategory() bool {
	return t != All && t != Uncategorized
}

// Includes reports whether tk is visible in the tab.
func (t Tab) Includes(tk task.Task) bool {
	switch t {
	case All:
		return true
	case Uncategorized:
		return !tk.HasCategory()
	default:
		return tk.Category == string(t)
	}
}

// Visible filters tasks down to those shown in the tab, preserving order.
func (t Tab) Visible(tasks []task.Task) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, tk := range tasks {
		if t.Includes(tk) {
			out = append(out, tk)
		}
	}
	return out
}

// Title is the human readable name of the tab.
func (t Tab) Title() string {
	switch t {
	case All:
		return "All Tasks"
	case Uncategorized:
		return "Uncategorized Tasks"
	default:
		return string(t)
	}
}

// Label is the short name used on a tab button.
func (t Tab) Label() string {
	switch t {
	case All:
		return "All Tasks"
	case Uncategorized:
		return "Uncategorized"
	default:
		return string(t)
	}
}

func (t Tab) String() string {
	return string(t)
}

// Bar lists the tabs in display order: Uncategorized, All, then categories.
func Bar(categories []string) []Tab {
	tabs := make([]Tab, 0, len(categories)+2)
	tabs = append(tabs, Uncategorized, All)
	for _, c := range categories {
		tabs = append(tabs, ForCategory(c))
	}
	return tabs
}
