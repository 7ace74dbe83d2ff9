package app

import (
	"tableflip.dev/tabdo/pkg/notify"
	"tableflip.dev/tabdo/pkg/tab"
	"tableflip.dev/tabdo/pkg/task"
)

// Board is a read-only snapshot of the session for printers and JSON output.
type Board struct {
	ActiveTab  tab.Tab        `json:"activeTab"`
	Categories []string       `json:"categories"`
	Tabs       []TabView      `json:"tabs"`
	Notice     *notify.Notice `json:"notice,omitempty"`
}

// TabView is one tab of a Board with the tasks it shows.
type TabView struct {
	Tab    tab.Tab     `json:"tab"`
	Title  string      `json:"title"`
	Active bool        `json:"active"`
	Tasks  []task.Task `json:"tasks"`
}

// Done counts the completed tasks in the view.
func (v TabView) Done() int {
	n := 0
	for _, t := range v.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// Snapshot captures the current state.
func (s *Service) Snapshot() Board {
	tasks := s.store.List()
	cats := s.categories.Resolve(tasks)
	b := Board{
		ActiveTab:  s.active,
		Categories: cats,
	}
	for _, t := range tab.Bar(cats) {
		b.Tabs = append(b.Tabs, TabView{
			Tab:    t,
			Title:  t.Title(),
			Active: t == s.active,
			Tasks:  t.Visible(tasks),
		})
	}
	if n, ok := s.notifier.Notice(); ok {
		b.Notice = &n
	}
	return b
}
