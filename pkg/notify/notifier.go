package notify

import (
	"fmt"

	"tableflip.dev/tabdo/pkg/tab"
)

// State of the completion notice.
type State int

const (
	Idle State = iota
	Showing
)

func (s State) String() string {
	switch s {
	case Showing:
		return "showing"
	default:
		return "idle"
	}
}

// Title is the heading of every completion notice.
const Title = "All Tasks Completed!"

// Notice is the celebratory message for a completed tab.
type Notice struct {
	Tab     tab.Tab `json:"tab"`
	Title   string  `json:"title"`
	Message string  `json:"message"`
}

// NoticeFor builds the notice shown when every task in t is complete.
func NoticeFor(t tab.Tab) Notice {
	return Notice{
		Tab:     t,
		Title:   Title,
		Message: fmt.Sprintf("Congratulations! You've completed all tasks in %s.", t.Title()),
	}
}

// Notifier holds the idle/showing state. It only leaves Showing on Dismiss.
type Notifier struct {
	state  State
	notice Notice
}

// Show moves to Showing with the notice for t.
func (n *Notifier) Show(t tab.Tab) {
	n.state = Showing
	n.notice = NoticeFor(t)
}

// Dismiss returns to Idle.
func (n *Notifier) Dismiss() {
	n.state = Idle
	n.notice = Notice{}
}

func (n *Notifier) State() State {
	return n.state
}

// Notice returns the current notice, if one is showing.
func (n *Notifier) Notice() (Notice, bool) {
	if n.state != Showing {
		return Notice{}, false
	}
	return n.notice, true
}
