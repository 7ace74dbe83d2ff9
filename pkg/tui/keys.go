package tui

// Binding documents one key in the help overlay and `tabdo key`.
type Binding struct {
	Keys    string
	Meaning string
}

// Bindings lists the normal-mode keys in help order.
func Bindings() []Binding {
	return []Binding{
		{Keys: "h/l ←/→", Meaning: "previous/next tab"},
		{Keys: "1-9", Meaning: "jump to tab"},
		{Keys: "j/k ↑/↓", Meaning: "move selection"},
		{Keys: "o", Meaning: "add a task"},
		{Keys: "c", Meaning: "add a category"},
		{Keys: "x space", Meaning: "toggle completed"},
		{Keys: "i", Meaning: "edit task"},
		{Keys: "dd", Meaning: "delete task"},
		{Keys: "enter esc", Meaning: "dismiss notice"},
		{Keys: "?", Meaning: "help"},
		{Keys: "q", Meaning: "quit"},
	}
}
