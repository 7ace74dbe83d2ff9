// Package glyph holds the symbols used to draw tasks and notices.
package glyph

// Glyph pairs a symbol with what it means on screen.
type Glyph struct {
	Symbol  string
	Meaning string
}

func (g Glyph) String() string {
	return g.Symbol
}

var (
	Open      = Glyph{Symbol: "●", Meaning: "task"}
	Done      = Glyph{Symbol: "✘", Meaning: "task completed"}
	Active    = Glyph{Symbol: "›", Meaning: "active tab"}
	Celebrate = Glyph{Symbol: "🎉", Meaning: "all tasks in the tab completed"}
)

// ForTask returns the bullet for a task's completion state.
func ForTask(completed bool) Glyph {
	if completed {
		return Done
	}
	return Open
}

// Legend lists every glyph in display order.
func Legend() []Glyph {
	return []Glyph{Open, Done, Active, Celebrate}
}
