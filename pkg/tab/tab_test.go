package tab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tableflip.dev/tabdo/pkg/task"
)

var sample = []task.Task{
	{ID: "1", Text: "a", Category: "work"},
	{ID: "2", Text: "b"},
	{ID: "3", Text: "c", Category: "home"},
	{ID: "4", Text: "d", Category: "work"},
}

func TestVisible(t *testing.T) {
	tests := map[string]struct {
		tab  Tab
		want []string
	}{
		"all":           {tab: All, want: []string{"1", "2", "3", "4"}},
		"uncategorized": {tab: Uncategorized, want: []string{"2"}},
		"category":      {tab: ForCategory("work"), want: []string{"1", "4"}},
		"unknown":       {tab: ForCategory("garden"), want: []string{}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, task.IDs(tc.tab.Visible(sample)))
		})
	}
}

func TestCategoryNamedLikeBuiltinIsNotAll(t *testing.T) {
	tasks := []task.Task{{ID: "1", Category: "All"}}
	assert.Equal(t, []string{"1"}, task.IDs(ForCategory("All").Visible(tasks)))
	assert.True(t, ForCategory("All").IsCategory())
}

func TestParse(t *testing.T) {
	assert.Equal(t, Uncategorized, Parse(""))
	assert.Equal(t, Uncategorized, Parse(" uncategorized "))
	assert.Equal(t, All, Parse("all"))
	assert.Equal(t, Tab("Work"), Parse(" Work"))
}

func TestParseBuiltinNamesAreCaseSensitive(t *testing.T) {
	for _, in := range []string{"All", "ALL", "Uncategorized"} {
		got := Parse(in)
		assert.Equal(t, Tab(in), got)
		assert.True(t, got.IsCategory(), "%q should select a category", in)
	}

	tasks := []task.Task{{ID: "1", Category: "All"}, {ID: "2", Category: "home"}}
	assert.Equal(t, []string{"1"}, task.IDs(Parse("All").Visible(tasks)))
	assert.Len(t, Parse("all").Visible(tasks), 2)
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "All Tasks", All.Title())
	assert.Equal(t, "Uncategorized Tasks", Uncategorized.Title())
	assert.Equal(t, "Uncategorized", Uncategorized.Label())
	assert.Equal(t, "work", ForCategory("work").Title())
}

func TestBar(t *testing.T) {
	assert.Equal(t, []Tab{Uncategorized, All, "work", "home"}, Bar([]string{"work", "home"}))
}
