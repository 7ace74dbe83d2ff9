package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tabdo/pkg/tab"
	"tableflip.dev/tabdo/pkg/task"
)

func TestEvaluateEmptyNeverNotifies(t *testing.T) {
	reg := Registry{}
	ok, next := Evaluate(nil, tab.Uncategorized, reg)
	assert.False(t, ok)
	assert.Empty(t, next)

	// other tabs being complete does not matter
	tasks := []task.Task{{ID: "1", Category: "work", Completed: true}}
	ok, _ = Evaluate(tasks, tab.Uncategorized, reg)
	assert.False(t, ok)
}

func TestEvaluatePartialNeverNotifies(t *testing.T) {
	tasks := []task.Task{{ID: "1", Completed: true}, {ID: "2"}}
	ok, next := Evaluate(tasks, tab.All, Registry{})
	assert.False(t, ok)
	assert.Empty(t, next)
}

func TestEvaluateNotifiesOnce(t *testing.T) {
	tasks := []task.Task{{ID: "1", Category: "work", Completed: true}}
	reg := Registry{}

	ok, next := Evaluate(tasks, tab.ForCategory("work"), reg)
	require.True(t, ok)
	assert.Empty(t, reg, "input registry must not be mutated")
	assert.True(t, next.Shown(SignatureOf("work", tasks)))

	ok, again := Evaluate(tasks, tab.ForCategory("work"), next)
	assert.False(t, ok)
	assert.Equal(t, next, again)
}

func TestEvaluateDistinguishesTaskSets(t *testing.T) {
	reg := Registry{}
	one := []task.Task{{ID: "1", Completed: true}}
	ok, reg := Evaluate(one, tab.All, reg)
	require.True(t, ok)

	two := append(one, task.Task{ID: "2", Completed: true})
	ok, reg = Evaluate(two, tab.All, reg)
	assert.True(t, ok, "a new visible set is a new configuration")
	assert.Len(t, reg, 2)
}

func TestPurgeOnlyTouchesTab(t *testing.T) {
	one := []task.Task{{ID: "1"}}
	two := []task.Task{{ID: "1"}, {ID: "2"}}
	three := []task.Task{{ID: "3"}}
	reg := Registry{
		SignatureOf("work", one):                    true,
		SignatureOf("work", two):                    true,
		SignatureOf("work-stuff", three):            true,
		SignatureOf(tab.All, append(two, three...)): true,
	}
	out := reg.Purge("work")
	assert.Len(t, out, 2)
	assert.True(t, out.Shown(SignatureOf("work-stuff", three)))
	assert.Len(t, reg, 4)
}

func TestSignatureString(t *testing.T) {
	sig := SignatureOf(tab.ForCategory("work"), []task.Task{{ID: "1"}, {ID: "2"}})
	assert.Equal(t, `work["1","2"]`, sig.String())
}

func TestSignatureIDsWithSeparatorsDoNotCollide(t *testing.T) {
	work := tab.ForCategory("work")
	cases := map[string][2][]task.Task{
		"dash": {
			{{ID: "a-b"}},
			{{ID: "a"}, {ID: "b"}},
		},
		"comma": {
			{{ID: "a,b"}},
			{{ID: "a"}, {ID: "b"}},
		},
		"quoted comma": {
			{{ID: `a","b`}},
			{{ID: "a"}, {ID: "b"}},
		},
		"empty ids": {
			{{ID: ""}, {ID: ""}},
			{{ID: ""}},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.NotEqual(t, SignatureOf(work, tc[0]), SignatureOf(work, tc[1]))
		})
	}
}

func TestEvaluateNotifiesSetsThatShareJoinedIDs(t *testing.T) {
	work := tab.ForCategory("work")
	joined := []task.Task{{ID: "a-b", Category: "work", Completed: true}}
	ok, reg := Evaluate(joined, work, Registry{})
	require.True(t, ok)

	split := []task.Task{
		{ID: "a", Category: "work", Completed: true},
		{ID: "b", Category: "work", Completed: true},
	}
	ok, reg = Evaluate(split, work, reg)
	assert.True(t, ok, "[a b] is a different configuration from [a-b]")
	assert.Len(t, reg, 2)
}

func TestNotifier(t *testing.T) {
	var n Notifier
	assert.Equal(t, Idle, n.State())
	_, ok := n.Notice()
	assert.False(t, ok)

	n.Show(tab.Uncategorized)
	assert.Equal(t, Showing, n.State())
	notice, ok := n.Notice()
	require.True(t, ok)
	assert.Equal(t, "All Tasks Completed!", notice.Title)
	assert.Equal(t, "Congratulations! You've completed all tasks in Uncategorized Tasks.", notice.Message)

	n.Dismiss()
	assert.Equal(t, Idle, n.State())
	assert.Equal(t, "idle", n.State().String())
}
