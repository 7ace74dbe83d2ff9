package app

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tabdo/pkg/notify"
	"tableflip.dev/tabdo/pkg/store"
	"tableflip.dev/tabdo/pkg/tab"
	"tableflip.dev/tabdo/pkg/task"
)

func newTestService(t *testing.T, opts ...Option) (*Service, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return New(append([]Option{WithLogger(logger)}, opts...)...), hook
}

func TestStartsOnUncategorized(t *testing.T) {
	s, _ := newTestService(t)
	assert.Equal(t, tab.Uncategorized, s.ActiveTab())
	assert.Equal(t, []tab.Tab{tab.Uncategorized, tab.All}, s.Tabs())
	assert.Equal(t, notify.Idle, s.NotifierState())
}

func TestAddWithUnseenCategorySwitchesTab(t *testing.T) {
	s, _ := newTestService(t)
	require.True(t, s.Add(task.Task{ID: "1", Text: "a", Category: "work"}))
	assert.Equal(t, tab.ForCategory("work"), s.ActiveTab())

	s.SetTab(tab.All)
	require.True(t, s.Add(task.Task{ID: "2", Text: "b", Category: "work"}))
	assert.Equal(t, tab.All, s.ActiveTab(), "known category must not switch tabs")

	require.True(t, s.Add(task.Task{ID: "3", Text: "c"}))
	assert.Equal(t, tab.All, s.ActiveTab())
}

func TestAddRejectsDuplicateID(t *testing.T) {
	s, _ := newTestService(t)
	require.True(t, s.Add(task.Task{ID: "1", Text: "a"}))
	assert.False(t, s.Add(task.Task{ID: "1", Text: "b", Category: "home"}))
	assert.Len(t, s.Tasks(), 1)
	assert.Equal(t, tab.Uncategorized, s.ActiveTab())
}

func TestAddAssignsMissingID(t *testing.T) {
	s, _ := newTestService(t)
	require.True(t, s.Add(task.Task{Text: "a"}))
	assert.NotEmpty(t, s.Tasks()[0].ID)
}

func TestSubmit(t *testing.T) {
	s, _ := newTestService(t)
	_, ok := s.Submit("   ", "work")
	assert.False(t, ok)
	assert.Empty(t, s.Tasks())
	assert.Equal(t, tab.Uncategorized, s.ActiveTab())

	got, ok := s.Submit(" buy milk ", " ")
	require.True(t, ok)
	assert.Equal(t, "buy milk", got.Text)
	assert.False(t, got.HasCategory())
}

func TestRegisterCategory(t *testing.T) {
	s, _ := newTestService(t)
	require.True(t, s.RegisterCategory("home"))
	assert.Equal(t, tab.ForCategory("home"), s.ActiveTab())

	s.SetTab(tab.All)
	assert.False(t, s.RegisterCategory("home"))
	assert.Equal(t, tab.All, s.ActiveTab(), "re-registering must not switch tabs")
	assert.Equal(t, []string{"home"}, s.Categories())
}

func TestRegisterTaskImpliedCategoryIsNoop(t *testing.T) {
	s, _ := newTestService(t)
	s.Add(task.Task{ID: "1", Text: "a", Category: "work"})
	s.SetTab(tab.All)
	assert.False(t, s.RegisterCategory("work"))
	assert.Equal(t, tab.All, s.ActiveTab())
	assert.Equal(t, []string{"work"}, s.Categories())
}

func TestToggleUnknownIDLeavesTasks(t *testing.T) {
	s, _ := newTestService(t)
	s.Add(task.Task{ID: "1", Text: "a"})
	before := s.Tasks()
	assert.False(t, s.Toggle("nope"))
	assert.Equal(t, before, s.Tasks())
}

func TestDeleteLastTaskCategoryLifecycle(t *testing.T) {
	s, _ := newTestService(t)
	s.RegisterCategory("home")
	s.Add(task.Task{ID: "1", Text: "a", Category: "home"})
	s.Add(task.Task{ID: "2", Text: "b", Category: "work"})
	assert.Equal(t, []string{"home", "work"}, s.Categories())

	s.Delete("1")
	s.Delete("2")
	assert.Equal(t, []string{"home"}, s.Categories(), "declared persists, implied disappears")
}

func TestNotifiesOnceForSameConfiguration(t *testing.T) {
	s, hook := newTestService(t)
	s.Add(task.Task{ID: "1", Text: "a", Category: "work"})
	require.Equal(t, tab.ForCategory("work"), s.ActiveTab())
	assert.Equal(t, notify.Idle, s.NotifierState())

	s.Toggle("1")
	require.Equal(t, notify.Showing, s.NotifierState())
	notice, ok := s.Notice()
	require.True(t, ok)
	assert.Equal(t, "Congratulations! You've completed all tasks in work.", notice.Message)
	assert.Equal(t, "all tasks completed", hook.LastEntry().Message)

	s.Dismiss()
	s.Toggle("1")
	s.Toggle("1")
	assert.Equal(t, notify.Idle, s.NotifierState(), "same configuration must not re-notify")
	assert.Equal(t, 1, s.Raised())
}

func TestDeletePurgesRegistryForActiveTab(t *testing.T) {
	s, _ := newTestService(t)
	s.Add(task.Task{ID: "1", Text: "a", Category: "work"})
	s.Toggle("1")
	require.Equal(t, notify.Showing, s.NotifierState())
	s.Dismiss()

	s.Delete("1")
	assert.Empty(t, s.Registry())

	s.Add(task.Task{ID: "1", Text: "a", Category: "work"})
	require.Equal(t, tab.ForCategory("work"), s.ActiveTab())
	s.Toggle("1")
	assert.Equal(t, notify.Showing, s.NotifierState())
}

func TestDashedIDDoesNotHideLaterConfiguration(t *testing.T) {
	s, _ := newTestService(t)
	s.Add(task.Task{ID: "a-b", Text: "joined", Category: "work", Completed: true})
	require.Equal(t, notify.Showing, s.NotifierState())
	s.Dismiss()

	s.SetTab(tab.All)
	s.Dismiss()
	// purges all, the work signature for [a-b] stays
	s.Delete("a-b")
	s.SetTab(tab.ForCategory("work"))

	s.Add(task.Task{ID: "a", Text: "first", Category: "work"})
	s.Add(task.Task{ID: "b", Text: "second", Category: "work"})
	s.Toggle("a")
	s.Dismiss()
	raised := s.Raised()
	s.Toggle("b")

	assert.Equal(t, []string{"a", "b"}, task.IDs(s.Visible()))
	assert.Equal(t, notify.Showing, s.NotifierState())
	assert.Equal(t, raised+1, s.Raised())
}

func TestEditPurgesAndReevaluates(t *testing.T) {
	s, _ := newTestService(t)
	s.Add(task.Task{ID: "1", Text: "a"})
	s.Toggle("1")
	require.Equal(t, notify.Showing, s.NotifierState())
	s.Dismiss()

	require.True(t, s.Edit("1", task.Task{ID: "ignored", Text: " a2 ", Completed: true}))
	got := s.Tasks()[0]
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "a2", got.Text)
	assert.Equal(t, notify.Showing, s.NotifierState(), "edit allows re-notification")

	s.Dismiss()
	assert.False(t, s.Edit("missing", task.Task{Text: "x"}))
	assert.Equal(t, notify.Idle, s.NotifierState())
}

func TestEmptyUncategorizedNeverNotifies(t *testing.T) {
	s, _ := newTestService(t)
	s.Add(task.Task{ID: "1", Text: "a", Category: "work"})
	s.Toggle("1")
	s.Dismiss()

	s.SetTab(tab.Uncategorized)
	assert.Equal(t, notify.Idle, s.NotifierState())
	assert.Empty(t, s.Visible())
}

func TestSwitchingToCompletedTabNotifies(t *testing.T) {
	s, _ := newTestService(t, WithStore(store.NewMemory(
		task.Task{ID: "1", Text: "a", Category: "work", Completed: true},
	)))
	assert.Equal(t, notify.Idle, s.NotifierState())

	s.SetTab(tab.ForCategory("work"))
	assert.Equal(t, notify.Showing, s.NotifierState())
	s.Dismiss()

	s.SetTab(tab.All)
	assert.Equal(t, notify.Showing, s.NotifierState())
	notice, _ := s.Notice()
	assert.Equal(t, tab.All, notice.Tab)
}

func TestWithCategoriesAndTab(t *testing.T) {
	s, _ := newTestService(t, WithCategories("home", "home", "work"), WithTab(tab.All))
	assert.Equal(t, tab.All, s.ActiveTab())
	assert.Equal(t, []string{"home", "work"}, s.Categories())
}

func TestSnapshot(t *testing.T) {
	s, _ := newTestService(t)
	s.Add(task.Task{ID: "1", Text: "a"})
	s.Add(task.Task{ID: "2", Text: "b", Category: "work", Completed: true})

	b := s.Snapshot()
	assert.Equal(t, tab.ForCategory("work"), b.ActiveTab)
	require.Len(t, b.Tabs, 3)
	assert.Equal(t, "Uncategorized Tasks", b.Tabs[0].Title)
	assert.Equal(t, []string{"1", "2"}, task.IDs(b.Tabs[1].Tasks))
	assert.True(t, b.Tabs[2].Active)
	assert.Equal(t, 1, b.Tabs[2].Done())
	require.NotNil(t, b.Notice)
	assert.Equal(t, notify.Title, b.Notice.Title)
}
