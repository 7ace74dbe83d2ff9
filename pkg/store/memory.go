package store

import (
	"tableflip.dev/tabdo/pkg/task"
)

// Store defines the storage contract for tasks. Tasks keep insertion order.
// Every operation is total: unknown ids report false and change nothing.
type Store interface {
	List() []task.Task
	Get(id string) (task.Task, bool)
	Add(t task.Task) bool
	Update(id string, fn func(task.Task) task.Task) bool
	Delete(id string) bool
}

// NewMemory returns an empty in-memory Store seeded with tasks.
// Seed tasks with duplicate ids are dropped.
func NewMemory(tasks ...task.Task) *Memory {
	m := &Memory{}
	for _, t := range tasks {
		m.Add(t)
	}
	return m
}

// Memory is an ordered, in-process Store. It is not safe for concurrent use;
// callers run mutations one at a time from the UI event loop.
type Memory struct {
	tasks []task.Task
}

var _ Store = (*Memory)(nil)

func (m *Memory) List() []task.Task {
	return append([]task.Task(nil), m.tasks...)
}

func (m *Memory) Get(id string) (task.Task, bool) {
	if i := m.index(id); i >= 0 {
		return m.tasks[i], true
	}
	return task.Task{}, false
}

// Add appends t. It refuses empty or duplicate ids.
func (m *Memory) Add(t task.Task) bool {
	if t.ID == "" || m.index(t.ID) >= 0 {
		return false
	}
	m.tasks = append(m.tasks, t)
	return true
}

// Update replaces the task with id by fn's result. The id itself is pinned.
func (m *Memory) Update(id string, fn func(task.Task) task.Task) bool {
	i := m.index(id)
	if i < 0 {
		return false
	}
	next := fn(m.tasks[i])
	next.ID = id
	m.tasks[i] = next
	return true
}

func (m *Memory) Delete(id string) bool {
	i := m.index(id)
	if i < 0 {
		return false
	}
	m.tasks = append(m.tasks[:i:i], m.tasks[i+1:]...)
	return true
}

func (m *Memory) index(id string) int {
	for i, t := range m.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
