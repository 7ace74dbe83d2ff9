// Package task defines the task record shared by every layer of tabdo.
package task

import (
	"strings"

	"github.com/google/uuid"
)

// Task is a single to-do item. Category is empty for uncategorized tasks.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Category  string `json:"category,omitempty"`
	Completed bool   `json:"completed"`
}

// New builds an open task with a fresh id. Text and category are trimmed.
func New(text, category string) Task {
	return Task{
		ID:       NewID(),
		Text:     strings.TrimSpace(text),
		Category: strings.TrimSpace(category),
	}
}

// NewID returns a unique, stable task identifier.
func NewID() string {
	return uuid.NewString()
}

// HasCategory reports whether the task is tagged.
func (t Task) HasCategory() bool {
	return t.Category != ""
}

// Toggled returns a copy of t with the completion flag flipped.
func (t Task) Toggled() Task {
	t.Completed = !t.Completed
	return t
}

// IDs returns the ids of tasks in order.
func IDs(tasks []Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// AllCompleted reports whether tasks is non-empty and every task is complete.
func AllCompleted(tasks []Task) bool {
	if len(tasks) == 0 {
		return false
	}
	for _, t := range tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}
