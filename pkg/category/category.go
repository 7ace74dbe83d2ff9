// Package category resolves the categories shown as tabs.
//
// Two sets feed the result. Declared categories are registered on their own
// and persist for the life of the session. Task-derived categories exist only
// while at least one task references them. The resolved list is the declared
// set in registration order followed by derived categories in first-seen task
// order, without duplicates.
package category

import (
	"strings"

	"tableflip.dev/tabdo/pkg/task"
)

// Resolver holds the declared categories. The zero value is ready to use.
type Resolver struct {
	declared []string
}

// NewResolver seeds the declared set, dropping blanks and duplicates.
func NewResolver(declared ...string) *Resolver {
	r := &Resolver{}
	for _, name := range declared {
		name = strings.TrimSpace(name)
		if name == "" || contains(r.declared, name) {
			continue
		}
		r.declared = append(r.declared, name)
	}
	return r
}

// Declared returns a copy of the declared categories in registration order.
func (r *Resolver) Declared() []string {
	return append([]string(nil), r.declared...)
}

// Derived returns the categories referenced by tasks, in first-seen order.
func Derived(tasks []task.Task) []string {
	seen := make(map[string]struct{}, len(tasks))
	out := make([]string, 0)
	for _, t := range tasks {
		if !t.HasCategory() {
			continue
		}
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}

// Resolve returns the union of declared and derived categories.
func (r *Resolver) Resolve(tasks []task.Task) []string {
	out := append([]string(nil), r.declared...)
	for _, c := range Derived(tasks) {
		if !contains(r.declared, c) {
			out = append(out, c)
		}
	}
	return out
}

// Contains reports whether name is in the resolved set for tasks.
func (r *Resolver) Contains(name string, tasks []task.Task) bool {
	if contains(r.declared, name) {
		return true
	}
	for _, t := range tasks {
		if t.Category == name && name != "" {
			return true
		}
	}
	return false
}

// Declare registers name unless it is blank or already resolved for tasks.
// It reports whether the declared set changed.
func (r *Resolver) Declare(name string, tasks []task.Task) bool {
	name = strings.TrimSpace(name)
	if name == "" || r.Contains(name, tasks) {
		return false
	}
	r.declared = append(r.declared, name)
	return true
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}
