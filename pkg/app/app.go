package app

import (
	"strings"

	"github.com/sirupsen/logrus"

	"tableflip.dev/tabdo/pkg/category"
	"tableflip.dev/tabdo/pkg/notify"
	"tableflip.dev/tabdo/pkg/store"
	"tableflip.dev/tabdo/pkg/tab"
	"tableflip.dev/tabdo/pkg/task"
)

// Service owns the session state: tasks, categories, the active tab and the
// completion notice. UIs and the replay runner drive it so they share logic.
//
// Every operation is total. Unknown ids and duplicate categories leave the
// state untouched and report false.
type Service struct {
	store      store.Store
	categories *category.Resolver
	active     tab.Tab
	registry   notify.Registry
	notifier   notify.Notifier
	raised     int
	log        logrus.FieldLogger
}

// Option customises New.
type Option func(*Service)

// WithStore replaces the default in-memory store.
func WithStore(s store.Store) Option {
	return func(svc *Service) {
		if s != nil {
			svc.store = s
		}
	}
}

// WithCategories declares categories up front. It does not switch tabs.
func WithCategories(names ...string) Option {
	return func(svc *Service) {
		svc.categories = category.NewResolver(append(svc.categories.Declared(), names...)...)
	}
}

// WithTab sets the initial tab.
func WithTab(t tab.Tab) Option {
	return func(svc *Service) {
		if t != "" {
			svc.active = t
		}
	}
}

// WithLogger routes operation logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(svc *Service) {
		if l != nil {
			svc.log = l
		}
	}
}

// New builds a Service starting on the Uncategorized tab.
func New(opts ...Option) *Service {
	s := &Service{
		store:      store.NewMemory(),
		categories: category.NewResolver(),
		active:     tab.Uncategorized,
		registry:   notify.Registry{},
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.evaluate()
	return s
}

// Tasks returns every task in insertion order.
func (s *Service) Tasks() []task.Task {
	return s.store.List()
}

// Categories returns declared categories followed by task-derived ones.
func (s *Service) Categories() []string {
	return s.categories.Resolve(s.store.List())
}

// Tabs lists the tab bar in display order.
func (s *Service) Tabs() []tab.Tab {
	return tab.Bar(s.Categories())
}

// ActiveTab returns the selected tab.
func (s *Service) ActiveTab() tab.Tab {
	return s.active
}

// Visible returns the tasks shown in the active tab.
func (s *Service) Visible() []task.Task {
	return s.active.Visible(s.store.List())
}

// Notice returns the completion notice while one is showing.
func (s *Service) Notice() (notify.Notice, bool) {
	return s.notifier.Notice()
}

// NotifierState reports whether a completion notice is showing.
func (s *Service) NotifierState() notify.State {
	return s.notifier.State()
}

// Raised counts the notices shown so far, dismissed or not.
func (s *Service) Raised() int {
	return s.raised
}

// Registry returns a copy of the notified signatures.
func (s *Service) Registry() notify.Registry {
	return s.registry.Clone()
}

// Add appends t. A task without an id gets a fresh one. When t introduces a
// category that is not yet known, the active tab switches to it.
func (s *Service) Add(t task.Task) bool {
	if t.ID == "" {
		t.ID = task.NewID()
	}
	fresh := t.HasCategory() && !s.categories.Contains(t.Category, s.store.List())
	if !s.store.Add(t) {
		s.log.WithFields(logrus.Fields{"op": "add", "id": t.ID}).Debug("duplicate task id ignored")
		return false
	}
	if fresh {
		s.active = tab.ForCategory(t.Category)
	}
	s.log.WithFields(logrus.Fields{"op": "add", "id": t.ID, "tab": s.active}).Debug("task added")
	s.evaluate()
	return true
}

// Submit handles the add form: the text is required, a blank category means
// uncategorized.
func (s *Service) Submit(text, cat string) (task.Task, bool) {
	t := task.New(text, cat)
	if t.Text == "" {
		return task.Task{}, false
	}
	if !s.Add(t) {
		return task.Task{}, false
	}
	return t, true
}

// RegisterCategory declares a standalone category and switches to it.
// Registering a known category does nothing.
func (s *Service) RegisterCategory(name string) bool {
	name = strings.TrimSpace(name)
	if !s.categories.Declare(name, s.store.List()) {
		return false
	}
	s.active = tab.ForCategory(name)
	s.log.WithFields(logrus.Fields{"op": "category", "tab": s.active}).Debug("category registered")
	s.evaluate()
	return true
}

// Toggle flips the completion flag of the task with id.
func (s *Service) Toggle(id string) bool {
	if !s.store.Update(id, task.Task.Toggled) {
		return false
	}
	s.log.WithFields(logrus.Fields{"op": "toggle", "id": id}).Debug("task toggled")
	s.evaluate()
	return true
}

// Delete removes the task with id and forgets which configurations of the
// active tab were already celebrated.
func (s *Service) Delete(id string) bool {
	if !s.store.Delete(id) {
		return false
	}
	s.registry = s.registry.Purge(s.active)
	s.log.WithFields(logrus.Fields{"op": "delete", "id": id, "tab": s.active}).Debug("task deleted")
	s.evaluate()
	return true
}

// Edit replaces the task with id by t, keeping the id, and forgets which
// configurations of the active tab were already celebrated.
func (s *Service) Edit(id string, t task.Task) bool {
	t.Text = strings.TrimSpace(t.Text)
	t.Category = strings.TrimSpace(t.Category)
	if !s.store.Update(id, func(task.Task) task.Task { return t }) {
		return false
	}
	s.registry = s.registry.Purge(s.active)
	s.log.WithFields(logrus.Fields{"op": "edit", "id": id, "tab": s.active}).Debug("task edited")
	s.evaluate()
	return true
}

// SetTab selects t.
func (s *Service) SetTab(t tab.Tab) {
	if t == "" {
		t = tab.Uncategorized
	}
	s.active = t
	s.evaluate()
}

// Dismiss closes the completion notice.
func (s *Service) Dismiss() {
	s.notifier.Dismiss()
}

func (s *Service) evaluate() {
	show, next := notify.Evaluate(s.store.List(), s.active, s.registry)
	s.registry = next
	if show {
		s.notifier.Show(s.active)
		s.raised++
		s.log.WithFields(logrus.Fields{"op": "notify", "tab": s.active}).Info("all tasks completed")
	}
}
