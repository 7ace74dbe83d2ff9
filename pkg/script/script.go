// Package script parses and applies replay scripts: YAML lists of the same
// actions a user performs in the terminal UI.
//
//	- op: add
//	  id: "1"
//	  text: write report
//	  category: work
//	- op: toggle
//	  id: "1"
//	- op: dismiss
package script

import (
	"errors"
	"fmt"
	"strings"

	"sigs.k8s.io/yaml"

	"tableflip.dev/tabdo/pkg/app"
	"tableflip.dev/tabdo/pkg/tab"
	"tableflip.dev/tabdo/pkg/task"
)

// Op names a user action.
type Op string

const (
	OpAdd      Op = "add"
	OpCategory Op = "category"
	OpToggle   Op = "toggle"
	OpDelete   Op = "delete"
	OpEdit     Op = "edit"
	OpTab      Op = "tab"
	OpDismiss  Op = "dismiss"
)

// Step is one scripted action. Which fields matter depends on Op.
type Step struct {
	Op        Op     `json:"op"`
	ID        string `json:"id,omitempty"`
	Text      string `json:"text,omitempty"`
	Category  string `json:"category,omitempty"`
	Tab       string `json:"tab,omitempty"`
	Completed bool   `json:"completed,omitempty"`
}

// Parse decodes and validates a script. Unknown keys are rejected.
func Parse(data []byte) ([]Step, error) {
	var steps []Step
	if err := yaml.UnmarshalStrict(data, &steps); err != nil {
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	for i := range steps {
		steps[i].Op = Op(strings.ToLower(strings.TrimSpace(string(steps[i].Op))))
		if err := steps[i].validate(); err != nil {
			return nil, fmt.Errorf("script: step %d: %w", i+1, err)
		}
	}
	return steps, nil
}

func (s Step) validate() error {
	switch s.Op {
	case OpAdd:
		if strings.TrimSpace(s.Text) == "" {
			return fmt.Errorf("%s requires text", s.Op)
		}
	case OpEdit:
		if s.ID == "" {
			return fmt.Errorf("%s requires id", s.Op)
		}
		if strings.TrimSpace(s.Text) == "" {
			return fmt.Errorf("%s requires text", s.Op)
		}
	case OpToggle, OpDelete:
		if s.ID == "" {
			return fmt.Errorf("%s requires id", s.Op)
		}
	case OpCategory:
		if strings.TrimSpace(s.Category) == "" {
			return fmt.Errorf("%s requires category", s.Op)
		}
	case OpTab, OpDismiss:
	case "":
		return errors.New("missing op")
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}

// Apply performs the step against svc and reports whether it changed
// anything. Steps naming unknown ids are no-ops, like their UI counterparts.
func (s Step) Apply(svc *app.Service) bool {
	switch s.Op {
	case OpAdd:
		t := task.New(s.Text, s.Category)
		if s.ID != "" {
			t.ID = s.ID
		}
		t.Completed = s.Completed
		return svc.Add(t)
	case OpCategory:
		return svc.RegisterCategory(s.Category)
	case OpToggle:
		return svc.Toggle(s.ID)
	case OpDelete:
		return svc.Delete(s.ID)
	case OpEdit:
		return svc.Edit(s.ID, task.Task{
			ID:        s.ID,
			Text:      s.Text,
			Category:  s.Category,
			Completed: s.Completed,
		})
	case OpTab:
		next := tab.Parse(s.Tab)
		changed := next != svc.ActiveTab()
		svc.SetTab(next)
		return changed
	case OpDismiss:
		_, showing := svc.Notice()
		svc.Dismiss()
		return showing
	}
	return false
}

func (s Step) String() string {
	switch s.Op {
	case OpAdd:
		if s.Category != "" {
			return fmt.Sprintf("add %q [%s]", s.Text, s.Category)
		}
		return fmt.Sprintf("add %q", s.Text)
	case OpCategory:
		return fmt.Sprintf("category %s", s.Category)
	case OpTab:
		return fmt.Sprintf("tab %s", tab.Parse(s.Tab))
	case OpDismiss:
		return "dismiss"
	default:
		return fmt.Sprintf("%s %s", s.Op, s.ID)
	}
}
