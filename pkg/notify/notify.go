// Package notify decides when a tab's tasks have all been completed and makes
// sure each completed configuration is only celebrated once.
package notify

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/tabdo/pkg/tab"
	"tableflip.dev/tabdo/pkg/task"
)

// Signature identifies a tab together with the ordered ids visible in it.
// IDs holds each id quoted and comma separated, so ids containing the
// separator cannot make two different lists encode the same.
type Signature struct {
	Tab tab.Tab
	IDs string
}

// SignatureOf builds the signature for visible tasks shown in t.
func SignatureOf(t tab.Tab, visible []task.Task) Signature {
	return Signature{Tab: t, IDs: encodeIDs(task.IDs(visible))}
}

func encodeIDs(ids []string) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = strconv.Quote(id)
	}
	return strings.Join(quoted, ",")
}

func (s Signature) String() string {
	return fmt.Sprintf("%s[%s]", s.Tab, s.IDs)
}

// Registry records which signatures have already been notified.
type Registry map[Signature]bool

// Shown reports whether sig was already notified.
func (r Registry) Shown(sig Signature) bool {
	return r[sig]
}

// Mark returns a copy of r with sig recorded.
func (r Registry) Mark(sig Signature) Registry {
	out := r.Clone()
	out[sig] = true
	return out
}

// Purge returns a copy of r without any signature belonging to t.
func (r Registry) Purge(t tab.Tab) Registry {
	out := make(Registry, len(r))
	for sig, shown := range r {
		if sig.Tab != t {
			out[sig] = shown
		}
	}
	return out
}

// Clone returns a shallow copy of r.
func (r Registry) Clone() Registry {
	out := make(Registry, len(r)+1)
	for sig, shown := range r {
		out[sig] = shown
	}
	return out
}

// Evaluate reports whether the tasks visible in active are all complete and
// not yet celebrated. When it reports true, the returned registry has the
// signature marked; otherwise reg is returned unchanged. reg is never mutated.
func Evaluate(tasks []task.Task, active tab.Tab, reg Registry) (bool, Registry) {
	visible := active.Visible(tasks)
	if !task.AllCompleted(visible) {
		return false, reg
	}
	sig := SignatureOf(active, visible)
	if reg.Shown(sig) {
		return false, reg
	}
	return true, reg.Mark(sig)
}
