// Package replay applies a scripted session to a Service and prints the result.
package replay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"tableflip.dev/tabdo/pkg/app"
	"tableflip.dev/tabdo/pkg/notify"
	"tableflip.dev/tabdo/pkg/printers"
	"tableflip.dev/tabdo/pkg/script"
)

// Replay runs the steps in Path ("-" reads In) against Service.
type Replay struct {
	Path    string
	In      io.Reader
	Out     io.Writer
	JSON    bool
	ShowID  bool
	Service *app.Service
}

// Result is the JSON form of a finished replay.
type Result struct {
	Steps   int          `json:"steps"`
	Notices []StepNotice `json:"notices"`
	Board   app.Board    `json:"board"`
}

// StepNotice records the step that raised a notice.
type StepNotice struct {
	Step   int           `json:"step"`
	Notice notify.Notice `json:"notice"`
}

// Do executes the replay.
func (r *Replay) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("replay: no service configured")
	}
	data, err := r.read()
	if err != nil {
		return err
	}
	steps, err := script.Parse(data)
	if err != nil {
		return err
	}

	out := r.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{ShowID: r.ShowID, Out: out}

	res := Result{Steps: len(steps), Notices: []StepNotice{}}
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		raised := r.Service.Raised()
		if !step.Apply(r.Service) {
			logrus.WithFields(logrus.Fields{"step": i + 1, "op": step.Op}).Debug("step had no effect")
		}
		if r.Service.Raised() == raised {
			continue
		}
		n, _ := r.Service.Notice()
		res.Notices = append(res.Notices, StepNotice{Step: i + 1, Notice: n})
		if !r.JSON {
			pp.Title(fmt.Sprintf("step %d: %s", i+1, step))
			pp.Notice(n)
		}
	}
	res.Board = r.Service.Snapshot()

	if r.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	pp.Board(res.Board)
	return nil
}

func (r *Replay) read() ([]byte, error) {
	if r.Path == "-" || r.Path == "" {
		in := r.In
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("replay: read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return data, nil
}
