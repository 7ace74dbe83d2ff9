package replay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"tableflip.dev/tabdo/pkg/app"
	"tableflip.dev/tabdo/pkg/tab"
)

const session = `
- {op: add, id: "1", text: a, category: work}
- {op: toggle, id: "1"}
- {op: toggle, id: "1"}
- {op: toggle, id: "1"}
- {op: dismiss}
- {op: delete, id: "1"}
- {op: add, id: "1", text: a, category: work}
- {op: toggle, id: "1"}
- {op: tab, tab: uncategorized}
`

func quietService() *app.Service {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return app.New(app.WithLogger(l))
}

func TestReplayJSON(t *testing.T) {
	var out bytes.Buffer
	r := Replay{Path: "-", In: strings.NewReader(session), Out: &out, JSON: true, Service: quietService()}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	var res Result
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("bad json %q: %v", out.String(), err)
	}
	if res.Steps != 9 {
		t.Fatalf("expected 9 steps, got %d", res.Steps)
	}
	if len(res.Notices) != 2 || res.Notices[0].Step != 2 || res.Notices[1].Step != 8 {
		t.Fatalf("expected notices at steps 2 and 8, got %+v", res.Notices)
	}
	if res.Board.ActiveTab != tab.Uncategorized {
		t.Fatalf("expected uncategorized active, got %s", res.Board.ActiveTab)
	}
	if res.Board.Notice == nil {
		t.Fatalf("expected undismissed notice on the board")
	}
}

func TestReplayPretty(t *testing.T) {
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte(session), 0o600); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	r := Replay{Path: path, Out: &out, Service: quietService()}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	got := out.String()
	for _, want := range []string{"step 2: toggle 1", "step 8: toggle 1", "completed all tasks in work", "› Uncategorized Tasks"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output; got %q", want, got)
		}
	}
}

func TestReplayErrors(t *testing.T) {
	r := Replay{Path: filepath.Join(t.TempDir(), "missing.yaml"), Service: quietService()}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}
	r = Replay{Path: "-", In: strings.NewReader("- op: nope\n"), Service: quietService()}
	if err := r.Do(context.Background()); err == nil || !strings.Contains(err.Error(), "unknown op") {
		t.Fatalf("expected unknown op error, got %v", err)
	}
	r = Replay{Path: "-", In: strings.NewReader("[]")}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected error without service")
	}
}
