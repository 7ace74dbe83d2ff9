package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"tableflip.dev/tabdo/pkg/app"
	"tableflip.dev/tabdo/pkg/glyph"
	"tableflip.dev/tabdo/pkg/notify"
	"tableflip.dev/tabdo/pkg/task"
)

func init() {
	if termenv.EnvColorProfile() == termenv.Ascii {
		color.NoColor = true
	}
}

// PrettyPrint writes boards and notices for humans.
type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

const idWidth = 38

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), strings.Repeat(" ", idWidth))
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, done, total int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), strings.Repeat(" ", idWidth))
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d/%d", done, total)

	switch total {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = fmt.Fprint(pp.out(), strings.Repeat(" ", idWidth))
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	open := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, t := range tasks {
		if pp.ShowID {
			_, _ = y.Fprint(pp.out(), t.ID)
			if pad := idWidth - len(t.ID); pad > 0 {
				_, _ = fmt.Fprint(pp.out(), strings.Repeat(" ", pad))
			}
		}
		line := open
		if t.Completed {
			line = done
		}
		_, _ = fmt.Fprintf(pp.out(), " %s ", glyph.ForTask(t.Completed))
		_, _ = line.Fprintln(pp.out(), t.Text)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Board prints every tab, marking the active one.
func (pp *PrettyPrint) Board(b app.Board) {
	for _, v := range b.Tabs {
		title := v.Title
		if v.Active {
			title = fmt.Sprintf("%s %s", glyph.Active, title)
		}
		pp.TitleWithCount(title, v.Done(), len(v.Tasks))
		pp.Tasks(v.Tasks...)
	}
	if b.Notice != nil {
		pp.Notice(*b.Notice)
	}
}

// Notice prints a completion notice.
func (pp *PrettyPrint) Notice(n notify.Notice) {
	g := color.New(color.FgHiGreen, color.Bold)
	_, _ = g.Fprintf(pp.out(), "%s %s\n", glyph.Celebrate, n.Title)
	_, _ = fmt.Fprintln(pp.out(), n.Message)
	_, _ = fmt.Fprintln(pp.out(), "")
}
