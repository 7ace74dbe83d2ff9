// Package key prints the glyph legend and the terminal UI key bindings.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tabdo/pkg/glyph"
	"tableflip.dev/tabdo/pkg/tui"
)

// Key prints the legend.
type Key struct {
	// Out defaults to color.Output.
	Out io.Writer
}

// Do renders the glyph and key binding tables.
func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	_, _ = fmt.Fprintln(out, "")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Glyph"), bold.Sprint("Meaning"))
	for _, g := range glyph.Legend() {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")

	keys := uitable.New()
	keys.Separator = "  "
	keys.AddRow(bold.Sprint("Keys"), bold.Sprint("Action"))
	for _, b := range tui.Bindings() {
		keys.AddRow(b.Keys, b.Meaning)
	}
	_, _ = fmt.Fprintln(out, keys)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
