package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tabdo/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the glyphs and key bindings",
		Example: `
tabdo key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Out: cmd.OutOrStdout()}
			return k.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
