package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tabdo/pkg/commands/options"
	"tableflip.dev/tabdo/pkg/runner/ui"
	"tableflip.dev/tabdo/pkg/script"
)

func addUI(topLevel *cobra.Command) {
	so := &options.SessionOptions{}
	demo := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
tabdo ui
tabdo ui --category work --category home --tab work
tabdo ui --demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := newService(so)
			if err != nil {
				return err
			}
			if demo {
				for _, step := range script.Demo() {
					step.Apply(svc)
				}
			}
			i := ui.UI{Service: svc, LogFile: cfg.LogFile}
			return i.Do(context.Background())
		},
	}

	options.AddSessionArgs(cmd, so)
	cmd.Flags().BoolVar(&demo, "demo", false, "Start with sample tasks.")
	topLevel.AddCommand(cmd)
}
