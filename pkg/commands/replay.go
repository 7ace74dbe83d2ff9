package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/tabdo/pkg/commands/options"
	"tableflip.dev/tabdo/pkg/runner/replay"
)

func addReplay(topLevel *cobra.Command) {
	so := &options.SessionOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "replay <script.yaml|->",
		Short: "apply a scripted session and print the resulting tabs",
		Example: `
tabdo replay session.yaml
cat session.yaml | tabdo replay - --json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a script path, or - for stdin")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			svc, _, err := newService(so)
			if err != nil {
				return oo.HandleError(err)
			}
			r := replay.Replay{
				Path:    args[0],
				In:      cmd.InOrStdin(),
				Out:     oo.Out,
				JSON:    oo.JSON,
				ShowID:  oo.ShowID,
				Service: svc,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddSessionArgs(cmd, so)
	options.AddOutputArg(cmd, oo)
	options.AddShowIDArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
