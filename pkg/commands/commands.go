package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tabdo/pkg/app"
	"tableflip.dev/tabdo/pkg/commands/options"
	"tableflip.dev/tabdo/pkg/config"
	"tableflip.dev/tabdo/pkg/tab"
)

var (
	debug bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tabdo",
		Short: base.Wrap80("Track tasks in category tabs and celebrate when a tab is done."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
				logrus.Debug("Debug logging enabled")
			}
			logrus.SetFormatter(&logrus.TextFormatter{
				FullTimestamp: true,
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addReplay(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// newService builds a Service from the config file, with flags taking precedence.
func newService(so *options.SessionOptions) (*app.Service, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if !debug {
		if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			logrus.SetLevel(lvl)
		} else {
			logrus.WithError(err).Warn("ignoring log-level")
		}
	}

	start := cfg.Tab
	if so.Tab != "" {
		start = tab.Parse(so.Tab)
	}
	svc := app.New(
		app.WithCategories(append(cfg.Categories, so.Categories...)...),
		app.WithTab(start),
		app.WithLogger(logrus.StandardLogger()),
	)
	return svc, cfg, nil
}
