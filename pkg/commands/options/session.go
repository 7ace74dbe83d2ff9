package options

import (
	"github.com/spf13/cobra"
)

// SessionOptions override the configured starting state of a session.
type SessionOptions struct {
	Tab        string
	Categories []string
}

func AddSessionArgs(cmd *cobra.Command, o *SessionOptions) {
	cmd.Flags().StringVarP(&o.Tab, "tab", "t", "",
		`Tab to start on: "all", "uncategorized" or a category name.`)
	cmd.Flags().StringSliceVarP(&o.Categories, "category", "c", nil,
		"Declare a category before the session starts. Repeatable.")
}
