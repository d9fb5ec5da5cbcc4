package cmd

import (
	"log/slog"

	"github.com/abhisek/askyou/internal/app"
	"github.com/spf13/cobra"
)

// runApp opens the result log (unless disabled) and launches the TUI.
func runApp(cmd *cobra.Command) error {
	opts := app.Options{}
	if off, _ := cmd.Flags().GetBool("no-history"); !off {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		opts.ResultRepo = st.ResultRepo()
		opts.EventRepo = st.EventRepo()
	}

	if skip, _ := cmd.Flags().GetBool("skip-welcome"); skip {
		opts.SkipWelcome = true
	}

	slog.Info("starting tui", "history", opts.ResultRepo != nil)
	return app.Run(opts)
}
