package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all logged results and session events",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to delete history without --yes")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		n, err := st.ResultRepo().Count(ctx)
		if err != nil {
			return fmt.Errorf("count results: %w", err)
		}
		if err := st.ResultRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear results: %w", err)
		}
		if err := st.EventRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear events: %w", err)
		}

		slog.Info("history cleared", "results", n)
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d result(s).\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Confirm deletion")
}
