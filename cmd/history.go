package cmd

import (
	"fmt"

	"github.com/abhisek/askyou/internal/report"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List logged quiz results, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		output, _ := cmd.Flags().GetString("output")
		format, err := report.ParseFormat(output)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.ResultRepo().Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}
		return report.WriteHistory(cmd.OutOrStdout(), recs, format)
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of results to show (0 for all)")
	historyCmd.Flags().StringP("output", "o", "text", "Output format: text, json or yaml")
}
