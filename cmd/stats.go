package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/askyou/internal/quiz"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how often each personality type was the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.ResultRepo().Recent(cmd.Context(), 0)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(recs) == 0 {
			fmt.Fprintln(out, "No results logged yet.")
			return nil
		}

		counts := make(map[quiz.Code]int)
		for _, r := range recs {
			counts[quiz.Code(r.Code)]++
		}

		fmt.Fprintf(out, "%-20s  %6s  %6s\n", "Type", "Count", "Share")
		fmt.Fprintln(out, strings.Repeat("─", 36))
		for _, code := range []quiz.Code{quiz.CodeET, quiz.CodeEF, quiz.CodeIT, quiz.CodeIF} {
			p, _ := quiz.Lookup(code)
			n := counts[code]
			fmt.Fprintf(out, "%-20s  %6d  %5.0f%%\n", p.Title, n, 100*float64(n)/float64(len(recs)))
		}
		fmt.Fprintln(out, strings.Repeat("─", 36))
		fmt.Fprintf(out, "%-20s  %6d\n", "TOTAL", len(recs))
		return nil
	},
}
