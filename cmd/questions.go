package cmd

import (
	"github.com/abhisek/askyou/internal/quiz"
	"github.com/abhisek/askyou/internal/report"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the question bank with option weights",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		format, err := report.ParseFormat(output)
		if err != nil {
			return err
		}
		return report.WriteQuestions(cmd.OutOrStdout(), quiz.Questions(), format)
	},
}

func init() {
	questionsCmd.Flags().StringP("output", "o", "text", "Output format: text, json or yaml")
}
