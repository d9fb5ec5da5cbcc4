package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abhisek/askyou/internal/answers"
	"github.com/abhisek/askyou/internal/quiz"
	"github.com/abhisek/askyou/internal/report"
	"github.com/abhisek/askyou/internal/store"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a set of answers without the TUI",
	Long: `Score answers headlessly through the quiz engine.

Answers are zero-based option indexes, one per question, either as a
comma separated list or as a JSON answer sheet: {"answers": [0, 1, 2, 3, 0]}.
Use --file - to read the sheet from stdin.`,
	Example: `  askyou score --answers 2,0,1,0,1
  askyou score --file sheet.json --output json`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringP("answers", "a", "", "Comma separated option indexes, e.g. 0,1,2,3,0")
	scoreCmd.Flags().StringP("file", "f", "", "Path to a JSON answer sheet (- for stdin)")
	scoreCmd.Flags().StringP("output", "o", "text", "Output format: text, json or yaml")
	scoreCmd.Flags().Bool("save", false, "Log the result to the history database")
	scoreCmd.MarkFlagsMutuallyExclusive("answers", "file")
}

func runScore(cmd *cobra.Command, args []string) error {
	list, _ := cmd.Flags().GetString("answers")
	file, _ := cmd.Flags().GetString("file")
	output, _ := cmd.Flags().GetString("output")

	format, err := report.ParseFormat(output)
	if err != nil {
		return err
	}

	sheet, err := loadSheet(cmd.InOrStdin(), list, file)
	if err != nil {
		return err
	}

	snap, err := sheet.Score()
	if err != nil {
		return fmt.Errorf("score answers: %w", err)
	}
	slog.Info("scored answers", "code", snap.Persona.Code, "session", snap.Session)

	if save, _ := cmd.Flags().GetBool("save"); save {
		if off, _ := cmd.Flags().GetBool("no-history"); !off {
			if err := saveSnapshot(cmd.Context(), cmd, snap); err != nil {
				return err
			}
		}
	}

	return report.WriteResult(cmd.OutOrStdout(), report.FromSnapshot(snap), format)
}

// loadSheet builds an answer sheet from either a comma list or a file.
func loadSheet(stdin io.Reader, list, file string) (answers.Sheet, error) {
	switch {
	case list != "":
		return answers.Parse(list)
	case file == "-":
		return answers.Decode(stdin)
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return answers.Sheet{}, fmt.Errorf("open answer sheet: %w", err)
		}
		defer f.Close()
		return answers.Decode(f)
	}
	return answers.Sheet{}, errors.New("one of --answers or --file is required")
}

func saveSnapshot(ctx context.Context, cmd *cobra.Command, snap quiz.Snapshot) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.ResultRepo().Save(ctx, store.NewResultRecord(snap)); err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}
