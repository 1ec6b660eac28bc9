// Package report provides the "chunklens report" command: xlsx export of an
// analysis.
package report

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chunklens/chunklens/internal/analysis"
	"github.com/chunklens/chunklens/internal/cliutil"
	"github.com/chunklens/chunklens/internal/output"
	"github.com/chunklens/chunklens/internal/report"
)

// NewCommand creates the "report" command.
func NewCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Export a full analysis to an Excel workbook",
		Long: `Analyze a document and write the result to a multi-sheet .xlsx
workbook (Summary, Paragraphs, Chunks, Entities, Hints) for sharing or
further slicing in a spreadsheet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			size, err := cliutil.ResolveChunkSize(cmd)
			if err != nil {
				return err
			}
			text, err := cliutil.ReadDocument(args[0])
			if err != nil {
				return err
			}

			res := analysis.Analyze(text, size)
			if res == nil {
				return fmt.Errorf("nothing to export: %s is empty", args[0])
			}
			hints := analysis.GenerateHints(res, size)

			if outPath == "" {
				outPath = defaultOutPath(args[0])
			}
			if err := report.WriteXLSX(res, hints, outPath); err != nil {
				return err
			}

			if jsonFlag {
				return output.PrintJSON("report", map[string]interface{}{
					"outputPath": outPath,
					"chunkSize":  res.ChunkSize,
					"chunks":     len(res.Chunks),
					"entities":   len(res.Entities),
					"hints":      len(hints),
				})
			}
			fmt.Printf("Report written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output .xlsx path (default: <input>.xlsx)")
	return cmd
}

func defaultOutPath(input string) string {
	if input == "-" {
		return "chunklens-report.xlsx"
	}
	if idx := strings.LastIndex(input, "."); idx > 0 {
		return input[:idx] + ".xlsx"
	}
	return input + ".xlsx"
}
