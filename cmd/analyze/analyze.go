// Package analyze provides the "chunklens analyze" command: the full
// chunk-boundary report for a single document.
package analyze

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chunklens/chunklens/internal/analysis"
	"github.com/chunklens/chunklens/internal/cliutil"
	"github.com/chunklens/chunklens/internal/output"
)

// NewCommand creates the "analyze" command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file|->",
		Short: "Full chunk-boundary analysis of a document",
		Long: `Run the whole pipeline over a document: token counts for the GPT,
Claude, and Gemini families, paragraph and chunk segmentation with attention
heat strips, entity placement scoring, and optimization hints.

Use "-" to read the document from stdin.`,
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
			hintList := analysis.GenerateHints(res, size)

			if jsonFlag {
				return output.PrintJSON("analyze", map[string]interface{}{
					"analysis": res,
					"hints":    hintList,
				})
			}

			if res == nil {
				fmt.Println("No analysis available: the document is empty.")
				return nil
			}
			output.RenderResult(os.Stdout, res, hintList)
			return nil
		},
	}
}
