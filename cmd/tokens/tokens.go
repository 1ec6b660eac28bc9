// Package tokens provides the "chunklens tokens" command.
package tokens

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chunklens/chunklens/internal/analysis"
	"github.com/chunklens/chunklens/internal/cliutil"
	"github.com/chunklens/chunklens/internal/output"
)

// NewCommand creates the "tokens" command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Token count estimates across the three tokenizer families",
		Args:  cobra.ExactArgs(1),
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

			if jsonFlag {
				if res == nil {
					return output.PrintJSON("tokens", nil)
				}
				return output.PrintJSON("tokens", map[string]interface{}{
					"tokenCounts":   res.TokenCounts,
					"variancePct":   res.VariancePct,
					"wordCount":     res.WordCount,
					"wordsPerToken": res.WordsPerToken,
					"efficiency":    res.Efficiency,
				})
			}

			if res == nil {
				fmt.Println("No analysis available: the document is empty.")
				return nil
			}
			output.RenderTokenCounts(os.Stdout, res)
			return nil
		},
	}
}
