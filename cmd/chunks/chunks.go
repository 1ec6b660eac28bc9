// Package chunks provides the "chunklens chunks" command.
package chunks

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chunklens/chunklens/internal/analysis"
	"github.com/chunklens/chunklens/internal/cliutil"
	"github.com/chunklens/chunklens/internal/output"
)

// NewCommand creates the "chunks" command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chunks <file|->",
		Short: "Chunk layout with per-chunk attention heat strips",
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
					return output.PrintJSON("chunks", nil)
				}
				return output.PrintJSON("chunks", map[string]interface{}{
					"chunkSize":  res.ChunkSize,
					"chunks":     res.Chunks,
					"paragraphs": res.Paragraphs,
				})
			}

			if res == nil {
				fmt.Println("No analysis available: the document is empty.")
				return nil
			}
			output.RenderParagraphs(os.Stdout, res)
			fmt.Println()
			output.RenderChunks(os.Stdout, res)
			return nil
		},
	}
}
