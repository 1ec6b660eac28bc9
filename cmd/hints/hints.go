// Package hints provides the "chunklens hints" command.
package hints

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chunklens/chunklens/internal/analysis"
	"github.com/chunklens/chunklens/internal/cliutil"
	"github.com/chunklens/chunklens/internal/output"
)

// NewCommand creates the "hints" command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hints <file|->",
		Short: "Optimization hints for a document at the active chunk size",
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
			hintList := analysis.GenerateHints(res, size)

			if jsonFlag {
				return output.PrintJSON("hints", hintList)
			}

			if res == nil {
				fmt.Println("No analysis available: the document is empty.")
				return nil
			}
			output.RenderHints(os.Stdout, hintList)
			return nil
		},
	}
}
