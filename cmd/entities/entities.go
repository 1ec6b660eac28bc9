// Package entities provides the "chunklens entities" command.
package entities

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chunklens/chunklens/internal/analysis"
	"github.com/chunklens/chunklens/internal/cliutil"
	"github.com/chunklens/chunklens/internal/output"
)

// NewCommand creates the "entities" command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "entities <file|->",
		Short: "Detected entities with chunk placement and attention scores",
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
					return output.PrintJSON("entities", nil)
				}
				return output.PrintJSON("entities", res.Entities)
			}

			if res == nil {
				fmt.Println("No analysis available: the document is empty.")
				return nil
			}
			output.RenderEntities(os.Stdout, res)
			return nil
		},
	}
}
