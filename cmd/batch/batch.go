// Package batch provides the "chunklens batch" command: YAML-defined runs
// over many documents and chunk sizes.
package batch

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chunklens/chunklens/internal/batch"
	"github.com/chunklens/chunklens/internal/cliutil"
	"github.com/chunklens/chunklens/internal/output"
	"github.com/chunklens/chunklens/internal/progress"
)

// NewCommand creates the "batch" command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <runs.yaml>",
		Short: "Analyze many documents and chunk sizes from a YAML definition",
		Long: `Run the analyzer over every (document, chunk size) pair listed in a
YAML batch file.

Example batch file:
  name: release-notes
  chunk_sizes: [90, 120]
  documents:
    - path: notes.md
    - path: landing.txt
      chunk_size: 256`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			spec, err := batch.LoadSpec(args[0])
			if err != nil {
				return err
			}
			fallback, err := cliutil.ResolveChunkSize(cmd)
			if err != nil {
				return err
			}

			bar := progress.New(spec.Name, len(spec.Runs(fallback)))
			runs := batch.Execute(spec, fallback, func(r batch.Run) {
				bar.Increment(r.Path)
			})
			bar.Finish(fmt.Sprintf("%d runs completed", len(runs)))

			if jsonFlag {
				return output.PrintJSON("batch", runs)
			}

			red := color.New(color.FgRed).SprintFunc()
			failures := 0
			for _, r := range runs {
				switch {
				case r.Err != "":
					failures++
					fmt.Printf("%-40s @%-4d %s\n", r.Path, r.ChunkSize, red(r.Err))
				case r.Result == nil:
					fmt.Printf("%-40s @%-4d empty document\n", r.Path, r.ChunkSize)
				default:
					fmt.Printf("%-40s @%-4d %3d chunks, %2d entities, %d hint(s), %s\n",
						r.Path, r.ChunkSize, len(r.Result.Chunks), len(r.Result.Entities),
						len(r.Hints), r.Result.Efficiency)
				}
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d runs failed", failures, len(runs))
			}
			return nil
		},
	}
}
