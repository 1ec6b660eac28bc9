// Package watch provides the "chunklens watch" command: live re-analysis of
// documents on every save.
package watch

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chunklens/chunklens/internal/analysis"
	"github.com/chunklens/chunklens/internal/cliutil"
	"github.com/chunklens/chunklens/internal/config"
	"github.com/chunklens/chunklens/internal/output"
	w "github.com/chunklens/chunklens/internal/watch"
)

// NewCommand creates the "watch" command.
func NewCommand() *cobra.Command {
	var (
		extensions []string
		pattern    string
		recursive  bool
		debounce   int
	)

	cmd := &cobra.Command{
		Use:   "watch <file|directory> [path...]",
		Short: "Re-analyze documents whenever they change",
		Long: `Watch files or directories and re-run the chunk analysis on every
save, printing a compact summary and the current hints. Each change triggers
a full recomputation; the newest result replaces the previous one.

Example:
  chunklens watch ./docs --ext md --chunk-size 120
  chunklens watch draft.md`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := cliutil.ResolveChunkSize(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if len(extensions) == 0 {
				extensions = cfg.Watch.Extensions
			}
			if debounce == 0 {
				debounce = cfg.Watch.DebounceMs
			}

			watcher, err := w.New(w.WatchConfig{
				Paths:      args,
				Extensions: extensions,
				Pattern:    pattern,
				Recursive:  recursive,
				Debounce:   debounce,
			})
			if err != nil {
				return err
			}

			watcher.Handler = func(path string) error {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				res := analysis.Analyze(string(data), size)
				if res == nil {
					fmt.Printf("— %s: empty document\n", path)
					return nil
				}
				hints := analysis.GenerateHints(res, size)
				fmt.Printf("— %s: %d tokens (GPT), %d chunks, %d entities, %s\n",
					path, res.TokenCounts.GPT, len(res.Chunks), len(res.Entities), res.Efficiency)
				output.RenderHints(os.Stdout, hints)
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Printf("Watching %d path(s) at chunk size %d. Ctrl+C to stop.\n", len(args), size)
			return watcher.Start(ctx)
		},
	}

	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "File extensions to analyze (default: configured list)")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Glob pattern on the file name (e.g. 'draft_*')")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Watch directories recursively")
	cmd.Flags().IntVar(&debounce, "debounce", 0, "Milliseconds to wait before re-analyzing (default: configured value)")

	return cmd
}
