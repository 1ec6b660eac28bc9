// Package cliutil holds helpers shared by the chunklens subcommands:
// document loading and chunk-size resolution from flags and config.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chunklens/chunklens/internal/analysis"
	"github.com/chunklens/chunklens/internal/config"
)

// ReadDocument reads the document named by arg, or stdin when arg is "-".
func ReadDocument(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("could not read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("document not found: %s — check that the path is correct", arg)
		}
		return "", fmt.Errorf("could not read %s: %w", arg, err)
	}
	return string(data), nil
}

// ResolveChunkSize picks the chunk size for a command: an explicit
// --chunk-size wins, then --preset, then the configured default. A
// non-positive explicit size is rejected here at the boundary.
func ResolveChunkSize(cmd *cobra.Command) (int, error) {
	if f := cmd.Flags().Lookup("chunk-size"); f != nil && f.Changed {
		size, _ := cmd.Flags().GetInt("chunk-size")
		if size < 1 {
			return 0, fmt.Errorf("chunk size must be a positive integer, got %d", size)
		}
		return size, nil
	}

	if f := cmd.Flags().Lookup("preset"); f != nil && f.Changed {
		preset, _ := cmd.Flags().GetInt("preset")
		for _, p := range analysis.ChunkSizePresets {
			if preset == p {
				return preset, nil
			}
		}
		return 0, fmt.Errorf("unknown preset %d (available: %v)", preset, analysis.ChunkSizePresets)
	}

	cfg, err := config.Load()
	if err != nil {
		return 0, err
	}
	return cfg.ChunkSize, nil
}
