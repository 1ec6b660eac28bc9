// Package cmd contains all CLI commands for the chunklens binary.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chunklens/chunklens/cmd/analyze"
	cmdbatch "github.com/chunklens/chunklens/cmd/batch"
	"github.com/chunklens/chunklens/cmd/chunks"
	"github.com/chunklens/chunklens/cmd/completion"
	cmdconfig "github.com/chunklens/chunklens/cmd/config"
	"github.com/chunklens/chunklens/cmd/entities"
	"github.com/chunklens/chunklens/cmd/hints"
	cmdreport "github.com/chunklens/chunklens/cmd/report"
	cmdshell "github.com/chunklens/chunklens/cmd/shell"
	"github.com/chunklens/chunklens/cmd/tokens"
	"github.com/chunklens/chunklens/cmd/version"
	cmdwatch "github.com/chunklens/chunklens/cmd/watch"
	"github.com/chunklens/chunklens/internal/output"
	shellpkg "github.com/chunklens/chunklens/internal/shell"
)

var (
	jsonOutput bool
	noColor    bool
	chunkSize  int
	preset     int
)

// NewRootCommand creates and returns the root cobra command with all
// subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chunklens",
		Short: "Chunk-boundary and attention analyzer for RAG content",
		Long: `ChunkLens — see your content the way a retrieval pipeline does.

Estimates how a document splits into fixed-size chunks, approximates token
counts for the GPT, Claude, and Gemini tokenizer families, and scores how
much attention each detected entity gets based on where it lands inside its
chunk. All analysis is rule-based, offline, and deterministic.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	// Global persistent flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as machine-readable JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable ANSI color output")
	rootCmd.PersistentFlags().IntVar(&chunkSize, "chunk-size", 0, "Chunk size in tokens (default: configured value)")
	rootCmd.PersistentFlags().IntVar(&preset, "preset", 0, "Recommended chunk size preset: 90, 100, 120, 256, or 512")

	// Register subcommands
	rootCmd.AddCommand(analyze.NewCommand())
	rootCmd.AddCommand(tokens.NewCommand())
	rootCmd.AddCommand(chunks.NewCommand())
	rootCmd.AddCommand(entities.NewCommand())
	rootCmd.AddCommand(hints.NewCommand())
	rootCmd.AddCommand(cmdreport.NewCommand())
	rootCmd.AddCommand(cmdbatch.NewCommand())
	rootCmd.AddCommand(cmdwatch.NewCommand())
	rootCmd.AddCommand(cmdshell.NewCommand())
	rootCmd.AddCommand(cmdconfig.NewCommand())
	rootCmd.AddCommand(completion.NewCommand(rootCmd))
	rootCmd.AddCommand(version.NewCommand())

	return rootCmd
}

// Execute runs the root command and handles any returned errors.
func Execute() {
	shellpkg.DefaultRunner = runCommand

	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		if jsonOutput {
			output.PrintJSONError(commandName(os.Args[1:]), err, output.ExitUserError)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(output.ExitUserError)
	}
}

// commandName picks the first non-flag argument for the JSON error envelope.
func commandName(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return "chunklens"
}

// runCommand executes a chunklens command line for the interactive shell.
func runCommand(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}
