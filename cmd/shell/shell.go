// Package shell provides the "chunklens shell" interactive REPL command.
package shell

import (
	"fmt"

	"github.com/spf13/cobra"

	shellpkg "github.com/chunklens/chunklens/internal/shell"
)

// NewCommand creates the "shell" command.
func NewCommand() *cobra.Command {
	var (
		evalCmd   string
		chunkSize int
	)

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive chunklens shell",
		Long: `Start an interactive REPL with history and tab completion. A session
chunk size, once set with 'set size <n>', is applied to every analysis
command that does not pick its own.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := shellpkg.NewSession()
			if err != nil {
				return err
			}
			if chunkSize > 0 {
				session.ChunkSize = chunkSize
			}
			if evalCmd != "" {
				output, err := session.Eval(cmd.Context(), evalCmd)
				if err != nil {
					return err
				}
				fmt.Print(output)
				return nil
			}
			return session.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&evalCmd, "eval", "", "Run a single command and exit")
	cmd.Flags().IntVar(&chunkSize, "size", 0, "Initial session chunk size")
	return cmd
}
