// Package completion provides shell completion generation commands.
package completion

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewCommand returns the completion command.
func NewCommand(rootCmd *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completions",
		Long: `Generate shell completion scripts for chunklens.

Install instructions:
  Bash:       chunklens completion bash > /etc/bash_completion.d/chunklens
              echo 'source <(chunklens completion bash)' >> ~/.bashrc
  Zsh:        chunklens completion zsh > ~/.zsh/completions/_chunklens
  Fish:       chunklens completion fish > ~/.config/fish/completions/chunklens.fish
  PowerShell: chunklens completion powershell >> $PROFILE`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				fmt.Fprintln(os.Stdout, "# chunklens bash completion")
				fmt.Fprintln(os.Stdout, "# Install: chunklens completion bash > /etc/bash_completion.d/chunklens")
				fmt.Fprintln(os.Stdout, "# Or:      echo 'source <(chunklens completion bash)' >> ~/.bashrc")
				fmt.Fprintln(os.Stdout)
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				fmt.Fprintln(os.Stdout, "# chunklens zsh completion")
				fmt.Fprintln(os.Stdout, "# Install: chunklens completion zsh > ~/.zsh/completions/_chunklens")
				fmt.Fprintln(os.Stdout)
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				fmt.Fprintln(os.Stdout, "# chunklens fish completion")
				fmt.Fprintln(os.Stdout, "# Install: chunklens completion fish > ~/.config/fish/completions/chunklens.fish")
				fmt.Fprintln(os.Stdout)
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				fmt.Fprintln(os.Stdout, "# chunklens PowerShell completion")
				fmt.Fprintln(os.Stdout, "# Install: chunklens completion powershell >> $PROFILE")
				fmt.Fprintln(os.Stdout)
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish, powershell)", args[0])
			}
		},
	}
	return cmd
}
