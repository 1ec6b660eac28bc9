// Package shell provides the interactive chunklens REPL.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
)

// CommandRunner executes a chunklens command and returns its output.
// This is set by the cmd/shell package to avoid import cycles.
type CommandRunner func(ctx context.Context, args []string, stdout, stderr io.Writer) error

// DefaultRunner is the command runner used by the shell session.
var DefaultRunner CommandRunner

// Session manages an interactive chunklens shell session.
type Session struct {
	ChunkSize      int // 0 means each command falls back to its own default
	LastOutput     string
	CommandHistory []string
	HistoryFile    string
	StartTime      time.Time

	// KnownCommands is the list of top-level commands for completion.
	KnownCommands []string
}

// NewSession creates a new interactive session.
func NewSession() (*Session, error) {
	home, _ := os.UserHomeDir()
	histFile := filepath.Join(home, ".chunklens", "shell_history")

	// Ensure parent dir exists
	os.MkdirAll(filepath.Dir(histFile), 0755)

	return &Session{
		HistoryFile: histFile,
		StartTime:   time.Now(),
		KnownCommands: []string{
			"analyze", "tokens", "chunks", "entities", "hints",
			"report", "batch", "watch",
			"config", "completion", "version",
			"help", "exit", "quit", "history", "set",
		},
	}, nil
}

// Run starts the REPL loop. Blocks until 'exit' or Ctrl+D.
func (s *Session) Run(ctx context.Context) error {
	if DefaultRunner == nil {
		return fmt.Errorf("shell runner not configured")
	}

	completer := readline.NewPrefixCompleter(s.buildCompleter()...)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "chunklens> ",
		HistoryFile:     s.HistoryFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println("ChunkLens — Interactive Shell")
	fmt.Println("Type 'help' for commands, 'exit' to quit.")
	fmt.Println()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		s.CommandHistory = append(s.CommandHistory, line)

		switch {
		case line == "exit" || line == "quit":
			elapsed := time.Since(s.StartTime)
			fmt.Printf("\nSession ended. %d commands run in %s.\n",
				len(s.CommandHistory)-1, formatDuration(elapsed))
			return nil
		case line == "help":
			s.printHelp()
		case line == "history":
			for i, cmd := range s.CommandHistory {
				fmt.Printf("  %d  %s\n", i+1, cmd)
			}
		case strings.HasPrefix(line, "set size "):
			if err := s.setChunkSize(strings.TrimPrefix(line, "set size ")); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			} else {
				fmt.Printf("Session chunk size: %d\n", s.ChunkSize)
			}
		default:
			output, err := s.Eval(ctx, line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			} else if output != "" {
				fmt.Print(output)
				if !strings.HasSuffix(output, "\n") {
					fmt.Println()
				}
			}
		}
	}

	return nil
}

// Eval runs a single command string and returns its output. The session
// chunk size, when set, is appended unless the command picks its own.
func (s *Session) Eval(ctx context.Context, command string) (string, error) {
	if DefaultRunner == nil {
		return "", fmt.Errorf("shell runner not configured")
	}

	args := strings.Fields(command)
	if len(args) == 0 {
		return "", nil
	}
	if s.ChunkSize > 0 && !hasChunkSizeFlag(args) {
		args = append(args, "--chunk-size", strconv.Itoa(s.ChunkSize))
	}

	var stdout, stderr bytes.Buffer
	err := DefaultRunner(ctx, args, &stdout, &stderr)

	output := stdout.String()
	s.LastOutput = output

	if errOut := stderr.String(); errOut != "" && err != nil {
		return output, fmt.Errorf("%s", strings.TrimSpace(errOut))
	}

	return output, err
}

func (s *Session) setChunkSize(value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return fmt.Errorf("chunk size must be a positive integer, got %q", value)
	}
	s.ChunkSize = n
	return nil
}

func hasChunkSizeFlag(args []string) bool {
	for _, a := range args {
		if a == "--chunk-size" || strings.HasPrefix(a, "--chunk-size=") || a == "--preset" || strings.HasPrefix(a, "--preset=") {
			return true
		}
	}
	return false
}

// Complete returns tab-completion candidates for the given input.
func (s *Session) Complete(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return s.KnownCommands
	}

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return s.KnownCommands
	}

	// Complete top-level command
	if len(parts) == 1 && !strings.HasSuffix(input, " ") {
		prefix := parts[0]
		var matches []string
		for _, cmd := range s.KnownCommands {
			if strings.HasPrefix(cmd, prefix) {
				matches = append(matches, cmd)
			}
		}
		sort.Strings(matches)
		return matches
	}

	// For subcommands, return common subcommands based on parent
	parent := parts[0]
	subcommands := s.subcommandsFor(parent)
	if len(parts) == 2 && !strings.HasSuffix(input, " ") {
		prefix := parts[1]
		var matches []string
		for _, sub := range subcommands {
			if strings.HasPrefix(sub, prefix) {
				matches = append(matches, sub)
			}
		}
		return matches
	}

	// For flags
	if strings.HasSuffix(input, " -") || (len(parts) > 0 && strings.HasPrefix(parts[len(parts)-1], "-")) {
		return []string{"--json", "--chunk-size", "--preset", "--help"}
	}

	return nil
}

func (s *Session) subcommandsFor(parent string) []string {
	subs := map[string][]string{
		"config": {"show", "set", "get", "path"},
	}
	return subs[parent]
}

func (s *Session) printHelp() {
	fmt.Println("Available commands:")
	fmt.Println()
	fmt.Println("  Analysis:   analyze, tokens, chunks, entities, hints")
	fmt.Println("  Output:     report <file> -o out.xlsx, batch <runs.yaml>")
	fmt.Println("  Live:       watch <path>")
	fmt.Println("  System:     config, completion, version")
	fmt.Println()
	fmt.Println("Shell commands:")
	fmt.Println("  help           — show this help")
	fmt.Println("  history        — show command history")
	fmt.Println("  set size <n>   — chunk size for subsequent commands")
	fmt.Println("  exit           — exit the shell")
}

func (s *Session) buildCompleter() []readline.PrefixCompleterInterface {
	var items []readline.PrefixCompleterInterface
	for _, cmd := range s.KnownCommands {
		subs := s.subcommandsFor(cmd)
		if len(subs) > 0 {
			var subItems []readline.PrefixCompleterInterface
			for _, sub := range subs {
				subItems = append(subItems, readline.PcItem(sub))
			}
			items = append(items, readline.PcItem(cmd, subItems...))
		} else {
			items = append(items, readline.PcItem(cmd))
		}
	}
	return items
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %ds", m, s)
}
