// Package progress provides a terminal progress bar for batch analysis runs.
// All output goes to stderr to avoid polluting stdout/pipes.
package progress

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Bar renders an ASCII progress bar to stderr.
type Bar struct {
	Total   int
	Current int
	Label   string
	Width   int
	Enabled bool

	mu sync.Mutex
}

// New creates a progress bar. Automatically disabled when stderr is not a
// TTY or CHUNKLENS_NO_PROGRESS=1.
func New(label string, total int) *Bar {
	return &Bar{
		Total:   total,
		Label:   label,
		Width:   40,
		Enabled: shouldEnable(),
	}
}

// Increment advances the bar by 1 and redraws.
func (b *Bar) Increment(status string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.Current++
	if b.Current > b.Total {
		b.Current = b.Total
	}
	b.render(status)
}

// Finish prints a final completion line.
func (b *Bar) Finish(summary string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.Enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "\r\033[K✓ %s\n", summary)
}

func (b *Bar) render(status string) {
	if !b.Enabled {
		return
	}

	pct := 0.0
	if b.Total > 0 {
		pct = float64(b.Current) / float64(b.Total)
	}

	filled := int(pct * float64(b.Width))
	if filled > b.Width {
		filled = b.Width
	}

	bar := strings.Repeat("=", filled) + strings.Repeat(" ", b.Width-filled)
	fmt.Fprintf(os.Stderr, "\r\033[K%s [%s] %d/%d  %s",
		b.Label, bar, b.Current, b.Total, status)
}

func shouldEnable() bool {
	if os.Getenv("CHUNKLENS_NO_PROGRESS") == "1" {
		return false
	}
	stat, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
