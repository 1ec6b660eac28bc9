// Package batch provides a YAML-defined batch analysis runner: a list of
// documents, each analyzed at one or more chunk sizes in a single invocation.
package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chunklens/chunklens/internal/analysis"
)

// Spec is a complete batch definition.
type Spec struct {
	Name       string     `yaml:"name" json:"name"`
	ChunkSizes []int      `yaml:"chunk_sizes,omitempty" json:"chunkSizes,omitempty"`
	Documents  []Document `yaml:"documents" json:"documents"`
}

// Document is one input in a batch. ChunkSize, when set, overrides the
// batch-level chunk sizes for this document.
type Document struct {
	Path      string `yaml:"path" json:"path"`
	ChunkSize int    `yaml:"chunk_size,omitempty" json:"chunkSize,omitempty"`
}

// Run holds the outcome of analyzing one document at one chunk size.
type Run struct {
	Path      string           `json:"path"`
	ChunkSize int              `json:"chunkSize"`
	Result    *analysis.Result `json:"result"`
	Hints     []analysis.Hint  `json:"hints"`
	Err       string           `json:"error,omitempty"`
}

// LoadSpec reads and parses a batch YAML file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("batch file not found: %s — check that the path is correct", path)
		}
		return nil, fmt.Errorf("could not read batch file %s: %w", path, err)
	}
	return ParseSpec(data)
}

// ParseSpec parses a batch definition from YAML bytes.
func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("invalid batch YAML: %w", err)
	}
	if err := validateSpec(&spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

func validateSpec(spec *Spec) error {
	if spec.Name == "" {
		return fmt.Errorf("batch is missing a 'name' field")
	}
	if len(spec.Documents) == 0 {
		return fmt.Errorf("batch %q has no documents defined", spec.Name)
	}
	for i, doc := range spec.Documents {
		if doc.Path == "" {
			return fmt.Errorf("document %d is missing a 'path' field", i+1)
		}
		if doc.ChunkSize < 0 {
			return fmt.Errorf("document %q has a negative chunk_size", doc.Path)
		}
	}
	for _, size := range spec.ChunkSizes {
		if size < 1 {
			return fmt.Errorf("batch %q lists an invalid chunk size %d", spec.Name, size)
		}
	}
	return nil
}

// Runs expands the spec into the (document, chunk size) pairs to execute.
// A document-level chunk size wins over the batch-level list; with neither,
// the fallback size applies.
func (s *Spec) Runs(fallback int) []Run {
	if fallback < 1 {
		fallback = analysis.DefaultChunkSize
	}
	var runs []Run
	for _, doc := range s.Documents {
		switch {
		case doc.ChunkSize > 0:
			runs = append(runs, Run{Path: doc.Path, ChunkSize: doc.ChunkSize})
		case len(s.ChunkSizes) > 0:
			for _, size := range s.ChunkSizes {
				runs = append(runs, Run{Path: doc.Path, ChunkSize: size})
			}
		default:
			runs = append(runs, Run{Path: doc.Path, ChunkSize: fallback})
		}
	}
	return runs
}

// Execute analyzes every run in order. Per-document failures are recorded on
// the run rather than aborting the batch; onRun, when set, is called after
// each run completes (for progress reporting).
func Execute(spec *Spec, fallback int, onRun func(Run)) []Run {
	runs := spec.Runs(fallback)
	for i := range runs {
		data, err := os.ReadFile(runs[i].Path)
		if err != nil {
			runs[i].Err = fmt.Sprintf("could not read %s: %v", runs[i].Path, err)
		} else {
			runs[i].Result = analysis.Analyze(string(data), runs[i].ChunkSize)
			runs[i].Hints = analysis.GenerateHints(runs[i].Result, runs[i].ChunkSize)
		}
		if onRun != nil {
			onRun(runs[i])
		}
	}
	return runs
}
