package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/newcomb/automaton"
	"gopkg.in/yaml.v3"
)

// Kind names the evaluator a definition is built for.
type Kind string

const (
	KindAcceptor         Kind = "acceptor"
	KindNonDeterministic Kind = "nondeterministic"
	KindTransducer       Kind = "transducer"
	KindRecognition      Kind = "recognition"
)

var (
	ErrInvalidDefinition = errors.New("invalid automaton definition")
	ErrUnknownAutomaton  = errors.New("unknown automaton")
)

//go:embed default.yaml
var defaultYAML []byte

// File is the root of a definitions file.
type File struct {
	Automata []Definition `yaml:"automata"`
}

// Definition describes one machine. Cyclic kinds use Alphabet, States, Accepting, Initial and,
// for transducers, Output; recognition uses Threshold only.
type Definition struct {
	Name      string  `yaml:"name"`
	Kind      Kind    `yaml:"kind"`
	Alphabet  string  `yaml:"alphabet,omitempty"`
	States    int     `yaml:"states,omitempty"`
	Accepting []int   `yaml:"accepting,omitempty"`
	Initial   int     `yaml:"initial,omitempty"`
	Output    string  `yaml:"output,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty"`
}

// Parse decodes and validates a definitions file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &File{}, nil
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	// #nosec G304 -- definition paths are provided by the operator via CLI
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(data)
}

// Default returns the demonstration machines F, Fn, M, M1, M2 and R.
func Default() *File {
	f, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded definitions: %v", err))
	}
	return f
}

// Validate checks every definition and that names are unique.
func (f *File) Validate() error {
	seen := make(map[string]bool, len(f.Automata))
	for i := range f.Automata {
		d := &f.Automata[i]
		if err := d.Validate(); err != nil {
			return fmt.Errorf("automata[%d]: %w", i, err)
		}
		if seen[d.Name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidDefinition, d.Name)
		}
		seen[d.Name] = true
	}
	return nil
}

// Lookup returns the definition called name.
func (f *File) Lookup(name string) (*Definition, error) {
	for i := range f.Automata {
		if f.Automata[i].Name == name {
			return &f.Automata[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAutomaton, name)
}

// Names lists the definitions in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Automata))
	for i, d := range f.Automata {
		names[i] = d.Name
	}
	return names
}

// Validate checks the fields this kind of definition needs. Range checks on states are left to
// automaton.New.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDefinition)
	}
	switch d.Kind {
	case KindAcceptor, KindNonDeterministic, KindTransducer:
		if d.Alphabet == "" {
			return fmt.Errorf("%w: %s: alphabet is required", ErrInvalidDefinition, d.Name)
		}
		if d.States <= 0 {
			return fmt.Errorf("%w: %s: states must be positive", ErrInvalidDefinition, d.Name)
		}
		if d.Threshold != 0 {
			return fmt.Errorf("%w: %s: threshold only applies to recognition", ErrInvalidDefinition, d.Name)
		}
		if d.Kind == KindTransducer && d.Output == "" {
			return fmt.Errorf("%w: %s: transducer needs an output alphabet", ErrInvalidDefinition, d.Name)
		}
		if d.Kind != KindTransducer && d.Output != "" {
			return fmt.Errorf("%w: %s: output only applies to transducers", ErrInvalidDefinition, d.Name)
		}
	case KindRecognition:
		if d.Threshold <= 0 {
			return fmt.Errorf("%w: %s: threshold must be positive", ErrInvalidDefinition, d.Name)
		}
		if d.Alphabet != "" || d.States != 0 || len(d.Accepting) != 0 || d.Output != "" {
			return fmt.Errorf("%w: %s: recognition takes a threshold only", ErrInvalidDefinition, d.Name)
		}
	default:
		return fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidDefinition, d.Name, d.Kind)
	}
	return nil
}

// Cyclic returns the machine configuration of a cyclic definition.
func (d *Definition) Cyclic() automaton.CyclicConfig {
	return automaton.CyclicConfig{
		Alphabet:  d.Alphabet,
		States:    d.States,
		Accepting: d.Accepting,
		Initial:   d.Initial,
		Output:    d.Output,
	}
}

// TwoLayer returns the layers of a recognition definition.
func (d *Definition) TwoLayer() automaton.TwoLayer {
	return automaton.DefaultTwoLayer(d.Threshold)
}
