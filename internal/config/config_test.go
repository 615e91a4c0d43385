package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/newcomb/automaton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	f := Default()
	assert.Equal(t, []string{"F", "Fn", "M", "M1", "M2", "R"}, f.Names())

	fn, err := f.Lookup("Fn")
	require.NoError(t, err)
	assert.Equal(t, KindNonDeterministic, fn.Kind)
	assert.Equal(t, []int{3, 4, 5}, fn.Accepting)

	m, err := f.Lookup("M")
	require.NoError(t, err)
	assert.Equal(t, automaton.CyclicConfig{
		Alphabet:  "01234567",
		States:    8,
		Accepting: []int{2, 3, 4, 5},
		Output:    "012",
	}, m.Cyclic())

	r, err := f.Lookup("R")
	require.NoError(t, err)
	assert.Equal(t, 4.0, r.Threshold)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup("nope")
	assert.True(t, errors.Is(err, ErrUnknownAutomaton))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		ok      bool
		count   int
	}{
		{
			name: "Empty",
			yaml: "",
			ok:   true,
		},
		{
			name: "Acceptor",
			yaml: `
automata:
  - name: A
    kind: acceptor
    alphabet: "ab"
    states: 3
    accepting: [2]
    initial: 1
`,
			ok:    true,
			count: 1,
		},
		{
			name: "UnknownField",
			yaml: `
automata:
  - name: A
    kind: acceptor
    alphabet: "ab"
    states: 3
    colour: red
`,
		},
		{
			name:    "UnknownKind",
			yaml:    "automata:\n  - {name: A, kind: pushdown, alphabet: ab, states: 2}\n",
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "MissingName",
			yaml:    "automata:\n  - {kind: acceptor, alphabet: ab, states: 2}\n",
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "NoStates",
			yaml:    "automata:\n  - {name: A, kind: acceptor, alphabet: ab}\n",
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "TransducerWithoutOutput",
			yaml:    "automata:\n  - {name: A, kind: transducer, alphabet: ab, states: 2}\n",
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "OutputOnAcceptor",
			yaml:    "automata:\n  - {name: A, kind: acceptor, alphabet: ab, states: 2, output: xy}\n",
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "RecognitionWithStates",
			yaml:    "automata:\n  - {name: R, kind: recognition, threshold: 1, states: 2}\n",
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "RecognitionWithoutThreshold",
			yaml:    "automata:\n  - {name: R, kind: recognition}\n",
			wantErr: ErrInvalidDefinition,
		},
		{
			name: "DuplicateNames",
			yaml: `
automata:
  - {name: A, kind: acceptor, alphabet: ab, states: 2}
  - {name: A, kind: recognition, threshold: 2}
`,
			wantErr: ErrInvalidDefinition,
		},
		{
			name: "TrailingDocument",
			yaml: "automata: []\n---\nautomata: []\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			if tt.ok {
				require.NoError(t, err)
				assert.Len(t, f.Automata, tt.count)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "automata.yaml")
	require.NoError(t, os.WriteFile(path, []byte("automata:\n  - {name: R2, kind: recognition, threshold: 2.5}\n"), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	r, err := f.Lookup("R2")
	require.NoError(t, err)
	assert.Equal(t, 2.5, r.Threshold)
	l := r.TwoLayer()
	assert.True(t, l.Recognized(automaton.Pair{Recognition: 3}))
	assert.False(t, l.Recognized(automaton.Pair{Recognition: 2.5}))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefinitionsBuildMachines(t *testing.T) {
	for _, d := range Default().Automata {
		t.Run(d.Name, func(t *testing.T) {
			var err error
			switch d.Kind {
			case KindAcceptor:
				_, err = automaton.MakeAcceptor(d.Cyclic())
			case KindNonDeterministic:
				_, err = automaton.MakeNonDeterministic(d.Cyclic())
			case KindTransducer:
				_, err = automaton.MakeTransducer(d.Cyclic())
			case KindRecognition:
				_, err = automaton.MakeRecognitionAbstraction(d.TwoLayer())
			}
			assert.NoError(t, err)
		})
	}
}
