package graph_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/newcomb/automaton"
	"github.com/newcomb/automaton/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMermaidGolden(t *testing.T) {
	m, err := automaton.MakeAcceptor(automaton.CyclicConfig{Alphabet: "01", States: 3, Accepting: []int{2}})
	require.NoError(t, err)
	m.Step('1')

	table, err := m.Table()
	require.NoError(t, err)

	want := strings.Join([]string{
		"graph LR",
		"    start(( )) --> q0",
		`    q0(("0"))`,
		`    q1(("1"))`,
		`    q2((("2")))`,
		`    q0 -- "0" --> q0`,
		`    q0 -- "1" --> q1`,
		`    q1 -- "0" --> q1`,
		`    q1 -- "1" --> q2`,
		`    q2 -- "1" --> q0`,
		`    q2 -- "0" --> q2`,
		"",
		"    %% Overlay Styles",
		"    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;",
		"    classDef unreachable fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:3,color:#9e9e9e;",
		"    class q1 current;",
		"",
	}, "\n")

	got := graph.GenerateMermaid(table, &graph.GraphOverlay{Current: true, Unreachable: true})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GenerateMermaid() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		table    *automaton.TransitionTable
		overlay  *graph.GraphOverlay
		contains []string
		excludes []string
	}{
		{
			name: "NonDeterministicEdgesAreDotted",
			table: &automaton.TransitionTable{
				States:      []string{"0", "1"},
				Accepting:   []bool{false, true},
				Reachable:   []bool{true, true},
				Current:     []int{0, 1},
				Transitions: []automaton.Transition{{Source: 0, Dest: 1, Labels: []string{"a", "b"}}},
			},
			overlay:  &graph.GraphOverlay{Current: true},
			contains: []string{`q0 -. "a,b" .-> q1`, "class q0 current;", "class q1 current;"},
		},
		{
			name: "UnreachableStates",
			table: &automaton.TransitionTable{
				States:        []string{"0", "1", "2"},
				Accepting:     []bool{false, false, false},
				Reachable:     []bool{true, false, true},
				Deterministic: true,
			},
			overlay:  &graph.GraphOverlay{Unreachable: true},
			contains: []string{"class q1 unreachable;"},
			excludes: []string{"class q0 unreachable;", "current;"},
		},
		{
			name: "NoOverlay",
			table: &automaton.TransitionTable{
				States:        []string{`"x"`},
				Accepting:     []bool{true},
				Reachable:     []bool{true},
				Current:       []int{0},
				Deterministic: true,
			},
			contains: []string{`q0((("'x'")))`},
			excludes: []string{"Overlay", "classDef"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.table, tt.overlay)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, got, s)
			}
		})
	}
}
