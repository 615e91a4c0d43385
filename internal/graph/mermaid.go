package graph

import (
	"fmt"
	"strings"

	"github.com/newcomb/automaton"
)

// GraphOverlay selects the dynamic state shown on top of the transition graph.
type GraphOverlay struct {
	Current     bool // highlight the current state or states
	Unreachable bool // grey out states not reachable from the initial state
}

// GenerateMermaid produces a Mermaid flowchart from a transition table.
// Shapes:
// - State: ((Circle))
// - Accepting state: (((Double circle)))
// - The initial state is entered from a start marker.
// Edges from a non-deterministic rule are dotted; labels list every symbol of the edge.
func GenerateMermaid(table *automaton.TransitionTable, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	sb.WriteString(fmt.Sprintf("    start(( )) --> %s\n", stateID(table.Initial)))

	for i, name := range table.States {
		opener, closer := "((", "))"
		if table.Accepting[i] {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", stateID(i), opener, escape(name), closer))
	}

	for _, t := range table.Transitions {
		label := escape(strings.Join(t.Labels, ","))
		arrow := fmt.Sprintf("-- \"%s\" -->", label)
		if !table.Deterministic {
			arrow = fmt.Sprintf("-. \"%s\" .->", label)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", stateID(t.Source), arrow, stateID(t.Dest)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef unreachable fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:3,color:#9e9e9e;\n")

		if overlay.Unreachable {
			for i, reachable := range table.Reachable {
				if !reachable {
					sb.WriteString(fmt.Sprintf("    class %s unreachable;\n", stateID(i)))
				}
			}
		}
		if overlay.Current {
			for _, i := range table.Current {
				sb.WriteString(fmt.Sprintf("    class %s current;\n", stateID(i)))
			}
		}
	}

	return sb.String()
}

func stateID(i int) string {
	return fmt.Sprintf("q%d", i)
}

// escape replaces double quotes, which would end a Mermaid label.
func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
