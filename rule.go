package automaton

import "fmt"

type RuleKind int

const (
	KindDeterministic RuleKind = iota + 1
	KindNonDeterministic
)

func (k RuleKind) String() string {
	switch k {
	case KindDeterministic:
		return "deterministic"
	case KindNonDeterministic:
		return "non-deterministic"
	default:
		return fmt.Sprintf("RuleKind(%d)", int(k))
	}
}

// Rule A single-symbol transition rule, either d: S×Q → Q or dn: S×Q → 2^Q. The zero Rule is
// unset and rejected by New.
type Rule[S, Q comparable] struct {
	kind   RuleKind
	next   func(s S, q Q) Q
	branch func(s S, q Q) []Q
}

// DeterministicRule Wraps d: S×Q → Q.
func DeterministicRule[S, Q comparable](d func(s S, q Q) Q) Rule[S, Q] {
	return Rule[S, Q]{kind: KindDeterministic, next: d}
}

// NonDeterministicRule Wraps dn: S×Q → 2^Q. The returned slice may repeat states.
func NonDeterministicRule[S, Q comparable](dn func(s S, q Q) []Q) Rule[S, Q] {
	return Rule[S, Q]{kind: KindNonDeterministic, branch: dn}
}

func (r Rule[S, Q]) Kind() RuleKind {
	return r.kind
}

func (r Rule[S, Q]) IsDeterministic() bool {
	return r.kind == KindDeterministic
}

func (r Rule[S, Q]) isSet() bool {
	return (r.kind == KindDeterministic && r.next != nil) ||
		(r.kind == KindNonDeterministic && r.branch != nil)
}

// successors views a deterministic rule as one returning singletons.
func (r Rule[S, Q]) successors(s S, q Q) []Q {
	if r.kind == KindDeterministic {
		return []Q{r.next(s, q)}
	}
	return r.branch(s, q)
}

// CyclicRule d(s, q) = Q[(value(s) + index(q)) mod |Q|]. With value the symbol's own index this
// is the action of the cyclic group of order |Q| on the state set.
func CyclicRule[S, Q comparable](value func(S) int, states *Finite[Q]) Rule[S, Q] {
	return DeterministicRule(func(s S, q Q) Q {
		i, _ := states.Index(q)
		return states.At(mod(value(s)+i, states.Len()))
	})
}

// PrefixRule dn(s, q) = the first (value(s) + index(q)) mod |Q| + 1 states of Q.
func PrefixRule[S, Q comparable](value func(S) int, states *Finite[Q]) Rule[S, Q] {
	return NonDeterministicRule(func(s S, q Q) []Q {
		i, _ := states.Index(q)
		n := mod(value(s)+i, states.Len()) + 1
		return states.values[:n:n]
	})
}

// SymbolValue Numeric value of a rune for index arithmetic: its position in alphabet, or its
// offset from the first symbol when it is not a member. For "01234567" that is the digit value.
func SymbolValue(alphabet *Finite[rune]) func(rune) int {
	return func(r rune) int {
		if i, ok := alphabet.Index(r); ok {
			return i
		}
		if alphabet.Len() == 0 {
			return int(r)
		}
		return int(r - alphabet.At(0))
	}
}
