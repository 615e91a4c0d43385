package automaton

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOctalTransducer(t *testing.T, output string, opts ...Option) *Transducer[rune, int, rune] {
	t.Helper()
	tr, err := MakeTransducer(Octal(output), opts...)
	require.NoError(t, err)
	return tr
}

func TestTransducerTransduce(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"RejectedIsEmpty", "01234567", "123", ""},
		{"Accepted", "01234567", "345", "0543"},
		{"SmallOutputAlphabet", "012", "345", "0210"},
		{"RejectedSmallOutputAlphabet", "012", "234", ""},
		{"UnknownSymbolStillEmits", "01234567", "3x45", "05403"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newOctalTransducer(t, tt.output)
			assert.Equalf(t, tt.want, string(tr.Transduce([]rune(tt.input))), "Transduce(%q)", tt.input)
			assert.Equal(t, Single(0), tr.Machine().Current())
		})
	}
}

func TestTransducerIsRepeatable(t *testing.T) {
	tr := newOctalTransducer(t, "01234567")
	for i := 0; i < 3; i++ {
		assert.Equal(t, "0543", string(tr.Transduce([]rune("345"))))
		assert.Nil(t, tr.Transduce([]rune("123")))
	}
}

func TestTransducerStartsFromCurrentState(t *testing.T) {
	tr := newOctalTransducer(t, "01234567")
	tr.Machine().SetCurrent(7)

	// from 7, "345" ends in 3; output is still computed from q0
	assert.Equal(t, "0543", string(tr.Transduce([]rune("345"))))
	assert.Equal(t, Single(0), tr.Machine().Current())

	// from 2 it ends in 6
	tr.Machine().SetCurrent(2)
	assert.Nil(t, tr.Transduce([]rune("345")))
	assert.Equal(t, Single(0), tr.Machine().Current())
}

func TestTransducerEmit(t *testing.T) {
	t.Run("BeforeReset", func(t *testing.T) {
		for _, tt := range []struct {
			output string
			want   string
		}{
			{"01234567", "4107"},
			{"012", "1021"},
		} {
			tr := newOctalTransducer(t, tt.output)
			assert.Equal(t, 4, tr.Acceptor().Run([]rune("345")))
			assert.Equal(t, tt.want, string(tr.Emit([]rune("345"))))
		}
	})

	t.Run("EmptyEchoesState", func(t *testing.T) {
		tr := newOctalTransducer(t, "01234567")
		tr.Machine().SetCurrent(5)
		assert.Equal(t, "5", string(tr.Emit(nil)))

		tr = newOctalTransducer(t, "012")
		tr.Machine().SetCurrent(5)
		assert.Equal(t, "2", string(tr.Emit(nil)))
	})

	t.Run("LeavesStateAlone", func(t *testing.T) {
		tr := newOctalTransducer(t, "01234567")
		tr.Machine().SetCurrent(1)
		assert.Equal(t, "01", string(newOctalTransducer(t, "01234567").Emit([]rune("1"))))
		assert.Equal(t, "121", string(tr.Emit([]rune("01"))))
		assert.Equal(t, Single(1), tr.Machine().Current())
	})

	t.Run("HealsStateOutsideStateSet", func(t *testing.T) {
		c := Octal("01234567")
		c.Initial = 2
		rec := &recorder{}
		tr, err := MakeTransducer(c, WithObserver(rec))
		require.NoError(t, err)

		tr.Machine().SetCurrent(42)
		assert.Equal(t, "25", string(tr.Emit([]rune("3"))))
		assert.Equal(t, Single(2), tr.Machine().Current())
		assert.Equal(t, 1, rec.healed)
	})
}

func TestTransducerObserver(t *testing.T) {
	rec := &recorder{}
	tr := newOctalTransducer(t, "01234567", WithObserver(rec))

	tr.Transduce([]rune("345"))
	tr.Transduce([]rune("123"))
	assert.Equal(t, []string{"transducer:true", "transducer:false"}, rec.evaluations)
	assert.Equal(t, 2, rec.resets)
}

func TestNewTransducerErrors(t *testing.T) {
	t.Run("NonDeterministic", func(t *testing.T) {
		m, err := MakeNonDeterministic(Octal(""))
		require.NoError(t, err)
		_, err = NewTransducer(m, CyclicOutput(SymbolValue(Runes("01234567")), Range(8), Runes("01")))
		assert.True(t, errors.Is(err, ErrNotDeterministic))
	})

	t.Run("MissingEcho", func(t *testing.T) {
		_, err := NewTransducer(newOctal(t), OutputRule[rune, int, rune]{
			Emit: func(rune, int) rune { return '0' },
		})
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("MissingOutputAlphabet", func(t *testing.T) {
		_, err := MakeTransducer(Octal(""))
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})
}

func TestFeed(t *testing.T) {
	t.Run("BothAtInitialState", func(t *testing.T) {
		m1 := newOctalTransducer(t, "01234567")
		m2 := newOctalTransducer(t, "01234567")

		rounds := Feed(10, nil, m1, m2)
		require.Len(t, rounds, 10)
		for i, out := range rounds {
			assert.Equal(t, strings.Repeat("0", 2*(i+1)), string(out), "round %d", i+1)
		}
	})

	t.Run("StatesShowInOutput", func(t *testing.T) {
		m1 := newOctalTransducer(t, "01234567")
		m2 := newOctalTransducer(t, "01234567")
		m1.Machine().SetCurrent(1)

		rounds := Feed(2, nil, m1, m2)
		assert.Equal(t, "01", string(rounds[0]))
		assert.Equal(t, "0121", string(rounds[1]))
	})

	t.Run("SelfObservation", func(t *testing.T) {
		m1 := newOctalTransducer(t, "01234567")
		m1.Machine().SetCurrent(1)

		rounds := Feed(3, nil, m1)
		assert.Equal(t, []string{"1", "12", "132"}, []string{
			string(rounds[0]), string(rounds[1]), string(rounds[2]),
		})
	})

	t.Run("NoRounds", func(t *testing.T) {
		assert.Empty(t, Feed(0, []rune("1"), newOctalTransducer(t, "01")))
	})
}
