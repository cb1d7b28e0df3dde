package models

import (
	"errors"
	"fmt"
)

// ErrEmptyCode indicates a mapping pair with an empty original or new code.
var ErrEmptyCode = errors.New("empty plan code")

// ErrDuplicateCode indicates the same original code is mapped more than once.
var ErrDuplicateCode = errors.New("duplicate original plan code")

// Pair maps an original plan code to its replacement.
type Pair struct {
	// From is the original plan code.
	From string `json:"from" yaml:"from"`
	// To is the new plan code.
	To string `json:"to" yaml:"to"`
}

// Mapping is an ordered, validated set of code pairs.
type Mapping struct {
	pairs []Pair
	index map[string]string
}

// NewMapping validates pairs and builds a Mapping.
// Original codes must be unique and neither side may be empty.
func NewMapping(pairs []Pair) (*Mapping, error) {
	m := &Mapping{
		pairs: make([]Pair, 0, len(pairs)),
		index: make(map[string]string, len(pairs)),
	}
	for i, p := range pairs {
		if p.From == "" || p.To == "" {
			return nil, fmt.Errorf("pair %d (%q -> %q): %w", i+1, p.From, p.To, ErrEmptyCode)
		}
		if _, ok := m.index[p.From]; ok {
			return nil, fmt.Errorf("pair %d (%q): %w", i+1, p.From, ErrDuplicateCode)
		}
		m.index[p.From] = p.To
		m.pairs = append(m.pairs, p)
	}
	return m, nil
}

// Lookup returns the new code for an exact original code match.
func (m *Mapping) Lookup(code string) (string, bool) {
	to, ok := m.index[code]
	return to, ok
}

// Pairs returns a copy of the pairs in declared order.
func (m *Mapping) Pairs() []Pair {
	out := make([]Pair, len(m.pairs))
	copy(out, m.pairs)
	return out
}

// Len returns the number of pairs.
func (m *Mapping) Len() int {
	return len(m.pairs)
}
