package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMapping(t *testing.T) {
	m, err := NewMapping([]Pair{{From: "CGG01A", To: "CGK01A"}, {From: "CGG01M", To: "CGK01M"}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())

	to, ok := m.Lookup("CGG01M")
	assert.True(t, ok)
	assert.Equal(t, "CGK01M", to)

	_, ok = m.Lookup("CGK01M")
	assert.False(t, ok)

	assert.Equal(t, []Pair{{From: "CGG01A", To: "CGK01A"}, {From: "CGG01M", To: "CGK01M"}}, m.Pairs())
}

func TestNewMappingRejects(t *testing.T) {
	_, err := NewMapping([]Pair{{From: "A", To: "B"}, {From: "A", To: "C"}})
	assert.ErrorIs(t, err, ErrDuplicateCode)

	_, err = NewMapping([]Pair{{From: "", To: "B"}})
	assert.ErrorIs(t, err, ErrEmptyCode)

	_, err = NewMapping([]Pair{{From: "A", To: ""}})
	assert.ErrorIs(t, err, ErrEmptyCode)
}

func TestRowClone(t *testing.T) {
	r := Row{R: 3, Cells: []Cell{Text("a"), Number(int64(1))}}
	c := r.Clone()
	c.Cells[0] = Text("b")
	assert.Equal(t, "a", r.Cells[0].String())
	assert.Equal(t, 3, c.R)
}
