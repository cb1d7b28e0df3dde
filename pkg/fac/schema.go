// Package fac converts as400 CSV extracts into comma-delimited .fac tables.
package fac

import (
	"errors"
	"fmt"
)

// ColumnType is the declared type of a source column.
type ColumnType string

const (
	// TypeString keeps the value as text, leading zeros included.
	TypeString ColumnType = "str"
	// TypeInt64 is a nullable 64-bit integer.
	TypeInt64 ColumnType = "Int64"
)

// Column declares the type of one source column.
type Column struct {
	Name string     `yaml:"name"`
	Type ColumnType `yaml:"type"`
}

// Output maps a source column to its name in the .fac table.
type Output struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// Schema describes the typed source columns and the output selection.
// Columns not declared are read as text.
type Schema struct {
	Columns []Column `yaml:"columns"`
	Outputs []Output `yaml:"outputs"`
}

// DefaultSchema returns the premium holiday schema.
func DefaultSchema() Schema {
	return Schema{
		Columns: []Column{
			{Name: "CHDRNUM", Type: TypeString},
			{Name: "Historical no. of months", Type: TypeInt64},
			{Name: "Current PH Start Date", Type: TypeInt64},
			{Name: "Current PH End Date", Type: TypeInt64},
			{Name: "Lapse Start Date", Type: TypeInt64},
			{Name: "Lapse End Date", Type: TypeInt64},
		},
		Outputs: []Output{
			{Source: "CHDRNUM", Target: "POL_NUMBER"},
			{Source: "Historical no. of months", Target: "PAST_PH_M"},
			{Source: "Current PH Start Date", Target: "CUR_PH_START"},
			{Source: "Current PH End Date", Target: "CUR_PH_END"},
		},
	}
}

// DefaultSources returns the extract file names downloaded from as400.
func DefaultSources() []string {
	return []string{
		"premium-holiday.csv",
		"PH policy list MC.csv",
		"Reinstate.csv",
		"Reinstate MC.csv",
	}
}

// Validate checks column types and the output selection.
func (s Schema) Validate() error {
	seen := make(map[string]bool, len(s.Columns))
	for _, c := range s.Columns {
		if c.Name == "" {
			return errors.New("schema: column with empty name")
		}
		if c.Type != TypeString && c.Type != TypeInt64 {
			return fmt.Errorf("schema: column %q: invalid type %q (must be %s or %s)", c.Name, c.Type, TypeString, TypeInt64)
		}
		if seen[c.Name] {
			return fmt.Errorf("schema: column %q declared twice", c.Name)
		}
		seen[c.Name] = true
	}

	if len(s.Outputs) == 0 {
		return errors.New("schema: no output columns")
	}
	targets := make(map[string]bool, len(s.Outputs))
	for _, o := range s.Outputs {
		if o.Source == "" || o.Target == "" {
			return fmt.Errorf("schema: output %q -> %q has an empty name", o.Source, o.Target)
		}
		if targets[o.Target] {
			return fmt.Errorf("schema: output column %q declared twice", o.Target)
		}
		targets[o.Target] = true
	}
	return nil
}

func (s Schema) typeOf(name string) ColumnType {
	for _, c := range s.Columns {
		if c.Name == name {
			return c.Type
		}
	}
	return TypeString
}
