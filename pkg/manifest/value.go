// Package manifest holds the value model of a Cargo.toml manifest and its
// TOML printer.
package manifest

import "sort"

// Value is one node of the manifest tree. The set of implementations is
// closed: String, Integer, Float, Boolean, Array and Table.
type Value interface {
	// Native returns the value as plain Go data for the TOML encoder.
	Native() any

	value()
}

type (
	String  string
	Integer int64
	Float   float64
	Boolean bool
	Array   []Value
	Table   map[string]Value
)

func (v String) Native() any  { return string(v) }
func (v Integer) Native() any { return int64(v) }
func (v Float) Native() any   { return float64(v) }
func (v Boolean) Native() any { return bool(v) }

func (v Array) Native() any { return nativeOf(v) }
func (v Table) Native() any { return v.native() }

func (String) value()  {}
func (Integer) value() {}
func (Float) value()   {}
func (Boolean) value() {}
func (Array) value()   {}
func (Table) value()   {}

// Keys returns the table keys in sorted order.
func (v Table) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
