// Package template holds the value model of a Cargo.yaml template and the
// adapter that builds it from a YAML document.
package template

import (
	"errors"
	"fmt"
)

// Source-side failure classes. Conversion errors wrap one of these.
var (
	// ErrMalformed marks input that is not a well-formed tree: a YAML syntax
	// error, a scalar that does not resolve, or a duplicated mapping key.
	ErrMalformed = errors.New("malformed input")

	// ErrUnsupported marks a YAML construct that has no TOML equivalent.
	ErrUnsupported = errors.New("unsupported construct")
)

// Node is one value of the source tree.
type Node interface {
	// Variant names the node kind for diagnostics ("mapping", "alias", ...).
	Variant() string

	node()
}

// ScalarKind is the resolved type of a scalar.
type ScalarKind int

const (
	String ScalarKind = iota
	Integer
	Float
	Boolean
)

func (k ScalarKind) String() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Boolean:
		return "boolean"
	default:
		return fmt.Sprintf("ScalarKind(%d)", int(k))
	}
}

// Scalar is a leaf value. Text is the scalar as written; Int and Bool hold
// the resolved value for Integer and Boolean scalars. Floats stay textual
// and are parsed by the consumer.
type Scalar struct {
	Kind ScalarKind
	Text string
	Int  int64
	Bool bool
}

// Sequence is an ordered list.
type Sequence struct {
	Items []Node
}

// Pair is one mapping entry.
type Pair struct {
	Key   Node
	Value Node
}

// Mapping keeps entries in document order.
type Mapping struct {
	Pairs []Pair
}

// Null is an explicit or implied empty value.
type Null struct{}

// Alias is a `*name` reference to an anchored node.
type Alias struct {
	Name string
}

// Merge is the `<<` merge key.
type Merge struct{}

// Malformed is a node the parser could not resolve.
type Malformed struct {
	Reason string
}

func (Scalar) Variant() string    { return "scalar" }
func (Sequence) Variant() string  { return "sequence" }
func (Mapping) Variant() string   { return "mapping" }
func (Null) Variant() string      { return "null" }
func (Alias) Variant() string     { return "alias" }
func (Merge) Variant() string     { return "merge key" }
func (Malformed) Variant() string { return "malformed" }

func (Scalar) node()    {}
func (Sequence) node()  {}
func (Mapping) node()   {}
func (Null) node()      {}
func (Alias) node()     {}
func (Merge) node()     {}
func (Malformed) node() {}

// Str is shorthand for a string scalar.
func Str(s string) Scalar { return Scalar{Kind: String, Text: s} }

// Int is shorthand for an integer scalar.
func Int(i int64) Scalar { return Scalar{Kind: Integer, Text: fmt.Sprint(i), Int: i} }

// FloatText is shorthand for a float scalar written as text.
func FloatText(text string) Scalar { return Scalar{Kind: Float, Text: text} }

// Bool is shorthand for a boolean scalar.
func Bool(b bool) Scalar { return Scalar{Kind: Boolean, Text: fmt.Sprint(b), Bool: b} }
