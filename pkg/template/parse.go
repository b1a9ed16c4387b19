package template

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes the first YAML document in data. Later documents in the
// same stream are ignored. An empty stream yields Null.
func Parse(data []byte) (Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Null{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return FromYAML(&doc), nil
}

// FromYAML converts a yaml.v3 node tree. It never fails: nodes that cannot
// be resolved become Malformed and are rejected later by the mapper.
func FromYAML(n *yaml.Node) Node {
	if n == nil {
		return Null{}
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null{}
		}
		return FromYAML(n.Content[0])
	case yaml.AliasNode:
		return Alias{Name: n.Value}
	case yaml.SequenceNode:
		if isLocalTag(n) {
			return Malformed{Reason: fmt.Sprintf("line %d: unknown tag %s", n.Line, n.Tag)}
		}
		items := make([]Node, 0, len(n.Content))
		for _, c := range n.Content {
			items = append(items, FromYAML(c))
		}
		return Sequence{Items: items}
	case yaml.MappingNode:
		if isLocalTag(n) {
			return Malformed{Reason: fmt.Sprintf("line %d: unknown tag %s", n.Line, n.Tag)}
		}
		if len(n.Content)%2 != 0 {
			return Malformed{Reason: fmt.Sprintf("line %d: mapping has a key without a value", n.Line)}
		}
		pairs := make([]Pair, 0, len(n.Content)/2)
		for i := 0; i < len(n.Content); i += 2 {
			pairs = append(pairs, Pair{
				Key:   FromYAML(n.Content[i]),
				Value: FromYAML(n.Content[i+1]),
			})
		}
		return Mapping{Pairs: pairs}
	case yaml.ScalarNode:
		return scalar(n)
	default:
		return Malformed{Reason: fmt.Sprintf("line %d: unknown node kind %d", n.Line, n.Kind)}
	}
}

func scalar(n *yaml.Node) Node {
	tag := n.ShortTag()
	switch tag {
	case "!!null":
		return Null{}
	case "!!str", "!!timestamp", "!!binary":
		// TOML has no binary type and local date-times are left to the user
		// to quote, so both travel as their textual form.
		return Str(n.Value)
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return Malformed{Reason: fmt.Sprintf("line %d: integer %q does not fit in 64 bits", n.Line, n.Value)}
		}
		return Scalar{Kind: Integer, Text: n.Value, Int: i}
	case "!!float":
		// yaml.v3 resolves plain integers wider than uint64 as floats.
		if n.Style == 0 && integerShaped(n.Value) {
			return Malformed{Reason: fmt.Sprintf("line %d: integer %q does not fit in 64 bits", n.Line, n.Value)}
		}
		return FloatText(n.Value)
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Malformed{Reason: fmt.Sprintf("line %d: invalid boolean %q", n.Line, n.Value)}
		}
		return Scalar{Kind: Boolean, Text: n.Value, Bool: b}
	case "!!merge":
		return Merge{}
	default:
		return Malformed{Reason: fmt.Sprintf("line %d: unknown tag %s on %q", n.Line, tag, n.Value)}
	}
}

// isLocalTag reports whether a collection carries an application tag such
// as `!custom` that nothing downstream can interpret.
func isLocalTag(n *yaml.Node) bool {
	tag := n.ShortTag()
	return strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!")
}

// integerShaped reports whether s is an optionally signed run of decimal
// digits and underscores.
func integerShaped(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}
