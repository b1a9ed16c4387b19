// Package mapper converts a Cargo.yaml template tree into a Cargo.toml
// manifest tree.
package mapper

import (
	"fmt"
	"strconv"

	"github.com/dkoosis/cargo-yaml/internal/diag"
	"github.com/dkoosis/cargo-yaml/pkg/manifest"
	"github.com/dkoosis/cargo-yaml/pkg/template"
)

// Re-exported so callers can classify conversion failures without importing
// the template package.
var (
	ErrMalformed   = template.ErrMalformed
	ErrUnsupported = template.ErrUnsupported
)

// Mapper converts template nodes. The sink only observes; a Mapper built
// with diag.Nop() returns exactly the same results.
type Mapper struct {
	sink diag.Sink
}

// New returns a Mapper reporting each visited node to sink at trace level.
func New(sink diag.Sink) *Mapper {
	if sink == nil {
		sink = diag.Nop()
	}
	return &Mapper{sink: sink}
}

// Convert maps a template node to a manifest value using a silent Mapper.
func Convert(n template.Node) (manifest.Value, error) {
	return New(nil).Convert(n)
}

// Convert maps n and everything below it. Null becomes an empty table;
// aliases, merge keys, non-string keys and malformed nodes are errors.
func (m *Mapper) Convert(n template.Node) (manifest.Value, error) {
	return m.convert(n, "")
}

// ConvertDocument converts a whole template. A manifest is a table, so the
// root must be a mapping or null.
func (m *Mapper) ConvertDocument(n template.Node) (manifest.Table, error) {
	v, err := m.Convert(n)
	if err != nil {
		return nil, err
	}
	t, ok := v.(manifest.Table)
	if !ok {
		return nil, fmt.Errorf("%w: document root is a %s, expected a mapping", ErrUnsupported, n.Variant())
	}
	return t, nil
}

func (m *Mapper) convert(n template.Node, path string) (manifest.Value, error) {
	if n == nil {
		return nil, fmt.Errorf("%s: %w: missing node", displayPath(path), ErrMalformed)
	}
	diag.Emitf(m.sink, diag.Trace, "%s: %s", displayPath(path), n.Variant())

	switch v := n.(type) {
	case template.Scalar:
		return m.scalar(v, path)
	case template.Sequence:
		out := make(manifest.Array, 0, len(v.Items))
		for i, item := range v.Items {
			conv, err := m.convert(item, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			out = append(out, conv)
		}
		return out, nil
	case template.Mapping:
		return m.mapping(v, path)
	case template.Null:
		return manifest.Table{}, nil
	case template.Alias:
		return nil, fmt.Errorf("%s: %w: alias *%s has no TOML equivalent", displayPath(path), ErrUnsupported, v.Name)
	case template.Merge:
		return nil, fmt.Errorf("%s: %w: merge key << has no TOML equivalent", displayPath(path), ErrUnsupported)
	case template.Malformed:
		return nil, fmt.Errorf("%s: %w: %s", displayPath(path), ErrMalformed, v.Reason)
	default:
		return nil, fmt.Errorf("%s: %w: unknown node type %T", displayPath(path), ErrMalformed, n)
	}
}

func (m *Mapper) scalar(s template.Scalar, path string) (manifest.Value, error) {
	switch s.Kind {
	case template.String:
		return manifest.String(s.Text), nil
	case template.Integer:
		return manifest.Integer(s.Int), nil
	case template.Float:
		f, err := ParseFloat(s.Text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: float %v", displayPath(path), ErrMalformed, err)
		}
		return manifest.Float(f), nil
	case template.Boolean:
		return manifest.Boolean(s.Bool), nil
	default:
		return nil, fmt.Errorf("%s: %w: unknown scalar kind %v", displayPath(path), ErrMalformed, s.Kind)
	}
}

func (m *Mapper) mapping(mp template.Mapping, path string) (manifest.Value, error) {
	out := make(manifest.Table, len(mp.Pairs))
	for _, p := range mp.Pairs {
		key, err := plainKey(p.Key, path)
		if err != nil {
			return nil, err
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("%s: %w: duplicate key %q", displayPath(path), ErrMalformed, key)
		}
		v, err := m.convert(p.Value, joinKey(path, key))
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// plainKey enforces that mapping keys are string scalars. Numbers, booleans
// and collections are rejected rather than stringified.
func plainKey(k template.Node, path string) (string, error) {
	switch key := k.(type) {
	case template.Scalar:
		if key.Kind == template.String {
			return key.Text, nil
		}
		return "", fmt.Errorf("%s: %w: mapping key %q is a %s, expected a string", displayPath(path), ErrUnsupported, key.Text, key.Kind)
	case template.Malformed:
		return "", fmt.Errorf("%s: %w: mapping key: %s", displayPath(path), ErrMalformed, key.Reason)
	case nil:
		return "", fmt.Errorf("%s: %w: missing mapping key", displayPath(path), ErrMalformed)
	default:
		return "", fmt.Errorf("%s: %w: mapping key is a %s, expected a string", displayPath(path), ErrUnsupported, key.Variant())
	}
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func displayPath(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}
