package manifest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// HeaderLine is the comment placed above a generated manifest.
func HeaderLine(source string) string {
	return fmt.Sprintf("# Auto-generated from `%s`\n", source)
}

// Marshal renders t as a TOML document. When source is non-empty the
// document starts with HeaderLine(source).
func Marshal(t Table, source string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t, source); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes t as a TOML document to w.
func Encode(w io.Writer, t Table, source string) error {
	if source != "" {
		if _, err := io.WriteString(w, HeaderLine(source)); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := toml.NewEncoder(w).Encode(t.native()); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}

// native is Table.Native with arrays made entirely of tables typed as
// []map[string]any so the encoder emits them as [[array]] sections.
func (v Table) native() map[string]any {
	out := make(map[string]any, len(v))
	for k, item := range v {
		out[k] = nativeOf(item)
	}
	return out
}

func nativeOf(v Value) any {
	switch x := v.(type) {
	case Table:
		return x.native()
	case Array:
		if tables, ok := tableArray(x); ok {
			return tables
		}
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = nativeOf(item)
		}
		return out
	default:
		return v.Native()
	}
}

func tableArray(a Array) ([]map[string]any, bool) {
	if len(a) == 0 {
		return nil, false
	}
	out := make([]map[string]any, 0, len(a))
	for _, item := range a {
		t, ok := item.(Table)
		if !ok {
			return nil, false
		}
		out = append(out, t.native())
	}
	return out, true
}
