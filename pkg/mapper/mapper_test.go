package mapper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/cargo-yaml/internal/diag"
	"github.com/dkoosis/cargo-yaml/pkg/manifest"
	"github.com/dkoosis/cargo-yaml/pkg/template"
)

func pairs(kv ...any) template.Mapping {
	var m template.Mapping
	for i := 0; i < len(kv); i += 2 {
		m.Pairs = append(m.Pairs, template.Pair{Key: template.Str(kv[i].(string)), Value: kv[i+1].(template.Node)})
	}
	return m
}

func TestConvert_CopiesScalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   template.Node
		want manifest.Value
	}{
		{"String", template.Str("héllo \"world\""), manifest.String("héllo \"world\"")},
		{"EmptyString", template.Str(""), manifest.String("")},
		{"True", template.Bool(true), manifest.Boolean(true)},
		{"False", template.Bool(false), manifest.Boolean(false)},
		{"Float", template.FloatText("3.14"), manifest.Float(3.14)},
		{"FloatExponent", template.FloatText("1e3"), manifest.Float(1000)},
		{"FloatBareFraction", template.FloatText(".5"), manifest.Float(0.5)},
		{"FloatBarePoint", template.FloatText("2."), manifest.Float(2)},
		{"FloatUnderscores", template.FloatText("1_000.5"), manifest.Float(1000.5)},
		{"FloatWholeNumber", template.FloatText("3"), manifest.Float(3)},
		{"FloatSignedZero", template.FloatText("-0"), manifest.Float(0)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Convert(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConvert_PreservesInt64Range(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{math.MinInt64, math.MinInt64 + 1, -1, 0, 1, 1 << 53, math.MaxInt64} {
		got, err := Convert(template.Int(n))
		require.NoError(t, err)
		assert.Equal(t, manifest.Integer(n), got)
	}
}

func TestConvert_ParsesSpecialFloats(t *testing.T) {
	t.Parallel()

	for _, text := range []string{".inf", "+.Inf", "inf"} {
		got, err := Convert(template.FloatText(text))
		require.NoError(t, err, text)
		assert.True(t, math.IsInf(float64(got.(manifest.Float)), 1), text)
	}

	got, err := Convert(template.FloatText("-.INF"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(got.(manifest.Float)), -1))

	got, err = Convert(template.FloatText(".NaN"))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(got.(manifest.Float))))
}

func TestConvert_RejectsNonNumericFloatText(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"abc", "", ".", "1.2.3", "true", "1\nx = 2", "0x1p-2", "Infinity", "1 # c", "0o17", "0b1", "0xff", "-0o17", "0B1"} {
		_, err := Convert(template.FloatText(text))
		require.Error(t, err, "%q should not convert", text)
		assert.ErrorIs(t, err, ErrMalformed, text)
	}
}

func TestConvert_MapsNullToEmptyTable(t *testing.T) {
	t.Parallel()

	got, err := Convert(template.Null{})
	require.NoError(t, err)
	assert.Equal(t, manifest.Table{}, got)

	got, err = Convert(pairs("dependencies", template.Null{}, "list", template.Sequence{Items: []template.Node{template.Null{}}}))
	require.NoError(t, err)
	assert.Equal(t, manifest.Table{
		"dependencies": manifest.Table{},
		"list":         manifest.Array{manifest.Table{}},
	}, got)
}

func TestConvert_MapsNestedStructure(t *testing.T) {
	t.Parallel()

	in := pairs(
		"package", pairs(
			"name", template.Str("demo"),
			"authors", template.Sequence{Items: []template.Node{template.Str("alice"), template.Str("bob")}},
		),
		"bin", template.Sequence{Items: []template.Node{
			pairs("name", template.Str("demo"), "doc", template.Bool(false)),
		}},
		"profile", pairs("release", pairs("opt-level", template.Int(3))),
	)

	got, err := Convert(in)
	require.NoError(t, err)
	assert.Equal(t, manifest.Table{
		"package": manifest.Table{
			"name":    manifest.String("demo"),
			"authors": manifest.Array{manifest.String("alice"), manifest.String("bob")},
		},
		"bin":     manifest.Array{manifest.Table{"name": manifest.String("demo"), "doc": manifest.Boolean(false)}},
		"profile": manifest.Table{"release": manifest.Table{"opt-level": manifest.Integer(3)}},
	}, got)
}

func TestConvert_KeepsSequenceOrder(t *testing.T) {
	t.Parallel()

	got, err := Convert(template.Sequence{Items: []template.Node{template.Int(3), template.Int(1), template.Int(2)}})
	require.NoError(t, err)
	assert.Equal(t, manifest.Array{manifest.Integer(3), manifest.Integer(1), manifest.Integer(2)}, got)
}

func TestConvert_RejectsAliasAtAnyDepth(t *testing.T) {
	t.Parallel()

	alias := template.Alias{Name: "base"}
	tests := []struct {
		name string
		in   template.Node
		path string
	}{
		{"Root", alias, "<root>"},
		{"MappingValue", pairs("copy", alias), "copy"},
		{"SequenceItem", template.Sequence{Items: []template.Node{template.Int(1), alias}}, "[1]"},
		{"Deep", pairs("a", pairs("b", template.Sequence{Items: []template.Node{pairs("c", alias)}})), "a.b[0].c"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Convert(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupported)
			assert.Contains(t, err.Error(), tc.path)
			assert.Contains(t, err.Error(), "*base")
		})
	}
}

func TestConvert_RejectsMergeKey(t *testing.T) {
	t.Parallel()

	in := template.Mapping{Pairs: []template.Pair{{Key: template.Merge{}, Value: pairs("a", template.Int(1))}}}
	_, err := Convert(in)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestConvert_RejectsMalformedNodes(t *testing.T) {
	t.Parallel()

	_, err := Convert(template.Malformed{Reason: "bad scalar"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "bad scalar")

	_, err = Convert(pairs("deep", template.Sequence{Items: []template.Node{template.Malformed{Reason: "x"}}}))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestConvert_RejectsNonStringKeys(t *testing.T) {
	t.Parallel()

	keys := []template.Node{
		template.Int(1),
		template.Bool(true),
		template.FloatText("1.5"),
		template.Null{},
		template.Sequence{Items: []template.Node{template.Str("a")}},
		pairs("k", template.Str("v")),
	}
	for _, k := range keys {
		in := template.Mapping{Pairs: []template.Pair{{Key: k, Value: template.Str("v")}}}
		_, err := Convert(in)
		require.Error(t, err, "key %#v", k)
		assert.ErrorIs(t, err, ErrUnsupported, "key %#v", k)
	}
}

func TestConvert_RejectsDuplicateKeys(t *testing.T) {
	t.Parallel()

	_, err := Convert(pairs("name", template.Str("a"), "name", template.Str("b")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), `"name"`)
}

func TestConvert_RejectsNilNode(t *testing.T) {
	t.Parallel()

	_, err := Convert(nil)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestConvertDocument_RequiresTableRoot(t *testing.T) {
	t.Parallel()

	m := New(diag.Nop())

	got, err := m.ConvertDocument(template.Null{})
	require.NoError(t, err)
	assert.Equal(t, manifest.Table{}, got)

	_, err = m.ConvertDocument(template.Sequence{})
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = m.ConvertDocument(template.Str("just text"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestMapper_TracesEachNodeWithoutChangingResult(t *testing.T) {
	t.Parallel()

	in := pairs("package", pairs("name", template.Str("demo")), "list", template.Sequence{Items: []template.Node{template.Int(1)}})

	var rec diag.Recorder
	traced, err := New(&rec).Convert(in)
	require.NoError(t, err)

	silent, err := New(diag.Nop()).Convert(in)
	require.NoError(t, err)

	assert.Equal(t, silent, traced)
	assert.Equal(t, []string{
		"<root>: mapping",
		"package: mapping",
		"package.name: scalar",
		"list: sequence",
		"list[0]: scalar",
	}, rec.Messages(diag.Trace))
}

func TestConvert_FromParsedTemplate(t *testing.T) {
	t.Parallel()

	src := "" +
		"package:\n" +
		"  name: demo\n" +
		"  version: \"0.1.0\"\n" +
		"  edition: \"2021\"\n" +
		"dependencies:\n" +
		"  serde: { version: \"1.0\", features: [derive] }\n" +
		"dev-dependencies:\n" +
		"profile:\n" +
		"  release:\n" +
		"    opt-level: 3\n" +
		"    debug: false\n" +
		"    ratio: 0.25\n"

	node, err := template.Parse([]byte(src))
	require.NoError(t, err)

	got, err := New(diag.Nop()).ConvertDocument(node)
	require.NoError(t, err)

	assert.Equal(t, manifest.Table{
		"package": manifest.Table{
			"name":    manifest.String("demo"),
			"version": manifest.String("0.1.0"),
			"edition": manifest.String("2021"),
		},
		"dependencies": manifest.Table{
			"serde": manifest.Table{
				"version":  manifest.String("1.0"),
				"features": manifest.Array{manifest.String("derive")},
			},
		},
		"dev-dependencies": manifest.Table{},
		"profile": manifest.Table{"release": manifest.Table{
			"opt-level": manifest.Integer(3),
			"debug":     manifest.Boolean(false),
			"ratio":     manifest.Float(0.25),
		}},
	}, got)
}

func TestConvert_RejectsDuplicateKeysFromParsedTemplate(t *testing.T) {
	t.Parallel()

	node, err := template.Parse([]byte("name: a\nname: b\n"))
	if err == nil {
		_, err = Convert(node)
	}
	assert.ErrorIs(t, err, ErrMalformed)
}
