package extraction

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/javadecl/internal/syntax"
)

// Test Plan for Serialize/Encode:
// - nil and empty input serialize to "[]"
// - keys appear in the order kind, name, start_line, end_line, code, file_path
// - start_line/end_line are omitted together for an unresolved span, never null
// - record order is preserved
// - compact output is a single line
// - serialization is deterministic
// - Encode writes the array followed by one newline

func TestSerialize_Empty(t *testing.T) {
	t.Parallel()

	for _, pretty := range []bool{true, false} {
		out, err := Serialize(nil, Options{Pretty: pretty})
		require.NoError(t, err)
		assert.Equal(t, "[]", out)

		out, err = Serialize([]Record{}, Options{Pretty: pretty})
		require.NoError(t, err)
		assert.Equal(t, "[]", out)
	}
}

func TestSerialize_PrettyLayout(t *testing.T) {
	t.Parallel()

	records := []Record{
		{
			Kind:     KindClass,
			Name:     "C",
			Span:     syntax.NewSpan(1, 3),
			Code:     "class C {\n}",
			FilePath: "/tmp/C.java",
		},
	}

	out, err := Serialize(records, DefaultOptions())
	require.NoError(t, err)

	expected := `[
  {
    "kind": "class",
    "name": "C",
    "start_line": 1,
    "end_line": 3,
    "code": "class C {\n}",
    "file_path": "/tmp/C.java"
  }
]`
	assert.Equal(t, expected, out)
}

func TestSerialize_OmitsUnresolvedSpan(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Kind: KindPackage, Name: "p", Span: syntax.NoSpan(), Code: "package p;", FilePath: "/tmp/A.java"},
		{Kind: KindImport, Name: "q.R", Span: syntax.NewSpan(2, 2), Code: "import q.R;", FilePath: "/tmp/A.java"},
	}

	out, err := Serialize(records, Options{Pretty: false})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)

	assert.NotContains(t, decoded[0], "start_line")
	assert.NotContains(t, decoded[0], "end_line")
	assert.NotContains(t, out, "null")

	assert.Equal(t, float64(2), decoded[1]["start_line"])
	assert.Equal(t, float64(2), decoded[1]["end_line"])

	// Order is preserved
	assert.Equal(t, "package", decoded[0]["kind"])
	assert.Equal(t, "import", decoded[1]["kind"])
}

func TestSerialize_Compact(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Kind: KindMethod, Name: "run", Span: syntax.NewSpan(4, 6), Code: "void run() {\n}", FilePath: "/tmp/A.java"},
	}

	out, err := Serialize(records, Options{Pretty: false})
	require.NoError(t, err)

	assert.NotContains(t, out, "\n")
	assert.Equal(t, `[{"kind":"method","name":"run","start_line":4,"end_line":6,"code":"void run() {\n}","file_path":"/tmp/A.java"}]`, out)
}

func TestSerialize_Deterministic(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Kind: KindField, Name: "a", Span: syntax.NewSpan(1, 1), Code: "List<String> a, b;", FilePath: "/tmp/A.java"},
		{Kind: KindField, Name: "b", Span: syntax.NewSpan(1, 1), Code: "List<String> a, b;", FilePath: "/tmp/A.java"},
	}

	first, err := Serialize(records, DefaultOptions())
	require.NoError(t, err)
	second, err := Serialize(records, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Generic brackets round-trip intact
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(first), &decoded))
	assert.Equal(t, "List<String> a, b;", decoded[0]["code"])
}

func TestEncode_TrailingNewline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil, DefaultOptions()))
	assert.Equal(t, "[]\n", buf.String())
}
