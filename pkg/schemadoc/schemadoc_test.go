package schemadoc

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/usestring/inferschema/pkg/infer"
	"github.com/usestring/inferschema/pkg/sample"
)

func inferValue(t *testing.T, src string) *infer.Fragment {
	t.Helper()
	v, err := sample.DecodeJSON([]byte(src))
	require.NoError(t, err)
	f, err := infer.Value(v)
	require.NoError(t, err)
	return f
}

func renderedDoc(t *testing.T, src string) map[string]any {
	t.Helper()
	doc, err := Document(inferValue(t, src))
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(doc, &parsed))
	return parsed
}

func TestDocumentScalars(t *testing.T) {
	tests := []struct {
		src      string
		expected map[string]any
	}{
		{`null`, map[string]any{"type": "null", "$schema": SchemaVersion}},
		{`1.35`, map[string]any{"type": "number", "$schema": SchemaVersion}},
		{`5`, map[string]any{"type": "integer", "$schema": SchemaVersion}},
		{`"Test"`, map[string]any{"type": "string", "$schema": SchemaVersion}},
		{`"1"`, map[string]any{"type": "string", "format": "integer", "$schema": SchemaVersion}},
	}
	for _, tt := range tests {
		got := renderedDoc(t, tt.src)
		if diff := cmp.Diff(tt.expected, got); diff != "" {
			t.Errorf("Document(%s) mismatch (-want +got):\n%s", tt.src, diff)
		}
	}
}

func TestDocumentObject(t *testing.T) {
	expected := map[string]any{
		"$schema": SchemaVersion,
		"type":    "object",
		"properties": map[string]any{
			"key1": map[string]any{"type": "boolean"},
			"key2": map[string]any{"type": "integer"},
		},
		"required": []any{"key1", "key2"},
	}
	got := renderedDoc(t, `{"key1": true, "key2": 1}`)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentMergedArray(t *testing.T) {
	expected := map[string]any{
		"$schema": SchemaVersion,
		"type":    "array",
		"items": map[string]any{
			"type":     "object",
			"required": []any{"a"},
			"properties": map[string]any{
				"a": map[string]any{
					"anyOf": []any{
						map[string]any{"type": "integer"},
						map[string]any{"type": "null"},
					},
				},
			},
		},
	}
	got := renderedDoc(t, `[{"a": 1}, {"a": null}, {"a": 2}]`)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentRequiredNarrowing(t *testing.T) {
	expected := map[string]any{
		"$schema": SchemaVersion,
		"type":    "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"a": map[string]any{"type": "integer"},
				"b": map[string]any{"type": "string"},
			},
		},
	}
	got := renderedDoc(t, `[{"a": 1}, {"b": "test"}]`)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentEmptyArray(t *testing.T) {
	expected := map[string]any{
		"$schema": SchemaVersion,
		"type":    "array",
	}
	got := renderedDoc(t, `[]`)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentUnionItems(t *testing.T) {
	expected := map[string]any{
		"$schema": SchemaVersion,
		"type":    "array",
		"items": map[string]any{
			"anyOf": []any{
				map[string]any{"type": "integer"},
				map[string]any{"type": "string"},
			},
		},
	}
	got := renderedDoc(t, `["test", "item", 1]`)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentIndentIsStable(t *testing.T) {
	frag := inferValue(t, `{"b": 1, "a": "x", "c": [1, null]}`)
	first, err := DocumentIndent(frag, "  ")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := DocumentIndent(frag, "  ")
		require.NoError(t, err)
		require.Equal(t, string(first), string(again))
	}
}

func TestCompileEmittedDocuments(t *testing.T) {
	sources := []string{
		`null`,
		`{"key": "2020-01-01"}`,
		`[{"a": 1}, {"a": null}, {"b": 2.5}]`,
		`[]`,
		`[1, "x", null, {"deep": [[true]]}]`,
	}
	for _, src := range sources {
		doc, err := Document(inferValue(t, src))
		require.NoError(t, err, src)
		_, err = Compile(doc)
		require.NoError(t, err, "emitted schema for %s must compile", src)
	}
}

func TestCompileRejectsGarbage(t *testing.T) {
	_, err := Compile([]byte(`{`))
	require.Error(t, err)

	_, err = Compile([]byte(`{"type": 12}`))
	require.Error(t, err)
}
