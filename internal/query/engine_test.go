package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/inferschema/pkg/sample"
)

func decode(t *testing.T, src string) any {
	t.Helper()
	v, err := sample.DecodeJSON([]byte(src))
	require.NoError(t, err)
	return v
}

func TestSelectField(t *testing.T) {
	e := NewEngine()
	result, err := e.Select(decode(t, `{"a": {"b": 5}}`), ".a.b", 0)
	require.NoError(t, err)
	require.Len(t, result.Values, 1)
	assert.Equal(t, 5, result.Values[0])
	assert.Empty(t, result.Errors)
}

func TestSelectIterates(t *testing.T) {
	e := NewEngine()
	result, err := e.Select(decode(t, `{"items": [1, 2, 3]}`), ".items[]", 0)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, result.Values)
}

func TestSelectKeepsNulls(t *testing.T) {
	e := NewEngine()
	result, err := e.Select(decode(t, `[{"a": 1}, {"a": null}]`), ".[].a", 0)
	require.NoError(t, err)
	require.Len(t, result.Values, 2)
	assert.Equal(t, 1, result.Values[0])
	assert.Nil(t, result.Values[1])
}

func TestSelectNumberEncodingSurvives(t *testing.T) {
	e := NewEngine()
	result, err := e.Select(decode(t, `{"i": 1, "f": 1.0}`), ".i, .f", 0)
	require.NoError(t, err)
	require.Len(t, result.Values, 2)
	assert.Equal(t, 1, result.Values[0])
	assert.Equal(t, 1.0, result.Values[1])
}

func TestSelectBigIntegers(t *testing.T) {
	e := NewEngine()
	result, err := e.Select(decode(t, `{"n": 12345678901234567890}`), ".n", 0)
	require.NoError(t, err)
	require.Len(t, result.Values, 1)
	assert.Equal(t, json.Number("12345678901234567890"), result.Values[0])
}

func TestSelectMaxResults(t *testing.T) {
	e := NewEngine()
	result, err := e.Select(decode(t, `[1, 2, 3, 4, 5]`), ".[]", 2)
	require.NoError(t, err)
	assert.Len(t, result.Values, 2)
}

func TestSelectItemErrors(t *testing.T) {
	e := NewEngine()
	result, err := e.Select(decode(t, `5`), ".a", 0)
	require.NoError(t, err)
	assert.Empty(t, result.Values)
	assert.Len(t, result.Errors, 1)
}

func TestSelectBadExpression(t *testing.T) {
	e := NewEngine()
	_, err := e.Select(decode(t, `{}`), ".[unclosed", 0)
	assert.Error(t, err)
}
