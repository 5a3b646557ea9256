// Package query applies jq expressions to decoded samples, selecting the
// sub-values that inference should run over.
package query

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/itchyny/gojq"
)

// Engine executes jq expressions against decoded sample values.
type Engine struct{}

// NewEngine creates a new query engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Result contains the values a jq expression produced.
type Result struct {
	Values []any    `json:"values"`           // selected values, in emission order
	Errors []string `json:"errors,omitempty"` // per-item errors (e.g. type mismatch)
}

// Select runs expression against input and collects up to maxResults values.
// Null outputs are kept: a null is an observed shape, not an absence.
// maxResults <= 0 means unlimited.
func (e *Engine) Select(input any, expression string, maxResults int) (*Result, error) {
	q, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	result := &Result{}
	iter := code.Run(forJQ(input))
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if itemErr, isErr := v.(error); isErr {
			result.Errors = append(result.Errors, itemErr.Error())
			continue
		}
		result.Values = append(result.Values, fromJQ(v))
		if maxResults > 0 && len(result.Values) >= maxResults {
			break
		}
	}
	return result, nil
}

// forJQ rewrites json.Number leaves into the numeric types gojq accepts,
// keeping the integer/float split the literal encoded.
func forJQ(v any) any {
	switch val := v.(type) {
	case json.Number:
		if strings.ContainsAny(val.String(), ".eE") {
			if f, err := val.Float64(); err == nil {
				return f
			}
		}
		if i, err := val.Int64(); err == nil {
			return int(i)
		}
		if b, ok := new(big.Int).SetString(val.String(), 10); ok {
			return b
		}
		f, _ := val.Float64()
		return f
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = forJQ(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = forJQ(e)
		}
		return out
	default:
		return v
	}
}

// fromJQ maps gojq output values back onto the inference value model.
// gojq widens large integers to *big.Int, which re-enters as an integer
// literal.
func fromJQ(v any) any {
	switch val := v.(type) {
	case *big.Int:
		return json.Number(val.String())
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = fromJQ(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = fromJQ(e)
		}
		return out
	default:
		return v
	}
}
