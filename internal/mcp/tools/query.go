package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// QuerySampleInput is the input for inferschema_query_sample.
type QuerySampleInput struct {
	Sample     string `json:"sample" jsonschema:"The payload to query"`
	Format     string `json:"format,omitempty" jsonschema:"Sample encoding: json (default) or yaml"`
	Expression string `json:"expression" jsonschema:"jq expression to run against the sample"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Max values to return (default 20)"`
}

// QuerySampleOutput is the result of inferschema_query_sample.
type QuerySampleOutput struct {
	Values []any    `json:"values"`
	Errors []string `json:"errors,omitempty"`
}

// ToolQuerySample runs a jq expression against a sample payload. Useful for
// picking the sub-document to pass back into infer_schema via select.
func ToolQuerySample(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input QuerySampleInput) (*sdkmcp.CallToolResult, QuerySampleOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input QuerySampleInput) (*sdkmcp.CallToolResult, QuerySampleOutput, error) {
		if input.Sample == "" {
			return nil, QuerySampleOutput{}, ErrInvalidInput("sample is required")
		}
		if input.Expression == "" {
			return nil, QuerySampleOutput{}, ErrInvalidInput("expression is required")
		}
		if len(input.Sample) > d.Config.MaxSampleBytes {
			return nil, QuerySampleOutput{}, ErrInvalidInput(fmt.Sprintf("sample exceeds %d bytes", d.Config.MaxSampleBytes))
		}

		format := strings.ToLower(input.Format)
		if format == "" {
			format = "json"
		}
		if format != "json" && format != "yaml" {
			return nil, QuerySampleOutput{}, ErrInvalidInput("format must be 'json' or 'yaml'")
		}

		maxResults := input.MaxResults
		if maxResults <= 0 {
			maxResults = 20
		}

		v, err := decodeSample([]byte(input.Sample), format)
		if err != nil {
			return nil, QuerySampleOutput{}, ErrParse(0, err)
		}

		result, err := d.Query.Select(v, input.Expression, maxResults)
		if err != nil {
			return nil, QuerySampleOutput{}, ErrInvalidInput(err.Error())
		}

		return nil, QuerySampleOutput{Values: result.Values, Errors: result.Errors}, nil
	}
}
