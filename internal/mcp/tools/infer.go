package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/inferschema/internal/cache"
	"github.com/usestring/inferschema/pkg/infer"
	"github.com/usestring/inferschema/pkg/sample"
	"github.com/usestring/inferschema/pkg/schemadoc"
)

// InferSchemaInput is the input for inferschema_infer_schema.
type InferSchemaInput struct {
	Samples      []string `json:"samples" jsonschema:"Sample payloads to infer a schema from. Multiple samples are reconciled into one schema."`
	Format       string   `json:"format,omitempty" jsonschema:"Sample encoding: json (default) or yaml"`
	DetectFormat *bool    `json:"detect_format,omitempty" jsonschema:"Detect string formats (integer, date, date-time). Default: server setting, normally true."`
	Select       string   `json:"select,omitempty" jsonschema:"Optional jq expression; inference runs over the values it selects instead of the whole samples"`
}

// InferSchemaOutput is the result of inferschema_infer_schema.
type InferSchemaOutput struct {
	Schema      json.RawMessage `json:"schema"`       // JSON Schema (Draft-07)
	SampleCount int             `json:"sample_count"` // samples decoded
	Hint        string          `json:"hint,omitempty"`
}

// ToolInferSchema infers a Draft-07 JSON Schema from one or more samples.
// Identical concurrent requests share a single inference run, and results
// are cached by a digest of the samples and options.
func ToolInferSchema(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferSchemaInput) (*sdkmcp.CallToolResult, InferSchemaOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferSchemaInput) (*sdkmcp.CallToolResult, InferSchemaOutput, error) {
		if len(input.Samples) == 0 {
			return nil, InferSchemaOutput{}, ErrInvalidInput("at least one sample is required")
		}
		if len(input.Samples) > d.Config.MaxSamples {
			return nil, InferSchemaOutput{}, ErrInvalidInput(fmt.Sprintf("too many samples: %d (max %d)", len(input.Samples), d.Config.MaxSamples))
		}
		for i, s := range input.Samples {
			if len(s) > d.Config.MaxSampleBytes {
				return nil, InferSchemaOutput{}, ErrInvalidInput(fmt.Sprintf("sample %d exceeds %d bytes", i, d.Config.MaxSampleBytes))
			}
		}

		format := strings.ToLower(input.Format)
		if format == "" {
			format = "json"
		}
		if format != "json" && format != "yaml" {
			return nil, InferSchemaOutput{}, ErrInvalidInput("format must be 'json' or 'yaml'")
		}

		detect := d.Config.DetectFormat
		if input.DetectFormat != nil {
			detect = *input.DetectFormat
		}

		keyParts := make([]string, 0, len(input.Samples)+3)
		keyParts = append(keyParts, format, strconv.FormatBool(detect), input.Select)
		keyParts = append(keyParts, input.Samples...)
		key := cache.Key(keyParts...)

		doc, err, _ := d.inferGroup.Do(key, func() (any, error) {
			if cached, ok := d.Cache.Get(key); ok {
				return cached, nil
			}

			values := make([]any, 0, len(input.Samples))
			for i, s := range input.Samples {
				v, err := decodeSample([]byte(s), format)
				if err != nil {
					return nil, ErrParse(i, err)
				}
				if input.Select == "" {
					values = append(values, v)
					continue
				}
				selected, err := d.Query.Select(v, input.Select, 0)
				if err != nil {
					return nil, ErrInvalidInput(err.Error())
				}
				values = append(values, selected.Values...)
			}
			if len(values) == 0 {
				return nil, ErrInvalidInput("selection produced no values to infer from")
			}

			opts := &infer.Options{
				DetectFormat:      detect,
				ParallelThreshold: d.Config.ParallelThreshold,
			}
			frag, err := infer.Samples(opts, values...)
			if err != nil {
				return nil, ErrInfer(err)
			}
			rendered, err := schemadoc.Document(frag)
			if err != nil {
				return nil, ErrInfer(err)
			}
			d.Cache.Put(key, rendered)
			return rendered, nil
		})
		if err != nil {
			return nil, InferSchemaOutput{}, err
		}

		output := InferSchemaOutput{
			Schema:      json.RawMessage(doc.([]byte)),
			SampleCount: len(input.Samples),
			Hint:        "Use inferschema_query_sample(sample=..., expression=...) to inspect the values behind any part of this schema.",
		}
		return nil, output, nil
	}
}

func decodeSample(data []byte, format string) (any, error) {
	if format == "yaml" {
		return sample.DecodeYAML(data)
	}
	return sample.DecodeJSON(data)
}
