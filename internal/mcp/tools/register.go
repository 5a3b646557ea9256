package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "inferschema_infer_schema",
		Description: "Infer a JSON Schema (Draft-07) from one or more sample payloads. Multiple samples are reconciled: identical shapes collapse, object shapes merge with required narrowed to the common keys, and conflicting shapes become anyOf. Pass select to infer a schema for a jq-selected sub-document.",
	}, ToolInferSchema(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "inferschema_query_sample",
		Description: "Run a jq expression against a sample payload and return the selected values. Use it to find the sub-document to pass to infer_schema's select.",
	}, ToolQuerySample(d))
}
