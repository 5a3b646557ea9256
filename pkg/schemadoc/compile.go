package schemadoc

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Compile parses an emitted schema document and compiles it, verifying that
// the keywords the serializer produced form a loadable Draft-07 schema (the
// document's own "$schema" selects the draft). It is an emission sanity
// check; validating data against the result is out of scope.
func Compile(doc []byte) (*jsonschema.Schema, error) {
	var value any
	if err := json.Unmarshal(doc, &value); err != nil {
		return nil, fmt.Errorf("parsing schema document: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("inferred.json", value); err != nil {
		return nil, fmt.Errorf("loading schema document: %w", err)
	}

	compiled, err := compiler.Compile("inferred.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema document: %w", err)
	}
	return compiled, nil
}
