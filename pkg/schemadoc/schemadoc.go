// Package schemadoc renders inferred fragments as JSON Schema documents.
// It is a thin keyword mapping over pkg/infer: kind becomes "type", format
// becomes "format", unions become "anyOf", and the top level is decorated
// with the fixed Draft-07 "$schema" identifier.
package schemadoc

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/usestring/inferschema/pkg/infer"
)

// SchemaVersion is the "$schema" value attached to every emitted document.
const SchemaVersion = "http://json-schema.org/draft-07/schema#"

// ToSchema converts a fragment into a schema node without the top-level
// "$schema" decoration, so nested fragments convert with the same code path.
func ToSchema(f *infer.Fragment) *jsonschema.Schema {
	switch f.Kind {
	case infer.KindUnion:
		anyOf := make([]*jsonschema.Schema, 0, len(f.Variants))
		for _, v := range f.Variants {
			anyOf = append(anyOf, ToSchema(v))
		}
		return &jsonschema.Schema{AnyOf: anyOf}

	case infer.KindArray:
		s := &jsonschema.Schema{Type: "array"}
		if f.Items != nil {
			s.Items = ToSchema(f.Items)
		}
		return s

	case infer.KindObject:
		s := &jsonschema.Schema{Type: "object"}
		if len(f.Properties) > 0 {
			s.Properties = jsonschema.NewProperties()
			for _, p := range f.Properties {
				s.Properties.Set(p.Name, ToSchema(p.Schema))
			}
		}
		if len(f.Required) > 0 {
			s.Required = f.Required
		}
		return s

	case infer.KindString:
		return &jsonschema.Schema{Type: "string", Format: f.Format}

	default:
		return &jsonschema.Schema{Type: f.Kind.String()}
	}
}

// Document renders the fragment as a standalone schema document with the
// "$schema" annotation attached. The fragment tree is converted once; no
// re-traversal happens for the decoration.
func Document(f *infer.Fragment) ([]byte, error) {
	s := ToSchema(f)
	s.Version = SchemaVersion
	return json.Marshal(s)
}

// DocumentIndent is Document with indented output for human consumption.
func DocumentIndent(f *infer.Fragment, indent string) ([]byte, error) {
	s := ToSchema(f)
	s.Version = SchemaVersion
	return json.MarshalIndent(s, "", indent)
}
