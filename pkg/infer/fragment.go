// Package infer derives JSON Schema (Draft-07 subset) fragments from sample
// JSON values. It maps each value to a minimal fragment, detects semantic
// string formats, and reconciles sibling fragments into the smallest schema
// that still accepts every observed shape.
package infer

import (
	"sort"
	"strconv"
	"strings"
)

// Kind is the closed discriminant of a Fragment.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindNumber
	KindString
	KindArray
	KindObject
	KindUnion
)

// String returns the JSON Schema "type" keyword value for the kind.
// KindUnion has no type keyword; it serializes as "anyOf".
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindUnion:
		return "union"
	}
	return "unknown"
}

// Fragment is an inferred schema for a value or a reconciled set of sibling
// values. Fragments are immutable once constructed; merging builds new ones.
type Fragment struct {
	Kind Kind

	// Format is set only on string fragments when a recognizer matched.
	Format string

	// Items is the single authoritative item schema of an array fragment.
	// Nil means the array was empty and items are unconstrained.
	Items *Fragment

	// Properties and Required are set only on object fragments, both ordered
	// by property name.
	Properties []Property
	Required   []string

	// Variants is the ordered, deduplicated alternative set of a union
	// fragment. It never contains a union and never has length 1.
	Variants []*Fragment
}

// Property is a named member schema of an object fragment.
type Property struct {
	Name   string
	Schema *Fragment
}

// Equal reports deep structural equality. Properties, Required, and Variants
// are compared by content; constructors keep them canonically ordered, so
// set-valued fields compare positionally.
func (f *Fragment) Equal(other *Fragment) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	if f.Kind != other.Kind || f.Format != other.Format {
		return false
	}
	if (f.Items == nil) != (other.Items == nil) {
		return false
	}
	if f.Items != nil && !f.Items.Equal(other.Items) {
		return false
	}
	if len(f.Properties) != len(other.Properties) ||
		len(f.Required) != len(other.Required) ||
		len(f.Variants) != len(other.Variants) {
		return false
	}
	for i, p := range f.Properties {
		q := other.Properties[i]
		if p.Name != q.Name || !p.Schema.Equal(q.Schema) {
			return false
		}
	}
	for i, name := range f.Required {
		if name != other.Required[i] {
			return false
		}
	}
	for i, v := range f.Variants {
		if !v.Equal(other.Variants[i]) {
			return false
		}
	}
	return true
}

// Key returns a canonical rendering of the fragment. Equal fragments have
// equal keys, so the key doubles as a dedup identity and as a deterministic
// sort order for union variants.
func (f *Fragment) Key() string {
	var b strings.Builder
	f.appendKey(&b)
	return b.String()
}

func (f *Fragment) appendKey(b *strings.Builder) {
	switch f.Kind {
	case KindString:
		b.WriteString("string")
		if f.Format != "" {
			b.WriteByte(':')
			b.WriteString(f.Format)
		}
	case KindArray:
		b.WriteString("array[")
		if f.Items != nil {
			f.Items.appendKey(b)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteString("object{")
		for i, p := range f.Properties {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(p.Name))
			b.WriteByte(':')
			p.Schema.appendKey(b)
		}
		b.WriteByte('}')
		if len(f.Required) > 0 {
			b.WriteString("!(")
			for i, name := range f.Required {
				if i > 0 {
					b.WriteByte(',')
				}
				b.WriteString(strconv.Quote(name))
			}
			b.WriteByte(')')
		}
	case KindUnion:
		b.WriteString("anyOf(")
		for i, v := range f.Variants {
			if i > 0 {
				b.WriteByte('|')
			}
			v.appendKey(b)
		}
		b.WriteByte(')')
	default:
		b.WriteString(f.Kind.String())
	}
}

// newUnion builds a union over variants, preserving their order. Nested
// unions are flattened one level, duplicates dropped by first occurrence,
// and a singleton collapses to its sole member.
func newUnion(variants []*Fragment) *Fragment {
	flat := make([]*Fragment, 0, len(variants))
	for _, v := range variants {
		flat = absorb(flat, v)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &Fragment{Kind: KindUnion, Variants: flat}
}

// absorb appends f to known unless an equal fragment is already present,
// splicing union variants in rather than nesting them.
func absorb(known []*Fragment, f *Fragment) []*Fragment {
	if f.Kind == KindUnion {
		for _, v := range f.Variants {
			known = absorb(known, v)
		}
		return known
	}
	for _, k := range known {
		if k.Equal(f) {
			return known
		}
	}
	return append(known, f)
}

// dedupe collapses structurally identical fragments and returns the distinct
// survivors ordered by canonical key, independent of input order.
func dedupe(frags []*Fragment) []*Fragment {
	distinct := make(map[string]*Fragment, len(frags))
	for _, f := range frags {
		distinct[f.Key()] = f
	}
	keys := make([]string, 0, len(distinct))
	for k := range distinct {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*Fragment, 0, len(keys))
	for _, k := range keys {
		out = append(out, distinct[k])
	}
	return out
}
