package infer

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// tryMerge consolidates a deduplicated set of sibling fragments into a single
// object fragment. It applies only when every sibling is object-kind; any
// other kind in the set makes the siblings unmergeable and the caller falls
// back to a union. Under that precondition merging always succeeds.
//
// The merged required set is the intersection of the siblings' required sets;
// an empty intersection means no property is guaranteed and required is
// omitted. Each property maps to the single fragment observed for it, or to a
// union of the distinct fragments in first-occurrence order when siblings
// disagree.
func tryMerge(frags []*Fragment) (*Fragment, bool) {
	if len(frags) == 0 {
		return nil, false
	}
	for _, f := range frags {
		if f.Kind != KindObject {
			return nil, false
		}
	}

	// Property names are interned to dense IDs so the per-sibling required
	// sets intersect as bitmaps.
	ids := make(map[string]uint32)
	var names []string
	intern := func(name string) uint32 {
		if id, ok := ids[name]; ok {
			return id
		}
		id := uint32(len(names))
		ids[name] = id
		names = append(names, name)
		return id
	}

	variants := make(map[string][]*Fragment)
	requiredSets := make([]*roaring.Bitmap, 0, len(frags))
	for _, f := range frags {
		set := roaring.New()
		for _, name := range f.Required {
			set.Add(intern(name))
		}
		requiredSets = append(requiredSets, set)

		// A property absent from a sibling contributes nothing to its
		// variant set; absence only narrows required.
		for _, p := range f.Properties {
			intern(p.Name)
			variants[p.Name] = absorb(variants[p.Name], p.Schema)
		}
	}

	common := roaring.FastAnd(requiredSets...)
	var required []string
	common.Iterate(func(id uint32) bool {
		required = append(required, names[id])
		return true
	})
	sort.Strings(required)

	propNames := make([]string, 0, len(variants))
	for name := range variants {
		propNames = append(propNames, name)
	}
	sort.Strings(propNames)

	props := make([]Property, 0, len(propNames))
	for _, name := range propNames {
		vs := variants[name]
		schema := vs[0]
		if len(vs) > 1 {
			schema = newUnion(vs)
		}
		props = append(props, Property{Name: name, Schema: schema})
	}

	return &Fragment{Kind: KindObject, Properties: props, Required: required}, true
}
