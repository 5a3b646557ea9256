package infer

import "testing"

func TestFragmentEqual(t *testing.T) {
	intFrag := &Fragment{Kind: KindInteger}
	strFrag := &Fragment{Kind: KindString}
	dateFrag := &Fragment{Kind: KindString, Format: "date"}

	if !intFrag.Equal(&Fragment{Kind: KindInteger}) {
		t.Error("identical scalar fragments must compare equal")
	}
	if intFrag.Equal(strFrag) {
		t.Error("different kinds must not compare equal")
	}
	if strFrag.Equal(dateFrag) {
		t.Error("format participates in equality")
	}

	obj := &Fragment{
		Kind:       KindObject,
		Properties: []Property{{Name: "a", Schema: intFrag}},
		Required:   []string{"a"},
	}
	same := &Fragment{
		Kind:       KindObject,
		Properties: []Property{{Name: "a", Schema: &Fragment{Kind: KindInteger}}},
		Required:   []string{"a"},
	}
	if !obj.Equal(same) {
		t.Error("structural equality must not depend on pointer identity")
	}

	optional := &Fragment{
		Kind:       KindObject,
		Properties: []Property{{Name: "a", Schema: intFrag}},
	}
	if obj.Equal(optional) {
		t.Error("required participates in equality")
	}
}

func TestFragmentKeyDistinguishesShapes(t *testing.T) {
	frags := []*Fragment{
		{Kind: KindNull},
		{Kind: KindString},
		{Kind: KindString, Format: "date"},
		{Kind: KindArray},
		{Kind: KindArray, Items: &Fragment{Kind: KindNull}},
		{Kind: KindObject},
		{Kind: KindObject, Properties: []Property{{Name: "a", Schema: &Fragment{Kind: KindNull}}}, Required: []string{"a"}},
		{Kind: KindObject, Properties: []Property{{Name: "a", Schema: &Fragment{Kind: KindNull}}}},
		{Kind: KindUnion, Variants: []*Fragment{{Kind: KindNull}, {Kind: KindBoolean}}},
	}
	seen := make(map[string]int)
	for i, f := range frags {
		key := f.Key()
		if prev, dup := seen[key]; dup {
			t.Errorf("fragments %d and %d share key %q", prev, i, key)
		}
		seen[key] = i
	}
}

func TestFragmentKeyEscapesPropertyNames(t *testing.T) {
	tricky := &Fragment{
		Kind: KindObject,
		Properties: []Property{
			{Name: `a","b`, Schema: &Fragment{Kind: KindNull}},
		},
	}
	plain := &Fragment{
		Kind: KindObject,
		Properties: []Property{
			{Name: "a", Schema: &Fragment{Kind: KindNull}},
			{Name: "b", Schema: &Fragment{Kind: KindNull}},
		},
	}
	if tricky.Key() == plain.Key() {
		t.Error("quoting must keep property boundaries unambiguous")
	}
}

func TestNewUnionFlattensAndCollapses(t *testing.T) {
	intFrag := &Fragment{Kind: KindInteger}
	nullFrag := &Fragment{Kind: KindNull}
	inner := &Fragment{Kind: KindUnion, Variants: []*Fragment{intFrag, nullFrag}}

	u := newUnion([]*Fragment{inner, &Fragment{Kind: KindInteger}})
	if u.Kind != KindUnion {
		t.Fatalf("kind = %v, want union", u.Kind)
	}
	if len(u.Variants) != 2 {
		t.Fatalf("variants = %d, want 2 (flattened, deduplicated)", len(u.Variants))
	}
	for _, v := range u.Variants {
		if v.Kind == KindUnion {
			t.Error("unions must not nest")
		}
	}

	if got := newUnion([]*Fragment{intFrag, &Fragment{Kind: KindInteger}}); got.Kind != KindInteger {
		t.Errorf("singleton union must collapse, got %v", got.Kind)
	}
}

func TestDedupeOrderInsensitive(t *testing.T) {
	a := []*Fragment{{Kind: KindString}, {Kind: KindInteger}, {Kind: KindString}}
	b := []*Fragment{{Kind: KindInteger}, {Kind: KindString}, {Kind: KindInteger}}

	da, db := dedupe(a), dedupe(b)
	if len(da) != 2 || len(db) != 2 {
		t.Fatalf("dedupe lengths = %d, %d, want 2, 2", len(da), len(db))
	}
	for i := range da {
		if !da[i].Equal(db[i]) {
			t.Errorf("dedupe order differs at %d: %v vs %v", i, da[i].Kind, db[i].Kind)
		}
	}
}
