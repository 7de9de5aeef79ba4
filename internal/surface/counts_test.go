package surface

import "testing"

func TestCountFlatAndNestedAgree(t *testing.T) {
	// Same members, once flat and once deeply nested: the tally is a pure
	// sum, so nesting depth must not matter.
	flat := []*FileMap{{
		Path: "flat.cs",
		Members: []*Member{
			{Kind: KindNamespace, Signature: "A"},
			{Kind: KindClass, Signature: "C1"},
			{Kind: KindInterface, Signature: "I1"},
			{Kind: KindRecord, Signature: "R1"},
			{Kind: KindEnum, Signature: "E1 { }"},
			{Kind: KindMethod, Signature: "void M()"},
			{Kind: KindConstructor, Signature: "C1()"},
			{Kind: KindProperty, Signature: "int P"},
		},
	}}

	nested := []*FileMap{{
		Path: "nested.cs",
		Members: []*Member{
			{Kind: KindNamespace, Signature: "A", Children: []*Member{
				{Kind: KindClass, Signature: "C1", Children: []*Member{
					{Kind: KindConstructor, Signature: "C1()"},
					{Kind: KindMethod, Signature: "void M()"},
					{Kind: KindProperty, Signature: "int P"},
					{Kind: KindRecord, Signature: "R1", Children: []*Member{
						{Kind: KindEnum, Signature: "E1 { }"},
					}},
				}},
				{Kind: KindInterface, Signature: "I1"},
			}},
		},
	}}

	for name, files := range map[string][]*FileMap{"flat": flat, "nested": nested} {
		got := Count(files)
		if got.Namespaces != 1 {
			t.Errorf("%s: namespaces = %d, want 1", name, got.Namespaces)
		}
		if got.Types != 4 {
			t.Errorf("%s: types = %d, want 4", name, got.Types)
		}
		if got.Methods != 2 {
			t.Errorf("%s: methods = %d, want 2", name, got.Methods)
		}
		if got.Files != 1 {
			t.Errorf("%s: files = %d, want 1", name, got.Files)
		}
	}
}

func TestCountPropertiesNotTallied(t *testing.T) {
	files := []*FileMap{{
		Path: "p.cs",
		Members: []*Member{
			{Kind: KindProperty, Signature: "int A"},
			{Kind: KindProperty, Signature: "int B"},
		},
	}}
	got := Count(files)
	if got.Types != 0 || got.Methods != 0 || got.Namespaces != 0 {
		t.Errorf("properties must not count as namespaces, types, or methods: %+v", got)
	}
}

func TestMergeIsCommutative(t *testing.T) {
	a := Summary{Projects: 1, Files: 2, Namespaces: 3, Types: 4, Methods: 5}
	b := Summary{Projects: 2, Files: 1, Namespaces: 0, Types: 7, Methods: 1}

	ab, ba := a.Merge(b), b.Merge(a)
	if ab != ba {
		t.Errorf("merge not commutative: %+v vs %+v", ab, ba)
	}
	if ab.Types != 11 || ab.Files != 3 {
		t.Errorf("unexpected merge result: %+v", ab)
	}
}
