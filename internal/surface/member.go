// Package surface extracts the public API surface of C# source files.
//
// The surface of a file is a forest of Members: the namespaces, types, and
// callable/property declarations that are visible to consumers of the code
// (public, internal, or unmarked). Private and protected declarations are
// excluded together with everything nested inside them. The result is a
// deliberately restricted view sized for bounded consumption budgets, for
// example an AI agent that needs a whole-project overview in a few thousand
// tokens.
package surface

// Kind identifies the declaration form of a Member.
type Kind string

const (
	// KindNamespace covers both block-scoped and file-scoped namespaces.
	KindNamespace Kind = "Namespace"
	// KindClass is a class declaration.
	KindClass Kind = "Class"
	// KindInterface is an interface declaration.
	KindInterface Kind = "Interface"
	// KindRecord is a record declaration.
	KindRecord Kind = "Record"
	// KindEnum is an enum declaration.
	KindEnum Kind = "Enum"
	// KindConstructor is an instance or static constructor.
	KindConstructor Kind = "Constructor"
	// KindMethod is a method declaration.
	KindMethod Kind = "Method"
	// KindProperty is a property declaration.
	KindProperty Kind = "Property"
)

// IsType reports whether the kind is a type declaration
// (class, interface, record, or enum).
func (k Kind) IsType() bool {
	switch k {
	case KindClass, KindInterface, KindRecord, KindEnum:
		return true
	}
	return false
}

// IsCallable reports whether the kind counts as a method
// (method or constructor).
func (k Kind) IsCallable() bool {
	return k == KindMethod || k == KindConstructor
}

// HasChildren reports whether the kind structurally permits nested
// declarations. Enums, methods, properties, and constructors are always
// leaves: enum members live in the signature text, and declarations inside
// method bodies never appear in the map.
func (k Kind) HasChildren() bool {
	switch k {
	case KindNamespace, KindClass, KindInterface, KindRecord:
		return true
	}
	return false
}

// Member is one node of the declaration tree. A Member owns its children;
// the forest is strictly tree-shaped and never mutated after construction.
type Member struct {
	Kind      Kind   `json:"kind"`
	Signature string `json:"signature"`
	// Line is the 1-based source line of the declaration.
	Line uint32 `json:"line,omitempty"`
	// Static is set for static methods, constructors, and properties.
	Static bool `json:"static,omitempty"`
	// Doc is the one-sentence documentation summary, when present.
	Doc string `json:"doc,omitempty"`
	// BaseTypes lists base class and implemented interfaces in declaration
	// order. Populated for classes and interfaces only.
	BaseTypes []string `json:"baseTypes,omitempty"`
	// Attributes lists attribute usages in declaration order.
	Attributes []string `json:"attributes,omitempty"`
	// Children are the declarations lexically nested in this one.
	Children []*Member `json:"members,omitempty"`
}

// FileMap is the per-file root holding the top-level Members of one source
// file in declaration order. Files whose traversal yields no members are
// never represented as a FileMap.
type FileMap struct {
	// Path is the file path relative to the project root.
	Path    string    `json:"path"`
	Members []*Member `json:"members"`
}

// Summary holds the aggregate counters for a set of file maps.
type Summary struct {
	Projects   int `json:"projects,omitempty"`
	Files      int `json:"files"`
	Namespaces int `json:"namespaces"`
	Types      int `json:"types"`
	Methods    int `json:"methods"`
}
