package surface

import (
	"github.com/apimap/apimap/internal/parser"
	sitter "github.com/smacker/go-tree-sitter"
)

// Walker builds the Member forest for one parsed file. It performs a single
// pre-order, source-order traversal, consulting the visibility filter before
// constructing each Member and never descending into an excluded declaration
// or a leaf kind.
type Walker struct {
	result *parser.ParseResult
}

// NewWalker creates a walker for the given parse result.
func NewWalker(result *parser.ParseResult) *Walker {
	return &Walker{result: result}
}

// FileMap traverses the file and returns its surface map, or nil when the
// traversal yields no top-level members. Empty files never produce a FileMap.
func (w *Walker) FileMap(relPath string) *FileMap {
	members := w.topLevel(w.result.Root)
	if len(members) == 0 {
		return nil
	}
	return &FileMap{Path: relPath, Members: members}
}

// topLevel walks the compilation unit. A file-scoped namespace declaration
// claims every declaration that follows it in the file, so the remaining
// top-level siblings are folded into it regardless of how the grammar nests
// them.
func (w *Walker) topLevel(root *sitter.Node) []*Member {
	var members []*Member
	for i := uint32(0); i < root.ChildCount(); i++ {
		child := root.Child(int(i))
		if child.Type() == "file_scoped_namespace_declaration" {
			ns := w.namespaceMember(child)
			for j := i + 1; j < root.ChildCount(); j++ {
				if m := w.member(root.Child(int(j))); m != nil {
					ns.Children = append(ns.Children, m)
				}
			}
			return append(members, ns)
		}
		if m := w.member(child); m != nil {
			members = append(members, m)
		}
	}
	return members
}

// member dispatches on the declaration form and constructs the Member
// subtree for it, or returns nil for excluded or unmapped declarations.
func (w *Walker) member(node *sitter.Node) *Member {
	switch node.Type() {
	case "namespace_declaration", "file_scoped_namespace_declaration":
		return w.namespaceMember(node)
	case "class_declaration":
		return w.typeMember(node, KindClass)
	case "interface_declaration":
		return w.typeMember(node, KindInterface)
	case "record_declaration":
		return w.typeMember(node, KindRecord)
	case "enum_declaration":
		return w.enumMember(node)
	case "constructor_declaration":
		return w.leafMember(node, KindConstructor, w.constructorSignature(node))
	case "method_declaration":
		return w.leafMember(node, KindMethod, w.methodSignature(node))
	case "property_declaration":
		return w.leafMember(node, KindProperty, w.propertySignature(node))
	}
	return nil
}

// walkScope walks the children of a declaration body in source order.
func (w *Walker) walkScope(body *sitter.Node) []*Member {
	var members []*Member
	for i := uint32(0); i < body.ChildCount(); i++ {
		if m := w.member(body.Child(int(i))); m != nil {
			members = append(members, m)
		}
	}
	return members
}

// namespaceMember normalizes both namespace forms to one shape: the dotted
// name as signature and the declaration line. Namespaces carry no
// accessibility modifiers and are always included.
func (w *Walker) namespaceMember(node *sitter.Node) *Member {
	m := &Member{
		Kind:      KindNamespace,
		Signature: w.namespaceSignature(node),
		Line:      declarationLine(node),
		Doc:       w.docSummary(node),
	}

	if body := findChildByType(node, "declaration_list"); body != nil {
		m.Children = w.walkScope(body)
	} else {
		// File-scoped form: nested declarations are direct children.
		m.Children = w.walkScope(node)
	}
	return m
}

// typeMember builds a class, interface, or record Member and recurses into
// its body.
func (w *Walker) typeMember(node *sitter.Node, kind Kind) *Member {
	mods := w.modifiers(node)
	if !Included(mods) {
		return nil
	}

	var sig string
	if kind == KindRecord {
		sig = w.recordSignature(node)
	} else {
		sig = w.identifierSignature(node)
	}

	m := &Member{
		Kind:       kind,
		Signature:  sig,
		Line:       declarationLine(node),
		Static:     hasModifier(mods, "static"),
		Doc:        w.docSummary(node),
		Attributes: w.attributes(node),
	}

	if kind == KindClass || kind == KindInterface {
		m.BaseTypes = w.baseTypes(node)
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		body = findChildByType(node, "declaration_list")
	}
	if body != nil {
		m.Children = w.walkScope(body)
	}
	return m
}

// enumMember builds an enum Member. Enums are always leaves: the member
// identifiers are embedded in the signature, never emitted as children.
func (w *Walker) enumMember(node *sitter.Node) *Member {
	mods := w.modifiers(node)
	if !Included(mods) {
		return nil
	}

	return &Member{
		Kind:       KindEnum,
		Signature:  w.enumSignature(node),
		Line:       declarationLine(node),
		Static:     hasModifier(mods, "static"),
		Doc:        w.docSummary(node),
		Attributes: w.attributes(node),
	}
}

// leafMember builds a constructor, method, or property Member. Bodies are
// never entered, so local declarations cannot appear in the map.
func (w *Walker) leafMember(node *sitter.Node, kind Kind, sig string) *Member {
	mods := w.modifiers(node)
	if !Included(mods) {
		return nil
	}

	return &Member{
		Kind:       kind,
		Signature:  sig,
		Line:       declarationLine(node),
		Static:     hasModifier(mods, "static"),
		Doc:        w.docSummary(node),
		Attributes: w.attributes(node),
	}
}

// modifiers collects the modifier keywords of a declaration. The grammar
// emits them either as "modifier" wrapper nodes or as bare keyword tokens.
func (w *Walker) modifiers(node *sitter.Node) []string {
	var mods []string
	for i := uint32(0); i < node.ChildCount(); i++ {
		child := node.Child(int(i))
		t := child.Type()
		if t == "modifier" {
			mods = append(mods, w.result.NodeText(child))
		} else if isModifierKeyword(t) {
			mods = append(mods, t)
		}
	}
	return mods
}

// attributes collects attribute usage names in declaration order.
func (w *Walker) attributes(node *sitter.Node) []string {
	var names []string
	for _, list := range findChildrenByType(node, "attribute_list") {
		for _, attr := range findChildrenByType(list, "attribute") {
			if name := w.attributeName(attr); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// attributeName extracts the name of a single attribute usage.
func (w *Walker) attributeName(attr *sitter.Node) string {
	if name := attr.ChildByFieldName("name"); name != nil {
		return w.result.NodeText(name)
	}
	for i := uint32(0); i < attr.ChildCount(); i++ {
		child := attr.Child(int(i))
		switch child.Type() {
		case "identifier", "identifier_name", "qualified_name", "generic_name":
			return w.result.NodeText(child)
		}
	}
	return ""
}

// baseTypes extracts the base class and implemented interface names from a
// base_list, in declaration order.
func (w *Walker) baseTypes(node *sitter.Node) []string {
	baseList := findChildByType(node, "base_list")
	if baseList == nil {
		return nil
	}

	var types []string
	for i := uint32(0); i < baseList.ChildCount(); i++ {
		child := baseList.Child(int(i))
		t := child.Type()
		if t == ":" || t == "," {
			continue
		}
		if text := w.result.NodeText(child); text != "" {
			types = append(types, text)
		}
	}
	return types
}

// hasModifier reports whether the modifier set contains the given keyword.
func hasModifier(mods []string, keyword string) bool {
	for _, m := range mods {
		if m == keyword {
			return true
		}
	}
	return false
}
