package surface

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Signature formatting is deterministic and purely textual: parameter lists,
// return types, and default values are taken verbatim from the source with
// no semantic normalization.

// namespaceSignature returns the dotted namespace name.
func (w *Walker) namespaceSignature(node *sitter.Node) string {
	if name := node.ChildByFieldName("name"); name != nil {
		return w.result.NodeText(name)
	}
	return ""
}

// identifierSignature returns just the declared identifier. Base types are
// rendered separately, so classes and interfaces carry only their name.
func (w *Walker) identifierSignature(node *sitter.Node) string {
	if name := node.ChildByFieldName("name"); name != nil {
		return w.result.NodeText(name)
	}
	return ""
}

// recordSignature returns the record identifier followed by its positional
// parameter list verbatim, or just the identifier when there is none.
func (w *Walker) recordSignature(node *sitter.Node) string {
	name := w.identifierSignature(node)
	params := node.ChildByFieldName("parameters")
	if params == nil {
		params = findChildByType(node, "parameter_list")
	}
	if params == nil {
		return name
	}
	return name + w.result.NodeText(params)
}

// enumSignature returns the enum identifier with its member identifiers
// brace-delimited and comma-joined in declaration order. Explicit values and
// the underlying type are omitted.
func (w *Walker) enumSignature(node *sitter.Node) string {
	name := w.identifierSignature(node)

	body := node.ChildByFieldName("body")
	if body == nil {
		body = findChildByType(node, "enum_member_declaration_list")
	}

	var members []string
	if body != nil {
		for _, decl := range findChildrenByType(body, "enum_member_declaration") {
			memberName := decl.ChildByFieldName("name")
			if memberName == nil {
				memberName = findChildByType(decl, "identifier")
			}
			if memberName != nil {
				members = append(members, w.result.NodeText(memberName))
			}
		}
	}

	return name + " { " + strings.Join(members, ", ") + " }"
}

// constructorSignature returns the constructor identifier with its parameter
// list verbatim, default values included.
func (w *Walker) constructorSignature(node *sitter.Node) string {
	name := w.identifierSignature(node)
	return name + w.parameterList(node)
}

// methodSignature returns return type, identifier, and parameter list.
func (w *Walker) methodSignature(node *sitter.Node) string {
	name := w.identifierSignature(node)

	ret := ""
	retNode := node.ChildByFieldName("type")
	if retNode == nil {
		retNode = node.ChildByFieldName("returns")
	}
	if retNode != nil {
		ret = strings.TrimSpace(w.result.NodeText(retNode))
	}

	sig := name + w.parameterList(node)
	if ret == "" {
		return sig
	}
	return ret + " " + sig
}

// propertySignature returns the property type and identifier, with no
// accessor bodies.
func (w *Walker) propertySignature(node *sitter.Node) string {
	name := w.identifierSignature(node)

	typ := ""
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		typ = strings.TrimSpace(w.result.NodeText(typeNode))
	}
	if typ == "" {
		return name
	}
	return typ + " " + name
}

// parameterList returns the verbatim parameter list text including parens,
// or "()" when the declaration has none.
func (w *Walker) parameterList(node *sitter.Node) string {
	params := node.ChildByFieldName("parameters")
	if params == nil {
		params = findChildByType(node, "parameter_list")
	}
	if params == nil {
		return "()"
	}
	return w.result.NodeText(params)
}
