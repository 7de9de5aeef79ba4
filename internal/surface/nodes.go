package surface

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// findChildByType finds the first direct child node of the given type.
func findChildByType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := uint32(0); i < node.ChildCount(); i++ {
		child := node.Child(int(i))
		if child.Type() == nodeType {
			return child
		}
	}
	return nil
}

// findChildrenByType finds all direct child nodes of the given type.
func findChildrenByType(node *sitter.Node, nodeType string) []*sitter.Node {
	var children []*sitter.Node
	for i := uint32(0); i < node.ChildCount(); i++ {
		child := node.Child(int(i))
		if child.Type() == nodeType {
			children = append(children, child)
		}
	}
	return children
}

// declarationLine returns the 1-based source line of a node.
func declarationLine(node *sitter.Node) uint32 {
	return node.StartPoint().Row + 1
}

// isModifierKeyword reports whether a node type is a C# declaration modifier
// keyword that can appear as a bare token in the CST.
func isModifierKeyword(nodeType string) bool {
	switch nodeType {
	case "public", "private", "protected", "internal",
		"static", "readonly", "const", "abstract", "sealed",
		"virtual", "override", "new", "partial", "async",
		"extern", "volatile", "unsafe", "required", "file":
		return true
	}
	return false
}
