// Package parser provides tree-sitter based parsing of C# source files.
//
// The parser package wraps the tree-sitter library behind a small adapter so
// the rest of apimap works against a concrete syntax tree without touching
// tree-sitter types directly more than necessary. The CST preserves full
// source fidelity, including comment trivia, which the surface walker needs
// for doc summaries.
package parser

import (
	"context"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
)

// Parser wraps a tree-sitter parser configured for C#.
type Parser struct {
	parser *sitter.Parser
}

// ParseResult contains the parse tree and metadata for one source file.
type ParseResult struct {
	// Tree is the complete tree-sitter parse tree.
	Tree *sitter.Tree
	// Root is the root node of the tree (a compilation_unit).
	Root *sitter.Node
	// Source is the original source code that was parsed.
	Source []byte
	// FilePath is the path to the source file (empty for in-memory parsing).
	FilePath string
}

// New creates a C# parser.
func New() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(csharp.GetLanguage())
	return &Parser{parser: p}
}

// Parse parses source code and returns the CST.
func (p *Parser) Parse(source []byte) (*ParseResult, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, &ParseError{Message: err.Error()}
	}

	root := tree.RootNode()
	if root.HasError() {
		line, col := firstErrorPosition(root)
		tree.Close()
		return nil, &ParseError{Message: "syntax error", Line: line, Column: col}
	}

	return &ParseResult{
		Tree:   tree,
		Root:   root,
		Source: source,
	}, nil
}

// ParseFile parses a file from disk.
func (p *Parser) ParseFile(path string) (*ParseResult, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}

	result, err := p.Parse(source)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.File = path
		}
		return nil, err
	}

	result.FilePath = path
	return result, nil
}

// Close releases parser resources.
// After calling Close, the parser should not be used.
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
		p.parser = nil
	}
}

// Close releases the parse tree resources.
func (r *ParseResult) Close() {
	if r.Tree != nil {
		r.Tree.Close()
		r.Tree = nil
		r.Root = nil
	}
}

// NodeText returns the source text for a node.
func (r *ParseResult) NodeText(node *sitter.Node) string {
	if node == nil || r.Source == nil {
		return ""
	}
	return node.Content(r.Source)
}

// firstErrorPosition locates the first ERROR or MISSING node in the tree.
func firstErrorPosition(root *sitter.Node) (uint32, uint32) {
	var line, col uint32
	found := false

	var walk func(n *sitter.Node) bool
	walk = func(n *sitter.Node) bool {
		if n.IsError() || n.IsMissing() {
			line = n.StartPoint().Row + 1
			col = n.StartPoint().Column + 1
			found = true
			return false
		}
		for i := uint32(0); i < n.ChildCount(); i++ {
			if !walk(n.Child(int(i))) {
				return false
			}
		}
		return true
	}
	walk(root)

	if !found {
		return 1, 1
	}
	return line, col
}
