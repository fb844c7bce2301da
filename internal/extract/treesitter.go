package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// parseTree parses source with the given grammar and returns the syntax tree.
// A nil tree means the source was unparseable; callers treat that as an empty
// surface rather than a failure.
func parseTree(language *sitter.Language, source []byte) *sitter.Tree {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(language)
	return parser.Parse(source, nil)
}

// nodeText extracts the text content of a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// paramListText returns the raw parameter-list text of a parameters node with
// the surrounding parentheses removed.
func paramListText(node *sitter.Node, source []byte) string {
	text := strings.TrimSpace(nodeText(node, source))
	text = strings.TrimPrefix(text, "(")
	text = strings.TrimSuffix(text, ")")
	return strings.TrimSpace(text)
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for each
// node. Returning false from the visitor stops descent into that subtree.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		walkTree(node.Child(uint(i)), visitor)
	}
}

// findChildByType finds the first child node with the given type.
func findChildByType(node *sitter.Node, nodeType string) *sitter.Node {
	if node == nil {
		return nil
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == nodeType {
			return child
		}
	}
	return nil
}

// findChildrenByType finds all child nodes with the given type.
func findChildrenByType(node *sitter.Node, nodeType string) []*sitter.Node {
	var results []*sitter.Node
	if node == nil {
		return results
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == nodeType {
			results = append(results, child)
		}
	}
	return results
}
