package extract

import (
	"context"

	sitter "github.com/tree-sitter/go-tree-sitter"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
)

// rubyExtractor extracts instance methods and top-level methods from Ruby SDK
// source.
type rubyExtractor struct {
	language *sitter.Language
}

// NewRuby creates an extractor for Ruby source.
func NewRuby() Extractor {
	return &rubyExtractor{
		language: sitter.NewLanguage(ruby.Language()),
	}
}

func (e *rubyExtractor) Extract(ctx context.Context, source []byte) ([]Operation, error) {
	tree := parseTree(e.language, source)
	if tree == nil {
		return nil, nil
	}
	defer tree.Close()

	var ops []Operation
	walkTree(tree.RootNode(), func(n *sitter.Node) bool {
		switch n.Kind() {
		case "class", "module":
			e.extractMethods(n, source, &ops)
			return false
		case "method":
			if op, ok := e.operation(n, source); ok {
				ops = append(ops, op)
			}
		}
		return true
	})

	return ops, nil
}

// extractMethods collects methods declared in a class or module body. The body
// may appear either as direct children or under a body_statement node.
func (e *rubyExtractor) extractMethods(node *sitter.Node, source []byte, ops *[]Operation) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		switch child.Kind() {
		case "method":
			if op, ok := e.operation(child, source); ok {
				*ops = append(*ops, op)
			}
		case "body_statement":
			for j := 0; j < int(child.ChildCount()); j++ {
				bodyChild := child.Child(uint(j))
				if bodyChild.Kind() == "method" {
					if op, ok := e.operation(bodyChild, source); ok {
						*ops = append(*ops, op)
					}
				}
			}
		}
	}
}

func (e *rubyExtractor) operation(node *sitter.Node, source []byte) (Operation, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return Operation{}, false
	}

	params := ""
	if paramsNode := node.ChildByFieldName("parameters"); paramsNode != nil {
		params = paramListText(paramsNode, source)
	}

	return Operation{
		Name:   nodeText(nameNode, source),
		Params: params,
	}, true
}
