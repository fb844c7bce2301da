package extract

import (
	"context"

	sitter "github.com/tree-sitter/go-tree-sitter"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
)

// phpExtractor extracts public class methods and top-level functions from PHP
// SDK source.
type phpExtractor struct {
	language *sitter.Language
}

// NewPHP creates an extractor for PHP source.
func NewPHP() Extractor {
	return &phpExtractor{
		language: sitter.NewLanguage(php.LanguagePHP()),
	}
}

func (e *phpExtractor) Extract(ctx context.Context, source []byte) ([]Operation, error) {
	tree := parseTree(e.language, source)
	if tree == nil {
		return nil, nil
	}
	defer tree.Close()

	var ops []Operation
	walkTree(tree.RootNode(), func(n *sitter.Node) bool {
		switch n.Kind() {
		case "class_declaration":
			e.extractMethods(n, source, &ops)
			return false
		case "function_definition":
			if op, ok := e.operation(n, source); ok {
				ops = append(ops, op)
			}
		}
		return true
	})

	return ops, nil
}

// extractMethods collects the public methods of a class body. PHP methods
// without a visibility modifier default to public.
func (e *phpExtractor) extractMethods(classNode *sitter.Node, source []byte, ops *[]Operation) {
	bodyNode := classNode.ChildByFieldName("body")
	if bodyNode == nil {
		return
	}

	for _, method := range findChildrenByType(bodyNode, "method_declaration") {
		if mod := findChildByType(method, "visibility_modifier"); mod != nil {
			switch nodeText(mod, source) {
			case "private", "protected":
				continue
			}
		}
		if op, ok := e.operation(method, source); ok {
			*ops = append(*ops, op)
		}
	}
}

func (e *phpExtractor) operation(node *sitter.Node, source []byte) (Operation, bool) {
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
