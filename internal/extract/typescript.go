package extract

import (
	"context"

	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// typeScriptExtractor extracts class methods and top-level functions from
// TypeScript SDK source.
type typeScriptExtractor struct {
	language *sitter.Language
}

// NewTypeScript creates an extractor for TypeScript source.
func NewTypeScript() Extractor {
	return &typeScriptExtractor{
		language: sitter.NewLanguage(typescript.LanguageTypescript()),
	}
}

func (e *typeScriptExtractor) Extract(ctx context.Context, source []byte) ([]Operation, error) {
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
		case "function_declaration":
			if op, ok := e.operation(n, source); ok {
				ops = append(ops, op)
			}
		}
		return true
	})

	return ops, nil
}

// extractMethods collects the public methods of a class body. Methods marked
// private or protected are not part of the SDK surface.
func (e *typeScriptExtractor) extractMethods(classNode *sitter.Node, source []byte, ops *[]Operation) {
	bodyNode := classNode.ChildByFieldName("body")
	if bodyNode == nil {
		return
	}

	for _, method := range findChildrenByType(bodyNode, "method_definition") {
		if mod := findChildByType(method, "accessibility_modifier"); mod != nil {
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

func (e *typeScriptExtractor) operation(node *sitter.Node, source []byte) (Operation, bool) {
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
