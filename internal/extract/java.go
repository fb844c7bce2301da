package extract

import (
	"context"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// javaExtractor extracts public methods from Java SDK source.
type javaExtractor struct {
	language *sitter.Language
}

// NewJava creates an extractor for Java source.
func NewJava() Extractor {
	return &javaExtractor{
		language: sitter.NewLanguage(java.Language()),
	}
}

func (e *javaExtractor) Extract(ctx context.Context, source []byte) ([]Operation, error) {
	tree := parseTree(e.language, source)
	if tree == nil {
		return nil, nil
	}
	defer tree.Close()

	var ops []Operation
	walkTree(tree.RootNode(), func(n *sitter.Node) bool {
		if n.Kind() == "class_declaration" {
			e.extractMethods(n, source, &ops)
			return false
		}
		return true
	})

	return ops, nil
}

// extractMethods collects the explicitly public methods of a class body. Java
// package-private and private methods are not part of the SDK surface.
func (e *javaExtractor) extractMethods(classNode *sitter.Node, source []byte, ops *[]Operation) {
	bodyNode := classNode.ChildByFieldName("body")
	if bodyNode == nil {
		return
	}

	for _, method := range findChildrenByType(bodyNode, "method_declaration") {
		modifiers := findChildByType(method, "modifiers")
		if modifiers == nil || !strings.Contains(nodeText(modifiers, source), "public") {
			continue
		}

		nameNode := method.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}

		params := ""
		if paramsNode := method.ChildByFieldName("parameters"); paramsNode != nil {
			params = paramListText(paramsNode, source)
		}

		*ops = append(*ops, Operation{
			Name:   nodeText(nameNode, source),
			Params: params,
		})
	}
}
