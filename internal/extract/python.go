package extract

import (
	"context"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/sdkgate/sdkgate/internal/surface"
)

// pythonExtractor extracts class methods and module-level functions from
// Python SDK source.
type pythonExtractor struct {
	language *sitter.Language
}

// NewPython creates an extractor for Python source.
func NewPython() Extractor {
	return &pythonExtractor{
		language: sitter.NewLanguage(python.Language()),
	}
}

func (e *pythonExtractor) Extract(ctx context.Context, source []byte) ([]Operation, error) {
	tree := parseTree(e.language, source)
	if tree == nil {
		return nil, nil
	}
	defer tree.Close()

	var ops []Operation
	walkTree(tree.RootNode(), func(n *sitter.Node) bool {
		switch n.Kind() {
		case "class_definition":
			e.extractMethods(n, source, &ops)
			return false
		case "function_definition":
			if isModuleLevel(n) {
				if op, ok := e.operation(n, source); ok {
					ops = append(ops, op)
				}
			}
		}
		return true
	})

	return ops, nil
}

// extractMethods collects the methods declared directly in a class body.
func (e *pythonExtractor) extractMethods(classNode *sitter.Node, source []byte, ops *[]Operation) {
	bodyNode := classNode.ChildByFieldName("body")
	if bodyNode == nil {
		return
	}

	for i := 0; i < int(bodyNode.ChildCount()); i++ {
		child := bodyNode.Child(uint(i))
		// Decorated methods wrap the function_definition one level down.
		if child.Kind() == "decorated_definition" {
			if def := findChildByType(child, "function_definition"); def != nil {
				child = def
			}
		}
		if child.Kind() != "function_definition" {
			continue
		}
		if op, ok := e.operation(child, source); ok {
			*ops = append(*ops, op)
		}
	}
}

func (e *pythonExtractor) operation(node *sitter.Node, source []byte) (Operation, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return Operation{}, false
	}

	params := ""
	if paramsNode := node.ChildByFieldName("parameters"); paramsNode != nil {
		params = surface.TrimReceiver(paramListText(paramsNode, source), "self", "cls")
	}

	return Operation{
		Name:   nodeText(nameNode, source),
		Params: params,
	}, true
}

// isModuleLevel checks if a node sits at module level, outside any class or
// function.
func isModuleLevel(node *sitter.Node) bool {
	parent := node.Parent()
	for parent != nil {
		switch parent.Kind() {
		case "class_definition", "function_definition":
			return false
		case "module":
			return true
		}
		parent = parent.Parent()
	}
	return true
}
