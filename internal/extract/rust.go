package extract

import (
	"context"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"

	"github.com/sdkgate/sdkgate/internal/surface"
)

// rustExtractor extracts pub functions from impl blocks and module level in
// Rust SDK source.
type rustExtractor struct {
	language *sitter.Language
}

// NewRust creates an extractor for Rust source.
func NewRust() Extractor {
	return &rustExtractor{
		language: sitter.NewLanguage(rust.Language()),
	}
}

func (e *rustExtractor) Extract(ctx context.Context, source []byte) ([]Operation, error) {
	tree := parseTree(e.language, source)
	if tree == nil {
		return nil, nil
	}
	defer tree.Close()

	var ops []Operation
	walkTree(tree.RootNode(), func(n *sitter.Node) bool {
		switch n.Kind() {
		case "impl_item":
			e.extractImplFunctions(n, source, &ops)
			return false
		case "function_item":
			if op, ok := e.operation(n, source); ok {
				ops = append(ops, op)
			}
		}
		return true
	})

	return ops, nil
}

// extractImplFunctions collects the pub functions declared in an impl block.
func (e *rustExtractor) extractImplFunctions(implNode *sitter.Node, source []byte, ops *[]Operation) {
	bodyNode := implNode.ChildByFieldName("body")
	if bodyNode == nil {
		return
	}

	for _, fn := range findChildrenByType(bodyNode, "function_item") {
		if op, ok := e.operation(fn, source); ok {
			*ops = append(*ops, op)
		}
	}
}

// operation extracts one pub function; functions without a visibility modifier
// are crate-private and skipped.
func (e *rustExtractor) operation(node *sitter.Node, source []byte) (Operation, bool) {
	vis := findChildByType(node, "visibility_modifier")
	if vis == nil || !strings.HasPrefix(nodeText(vis, source), "pub") {
		return Operation{}, false
	}

	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return Operation{}, false
	}

	params := ""
	if paramsNode := node.ChildByFieldName("parameters"); paramsNode != nil {
		params = surface.TrimReceiver(paramListText(paramsNode, source),
			"self", "&self", "&mut self", "mut self")
	}

	return Operation{
		Name:   nodeText(nameNode, source),
		Params: params,
	}, true
}
