package extract

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
)

// goExtractor extracts exported methods and functions from Go SDK source
// using go/ast, matching how Go tooling reads Go rather than a grammar port.
type goExtractor struct{}

// NewGo creates an extractor for Go source.
func NewGo() Extractor {
	return &goExtractor{}
}

func (e *goExtractor) Extract(ctx context.Context, source []byte) ([]Operation, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "sdk.go", source, 0)
	if err != nil {
		return nil, err
	}

	var ops []Operation
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		// Unexported names are Go's private marker.
		if !ast.IsExported(fn.Name.Name) {
			continue
		}

		ops = append(ops, Operation{
			Name:   fn.Name.Name,
			Params: paramsSource(fset, fn.Type.Params, source),
		})
	}

	return ops, nil
}

// paramsSource returns the raw text between the parameter-list parentheses.
func paramsSource(fset *token.FileSet, params *ast.FieldList, source []byte) string {
	if params == nil || len(params.List) == 0 {
		return ""
	}

	open := fset.Position(params.Opening).Offset
	closing := fset.Position(params.Closing).Offset
	if open < 0 || closing <= open || closing > len(source) {
		return ""
	}
	return string(source[open+1 : closing])
}
