// This file contains the logic for parsing HCL type expressions (e.g.,
// `integer`, `list(string)`) into parameter type keywords.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/specialistvlad/cleago/internal/ctxlog"
)

// typeKeyword reduces a type expression to its keyword. Unknown single
// identifiers are passed through so validation can report them together with
// every other manifest problem.
func typeKeyword(ctx context.Context, expr hcl.Expression) (string, error) {
	logger := ctxlog.FromContext(ctx)

	switch v := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		logger.Debug("Parsing type expression as a function call.", "call", v.Name)
		if v.Name != "list" {
			return "", fmt.Errorf("unknown type constructor function %q", v.Name)
		}
		if len(v.Args) != 1 {
			return "", fmt.Errorf("the list() type constructor requires exactly one argument, got %d", len(v.Args))
		}
		inner, err := typeKeyword(ctx, v.Args[0])
		if err != nil {
			return "", err
		}
		if inner != "string" {
			return "", fmt.Errorf("lists can only hold strings, got list(%s)", inner)
		}
		return "list", nil

	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return "", fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
		}
		rootName := v.Traversal.RootName()
		logger.Debug("Parsing type expression as a keyword.", "keyword", rootName)
		return rootName, nil

	default:
		return "", fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}
