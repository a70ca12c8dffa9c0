// Package noexit содержит анализатор, запрещающий прямой вызов os.Exit
// в функции main пакета main: выход должен идти через логгер или return,
// иначе отложенные Sync и Shutdown не выполняются.
package noexit

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer запрещает os.Exit в main.main.
var Analyzer = &analysis.Analyzer{
	Name:     "noexit",
	Doc:      "запрещает использовать os.Exit в функции main пакета main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// NewAnalyzer возвращает анализатор noexit.
func NewAnalyzer() *analysis.Analyzer {
	return Analyzer
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if fn.Name.Name != "main" || fn.Recv != nil || fn.Body == nil {
			return
		}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			if call, ok := n.(*ast.CallExpr); ok && isOSExit(pass.TypesInfo, call) {
				pass.Reportf(call.Pos(), "вызов os.Exit в функции main запрещён")
			}
			return true
		})
	})
	return nil, nil
}

// isOSExit распознаёт os.Exit и при импорте пакета под другим именем.
func isOSExit(info *types.Info, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	fn, ok := info.Uses[sel.Sel].(*types.Func)
	return ok && fn.Pkg() != nil && fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}
