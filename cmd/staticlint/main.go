// Package main запускает multichecker для FaleProxy.
//
// Он включает:
//   - стандартные анализаторы go/analysis/passes
//   - все SA-анализаторы staticcheck
//   - S1000 из simple и U1000 из unused
//   - bodyclose: исходящие запросы fetcher обязаны закрывать тело ответа
//   - собственный анализатор noexit (запрещает os.Exit в main)
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/unused"

	"github.com/Totarae/FaleProxy/cmd/staticlint/noexit"
)

var extraChecks = []string{"S1000"}

func main() {
	multichecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		errorsas.Analyzer,
		httpresponse.Analyzer,
		lostcancel.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		bodyclose.Analyzer,
		noexit.NewAnalyzer(),
	}

	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			list = append(list, a.Analyzer)
		}
	}
	for _, name := range extraChecks {
		if a := findAnalyzer(simple.Analyzers, name); a != nil {
			list = append(list, a)
		}
	}
	return append(list, unused.Analyzer.Analyzer)
}

func findAnalyzer(set []*lint.Analyzer, name string) *analysis.Analyzer {
	for _, a := range set {
		if a.Analyzer.Name == name {
			return a.Analyzer
		}
	}
	return nil
}
