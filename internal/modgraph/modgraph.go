// Package modgraph is a supplemental graph source: instead of reading
// the line-oriented text format, it loads a real Go module's
// package-import graph with golang.org/x/tools/go/packages and feeds
// it to the engine the same way the line-oriented front-end does, so
// import cycles can be reported with the same condensation machinery.
package modgraph

import (
	"fmt"

	"golang.org/x/tools/go/packages"

	"github.com/1homsi/hopscotch/internal/engine"
	"github.com/1homsi/hopscotch/internal/symtab"
)

// Package is one loaded package: its import path and the import
// paths of the packages it directly imports, restricted to packages
// within the same load (stdlib and out-of-module imports are
// dropped, since they can never participate in a cycle with them).
type Package struct {
	ImportPath string
	Imports    []string
}

// Result is a module's package-import graph.
type Result struct {
	Packages []Package
}

// Load runs packages.Load over dir/... and returns each package's
// direct same-load imports, the same Mode golang.org/x/tools/go/packages
// reachability analysis uses when it only needs names and import
// edges, not full type/SSA information.
func Load(dir string) (*Result, error) {
	cfg := &packages.Config{
		Dir:  dir,
		Mode: packages.NeedName | packages.NeedImports | packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	if n := packages.PrintErrors(pkgs); n > 0 {
		return nil, fmt.Errorf("load packages: %d package(s) had errors", n)
	}

	known := make(map[string]bool, len(pkgs))
	for _, p := range pkgs {
		known[p.PkgPath] = true
	}

	result := &Result{Packages: make([]Package, 0, len(pkgs))}
	for _, p := range pkgs {
		pkg := Package{ImportPath: p.PkgPath}
		for importPath := range p.Imports {
			if known[importPath] {
				pkg.Imports = append(pkg.Imports, importPath)
			}
		}
		result.Packages = append(result.Packages, pkg)
	}
	return result, nil
}

// Feed interns every package's import path and adds it (with its
// same-load import edges) to eng, the same way frontend.Parse feeds
// text-format input — so the rest of the pipeline (Solve, plain/DOT
// rendering) is unaware of where the graph came from.
func Feed(r *Result, tab *symtab.Table, eng *engine.Engine) error {
	for _, pkg := range r.Packages {
		headSym, _, err := tab.Intern(pkg.ImportPath)
		if err != nil {
			return err
		}
		succIDs := make([]uint32, 0, len(pkg.Imports))
		for _, imp := range pkg.Imports {
			sym, _, err := tab.Intern(imp)
			if err != nil {
				return err
			}
			succIDs = append(succIDs, sym.ID)
		}
		if !eng.Add(headSym.ID, succIDs) {
			return eng.LastError()
		}
	}
	return nil
}
