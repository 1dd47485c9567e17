package analyze

import (
	"fmt"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph *TypeGraph
	// Dir is the working directory for package resolution ("" = current).
	Dir string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./models", "bridge-meta/examples/models").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// processPackage extracts exported named types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	enums := enumTypes(scope)

	// scope.Names is sorted.
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		info := &TypeInfo{
			ID:     TypeID{PkgPath: pkg.PkgPath, Name: name},
			GoType: named,
		}

		if tp := named.TypeParams(); tp != nil {
			info.TypeParams = tp.Len()
		}

		switch ut := named.Underlying().(type) {
		case *types.Struct:
			info.Kind = TypeKindStruct
			a.analyzeStructFields(ut, info)
		case *types.Interface:
			info.Kind = TypeKindInterface
		case *types.Basic:
			info.Kind = TypeKindBasic
			if _, ok := enums[named]; ok {
				info.Kind = TypeKindEnum
			}
		default:
			info.Kind = TypeKindOther
		}

		a.graph.Types[info.ID] = info
		pkgInfo.Types = append(pkgInfo.Types, info.ID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// enumTypes returns the named integer types that have package-level constants.
func enumTypes(scope *types.Scope) map[*types.Named]struct{} {
	out := make(map[*types.Named]struct{})

	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}

		named, ok := c.Type().(*types.Named)
		if !ok {
			continue
		}

		if b, ok := named.Underlying().(*types.Basic); ok && b.Info()&types.IsInteger != 0 {
			out[named] = struct{}{}
		}
	}

	return out
}

// analyzeStructFields extracts exported fields from a struct type.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	owner := info.BinaryName()

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		if !field.Exported() {
			continue
		}

		info.Properties = append(info.Properties, PropertyInfo{
			PropName:  field.Name(),
			Owner:     info.ID,
			OwnerName: owner,
			TypeStr:   types.TypeString(field.Type(), types.RelativeTo(field.Pkg())),
			Embedded:  field.Embedded(),
			Index:     i,
		})
	}
}

// SortedPackages returns the loaded packages ordered by import path.
func (g *TypeGraph) SortedPackages() []*PackageInfo {
	out := make([]*PackageInfo, 0, len(g.Packages))
	for _, p := range g.Packages {
		out = append(out, p)
	}

	slices.SortFunc(out, func(a, b *PackageInfo) int {
		return strings.Compare(a.Path, b.Path)
	})

	return out
}
