// Package bindcheck verifies endpoint definitions without running them.
//
// trakt.NewEndpoint panics at package initialisation when a request type does
// not fit its URL template. Check finds the same mismatches from source, so a
// broken binding fails CI before any binary starts. Only calls with a constant
// template and concrete type arguments can be checked; the rest are counted
// as skipped.
package bindcheck

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/ansg191/trakt/internal/urltmpl"
)

// TraktPath is the import path whose NewEndpoint calls are checked.
const TraktPath = "github.com/ansg191/trakt"

// Finding is one problem with one endpoint definition.
type Finding struct {
	Pos      token.Position
	Template string
	Request  string
	Msg      string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: endpoint %q (%s): %s", f.Pos, f.Template, f.Request, f.Msg)
}

// Result summarises a check.
type Result struct {
	Packages  []string
	Endpoints int // definitions checked
	Skipped   []token.Position
	Findings  []Finding
}

// OK reports whether no problems were found.
func (r *Result) OK() bool { return len(r.Findings) == 0 }

// Check loads the packages matching patterns and checks every NewEndpoint call.
//
// Patterns follow go command semantics:
//   - "./..." for the current directory and subdirectories
//   - Import path like "github.com/ansg191/trakt/api/movies"
//   - Absolute or relative directory path
func Check(patterns ...string) (*Result, error) {
	return CheckDir("", patterns...)
}

// CheckDir is like Check but allows specifying a working directory.
func CheckDir(dir string, patterns ...string) (*Result, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		Dir: dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found matching %q", strings.Join(patterns, " "))
	}

	result := &Result{}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		result.Packages = append(result.Packages, pkg.PkgPath)
		for _, f := range pkg.Syntax {
			ast.Inspect(f, func(n ast.Node) bool {
				if call, ok := n.(*ast.CallExpr); ok {
					checkCall(pkg, call, result)
				}
				return true
			})
		}
	}

	sort.Slice(result.Findings, func(i, j int) bool {
		a, b := result.Findings[i].Pos, result.Findings[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Offset < b.Offset
	})
	return result, nil
}

// calleeIdent returns the function name of calls like f[A, B](x) and pkg.f[A, B](x).
func calleeIdent(fun ast.Expr) *ast.Ident {
	switch f := fun.(type) {
	case *ast.IndexListExpr:
		fun = f.X
	case *ast.IndexExpr:
		fun = f.X
	}
	switch f := fun.(type) {
	case *ast.Ident:
		return f
	case *ast.SelectorExpr:
		return f.Sel
	}
	return nil
}

func checkCall(pkg *packages.Package, call *ast.CallExpr, result *Result) {
	id := calleeIdent(call.Fun)
	if id == nil {
		return
	}
	fn, ok := pkg.TypesInfo.Uses[id].(*types.Func)
	if !ok || fn.Name() != "NewEndpoint" || fn.Pkg() == nil || fn.Pkg().Path() != TraktPath {
		return
	}
	pos := pkg.Fset.Position(call.Pos())

	inst, ok := pkg.TypesInfo.Instances[id]
	if !ok || inst.TypeArgs.Len() < 1 || len(call.Args) != 1 {
		result.Skipped = append(result.Skipped, pos)
		return
	}
	req := types.Unalias(inst.TypeArgs.At(0))
	tv := pkg.TypesInfo.Types[call.Args[0]]
	if _, generic := req.(*types.TypeParam); generic || tv.Value == nil || tv.Value.Kind() != constant.String {
		result.Skipped = append(result.Skipped, pos)
		return
	}
	template := constant.StringVal(tv.Value)
	result.Endpoints++

	report := func(format string, args ...any) {
		result.Findings = append(result.Findings, Finding{
			Pos:      pos,
			Template: template,
			Request:  types.TypeString(req, types.RelativeTo(pkg.Types)),
			Msg:      fmt.Sprintf(format, args...),
		})
	}

	tmpl, err := urltmpl.Parse(template)
	if err != nil {
		report("%v", err)
		return
	}
	st, ok := req.Underlying().(*types.Struct)
	if !ok {
		report("request type is not a struct")
		return
	}

	var paths []pathField
	for _, msg := range collect(st, "", &paths) {
		report("%s", msg)
	}
	fields := make(map[string]bool, len(paths))
	for _, p := range paths {
		if fields[p.name] {
			report("duplicate path field %q", p.name)
		}
		fields[p.name] = true
	}
	placeholders := make(map[string]bool)
	for _, name := range tmpl.Params() {
		placeholders[name] = true
		if !fields[name] {
			report("placeholder {%s} has no path field", name)
		}
	}
	for _, p := range paths {
		if !placeholders[p.name] {
			report("path field %s (%q) has no placeholder", p.goName, p.name)
		}
	}
}

type pathField struct {
	goName string
	name   string
}

var roles = []string{"path", "query", "body"}

// collect mirrors the runtime binding rules for struct tags. It appends the
// path fields of st to paths and returns a message per malformed field.
func collect(st *types.Struct, prefix string, paths *[]pathField) []string {
	var msgs []string
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		tag := reflect.StructTag(st.Tag(i))
		goName := prefix + v.Name()

		var role, value string
		for _, candidate := range roles {
			s, ok := tag.Lookup(candidate)
			if !ok {
				continue
			}
			if role != "" {
				msgs = append(msgs, fmt.Sprintf("field %s has both %s and %s tags", goName, role, candidate))
			}
			role, value = candidate, s
		}

		if role == "" {
			if inner, ok := v.Type().Underlying().(*types.Struct); ok && v.Embedded() {
				msgs = append(msgs, collect(inner, goName+".", paths)...)
				continue
			}
			if v.Exported() {
				msgs = append(msgs, fmt.Sprintf("field %s has no path, query or body tag", goName))
			}
			continue
		}
		if !v.Exported() {
			msgs = append(msgs, fmt.Sprintf("unexported field %s cannot carry a %s tag", goName, role))
			continue
		}
		name, opts, _ := strings.Cut(value, ",")
		if name == "" || name == "-" {
			msgs = append(msgs, fmt.Sprintf("field %s has an empty %s name", goName, role))
			continue
		}
		if role == "path" {
			if opts != "" {
				msgs = append(msgs, fmt.Sprintf("field %s: unsupported path option %q", goName, opts))
			}
			*paths = append(*paths, pathField{goName: goName, name: name})
		}
	}
	return msgs
}
