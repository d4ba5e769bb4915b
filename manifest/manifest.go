package manifest

import (
	"fmt"
	"os"

	"github.com/bazelbuild/buildtools/build"
)

// ParseFile reads and parses a library manifest from disk.
func ParseFile(filename string) (*Project, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(filename, data)
}

// Parse parses manifest content. filename is used for diagnostics
// only. Top-level calls other than library() are ignored.
func Parse(filename string, content []byte) (*Project, error) {
	f, err := build.Parse(filename, content)
	if err != nil {
		return nil, &ParseError{File: filename, Message: "syntax error", Err: err}
	}

	project := &Project{}
	for _, stmt := range f.Stmt {
		call, ok := stmt.(*build.CallExpr)
		if !ok {
			continue
		}
		ident, ok := call.X.(*build.Ident)
		if !ok || ident.Name != "library" {
			continue
		}
		lib, err := parseLibrary(filename, call)
		if err != nil {
			return nil, err
		}
		project.Libraries = append(project.Libraries, lib)
	}
	return project, nil
}

func parseLibrary(filename string, call *build.CallExpr) (*Library, error) {
	name := stringAttr(call, "name")
	if name == "" {
		return nil, errorAt(filename, call, "library() requires a name")
	}

	lib := &Library{name: name}
	for _, entry := range listAttr(call, "binaries") {
		binCall, ok := entry.(*build.CallExpr)
		if !ok {
			return nil, errorAt(filename, entry, fmt.Sprintf("library %q: binaries entries must be binary() calls", name))
		}
		if ident, ok := binCall.X.(*build.Ident); !ok || ident.Name != "binary" {
			return nil, errorAt(filename, entry, fmt.Sprintf("library %q: binaries entries must be binary() calls", name))
		}

		binName := stringAttr(binCall, "name")
		kind := stringAttr(binCall, "kind")
		if binName == "" {
			return nil, errorAt(filename, binCall, fmt.Sprintf("library %q: binary() requires a name", name))
		}
		if kind == "" {
			return nil, errorAt(filename, binCall, fmt.Sprintf("binary %q: binary() requires a kind", binName))
		}
		lib.binaries = append(lib.binaries, &Binary{name: binName, kind: kind})
	}
	return lib, nil
}

func errorAt(filename string, expr build.Expr, message string) *ParseError {
	start, _ := expr.Span()
	return &ParseError{File: filename, Line: start.Line, Message: message}
}

// stringAttr extracts a string keyword argument from a function call.
func stringAttr(call *build.CallExpr, name string) string {
	for _, arg := range call.List {
		if assign, ok := arg.(*build.AssignExpr); ok {
			if lhs, ok := assign.LHS.(*build.Ident); ok && lhs.Name == name {
				if str, ok := assign.RHS.(*build.StringExpr); ok {
					return str.Value
				}
			}
		}
	}
	return ""
}

// listAttr extracts a list keyword argument from a function call.
func listAttr(call *build.CallExpr, name string) []build.Expr {
	for _, arg := range call.List {
		if assign, ok := arg.(*build.AssignExpr); ok {
			if lhs, ok := assign.LHS.(*build.Ident); ok && lhs.Name == name {
				if list, ok := assign.RHS.(*build.ListExpr); ok {
					return list.List
				}
			}
		}
	}
	return nil
}
