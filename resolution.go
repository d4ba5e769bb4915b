// Package libresolve implements the library-resolution layer of a
// build tool: given the libraries a project declares and a request
// carrying an optional library name plus a binary-compatibility
// filter, it determines which library satisfies the request and, when
// none does, produces a deterministic human-readable diagnostic.
//
// # Overview
//
// The package provides two cooperating pieces:
//
//   - Resolve partitions a project's libraries into those matching the
//     compatibility filter and those not, then applies name-based
//     selection rules to pick at most one library.
//   - Result.FailureMessage inspects a failed resolution and renders
//     exactly one of five mutually exclusive message shapes, with
//     alphabetically sorted, quoted candidate lists.
//
// # Quick Start
//
//	result := libresolve.Resolve(project.Specs(), "core", variant.Kind("jar"))
//	if lib := result.Selected(); lib != nil {
//	    // build lib
//	}
//	sel := libresolve.Selector{ProjectPath: ":app", LibraryName: "core", BinaryKind: "jar"}
//	fmt.Println(result.FailureMessage(sel))
//
// # Thread Safety
//
// A Result is immutable after construction, so sharing one across
// goroutines requires no synchronization. Concurrent resolution
// attempts are independent: each call builds its own Result from its
// own input snapshot.
package libresolve

// projectState distinguishes "project exists but declares nothing"
// from "project could not be located". Both leave the partition maps
// empty but produce different diagnostics.
type projectState int

const (
	stateNormal projectState = iota
	stateProjectNotFound
)

// Result is the outcome of resolving a library request against a
// project's declared libraries. It is built once per resolution
// attempt, is immutable afterwards, and carries enough structure for
// FailureMessage to explain any failed resolution.
//
// Absence of a selection is represented structurally (nil fields),
// never as an error: the caller decides whether a nil Selected is a
// failure and, if so, asks for a diagnostic.
type Result struct {
	matching    map[string]LibrarySpec
	nonMatching map[string]LibrarySpec

	selected            LibrarySpec
	nonMatchingSelected LibrarySpec

	state projectState
}

// Resolve partitions libraries by the compatibility filter and selects
// at most one of them.
//
// Selection rules:
//   - requestedName empty: the single matching library is selected if
//     there is exactly one; zero or several matching libraries leave
//     the selection empty rather than guessing.
//   - requestedName set: the matching and non-matching partitions are
//     probed independently for that name. A hit in the non-matching
//     partition is remembered for diagnostics only.
//
// Library names are unique within a project by construction. If the
// input violates that, later entries silently overwrite earlier ones
// in the partition maps.
func Resolve(libraries []LibrarySpec, requestedName string, filter Filter) *Result {
	r := newResult(stateNormal)
	for _, lib := range libraries {
		if filter(lib) {
			r.matching[lib.Name()] = lib
		} else {
			r.nonMatching[lib.Name()] = lib
		}
	}
	r.selectByName(requestedName)
	return r
}

// ProjectNotFound returns the terminal outcome for a project that
// could not be located. Each call returns a fresh value; callers may
// share it freely since a Result is never mutated.
func ProjectNotFound() *Result {
	return newResult(stateProjectNotFound)
}

// EmptyProject returns the terminal outcome for a project that exists
// but declares no libraries.
func EmptyProject() *Result {
	return newResult(stateNormal)
}

func newResult(state projectState) *Result {
	return &Result{
		matching:    make(map[string]LibrarySpec),
		nonMatching: make(map[string]LibrarySpec),
		state:       state,
	}
}

func (r *Result) selectByName(requestedName string) {
	if requestedName == "" {
		single := r.singleMatching()
		if single == nil {
			return
		}
		requestedName = single.Name()
	}
	r.selected = r.matching[requestedName]
	r.nonMatchingSelected = r.nonMatching[requestedName]
}

func (r *Result) singleMatching() LibrarySpec {
	if len(r.matching) != 1 {
		return nil
	}
	for _, lib := range r.matching {
		return lib
	}
	return nil
}

// Selected returns the library picked by the selection rules, or nil
// when resolution did not yield one.
func (r *Result) Selected() LibrarySpec {
	return r.selected
}

// NonMatchingSelected returns the library carrying the requested name
// that failed the compatibility filter, or nil. It never participates
// in selection; FailureMessage uses it to tell "wrong binary type"
// apart from "no such library".
func (r *Result) NonMatchingSelected() LibrarySpec {
	return r.nonMatchingSelected
}

// IsProjectNotFound reports whether this outcome stands for a project
// that could not be located.
func (r *Result) IsProjectNotFound() bool {
	return r.state == stateProjectNotFound
}

// HasLibraries reports whether the project declared any library at
// all, matching or not.
func (r *Result) HasLibraries() bool {
	return len(r.matching) > 0 || len(r.nonMatching) > 0
}

// Candidates returns the names of the libraries that passed the
// compatibility filter, in no particular order. Formatting and
// ordering belong to the diagnostic layer.
func (r *Result) Candidates() []string {
	names := make([]string, 0, len(r.matching))
	for name := range r.matching {
		names = append(names, name)
	}
	return names
}
