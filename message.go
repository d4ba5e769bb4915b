package libresolve

import (
	"sort"
	"strings"
)

// FailureMessage explains a failed resolution. It is a total function
// of the Result and Selector: every combination of project state,
// requested-name presence, partition sizes, and non-matching hit maps
// to exactly one of five message shapes, decided in this order:
//
//  1. project not found
//  2. no name requested, project declares no libraries
//  3. no name requested, selection ambiguous
//  4. requested library exists but has no binary of the expected kind
//  5. requested library does not exist; suggest candidates
//
// An empty project probed with an explicit name falls to shape 5, not
// shape 2: shape 2 applies only when no name was requested.
//
// Identical inputs always yield identical strings; candidate lists are
// sorted by codepoint, independent of locale.
func (r *Result) FailureMessage(sel Selector) string {
	candidates := quoteSorted(r.Candidates())

	var sb strings.Builder
	sb.WriteString("Project '")
	sb.WriteString(sel.ProjectPath)
	sb.WriteString("'")

	switch {
	case r.IsProjectNotFound():
		sb.WriteString(" not found.")

	case sel.LibraryName == "" && !r.HasLibraries():
		sb.WriteString(" doesn't define any library.")

	case sel.LibraryName == "":
		sb.WriteString(" contains more than one library. Please select one of ")
		sb.WriteString(strings.Join(candidates, ", "))
		sb.WriteString(".")

	case r.nonMatchingSelected != nil:
		sb.WriteString(" contains a library named '")
		sb.WriteString(sel.LibraryName)
		sb.WriteString("' but it doesn't have any binary of type ")
		sb.WriteString(sel.BinaryKind)

	default:
		sb.WriteString(" does not contain library '")
		sb.WriteString(sel.LibraryName)
		sb.WriteString("'. Did you want to use ")
		if len(candidates) == 1 {
			sb.WriteString(candidates[0])
		} else {
			sb.WriteString("one of ")
			sb.WriteString(strings.Join(candidates, ", "))
		}
		sb.WriteString("?")
	}

	return sb.String()
}

// MultipleBinariesMessage explains a request that matched more than
// one compatible binary of the selected library.
func MultipleBinariesMessage(libraryName string, binaries []BinarySpec) string {
	list := strings.Join(quoteSorted(binaryNames(binaries)), ", ")
	return "Multiple compatible binaries found for library '" + libraryName + "': " + list
}

// NoCompatibleBinaryMessage explains a selected library none of whose
// binaries are compatible with the request. binaries should be the
// library's full binary set so the user sees what is available.
func NoCompatibleBinaryMessage(libraryName string, binaries []BinarySpec) string {
	available := "(none)"
	if len(binaries) > 0 {
		available = strings.Join(quoteSorted(binaryNames(binaries)), ", ")
	}
	return "No compatible binary found for library '" + libraryName + "'. Available binaries: " + available
}

// quoteSorted wraps each name in single quotes and sorts the quoted
// strings by codepoint.
func quoteSorted(names []string) []string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	sort.Strings(quoted)
	return quoted
}

func binaryNames(binaries []BinarySpec) []string {
	names := make([]string, len(binaries))
	for i, bin := range binaries {
		names[i] = bin.Name()
	}
	return names
}
