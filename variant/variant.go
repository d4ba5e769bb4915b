// Package variant supplies the binary-compatibility side of library
// resolution: stock filters for libresolve.Resolve and selection of a
// library's compatible binaries once it has been picked.
package variant

import (
	"sort"

	"libresolve"
)

// Kind returns a filter matching libraries that expose at least one
// binary of the given kind. Kind comparison is exact and
// case-sensitive.
func Kind(kind string) libresolve.Filter {
	return func(lib libresolve.LibrarySpec) bool {
		for _, bin := range lib.Binaries() {
			if bin.Kind() == kind {
				return true
			}
		}
		return false
	}
}

// Any returns a filter matching every library, for name-only
// resolution with no binary-type requirement.
func Any() libresolve.Filter {
	return func(libresolve.LibrarySpec) bool { return true }
}

// Compatible returns the library's binaries of the given kind, sorted
// by binary name for deterministic output. The result feeds the
// binary-stage diagnostics: zero entries calls for
// libresolve.NoCompatibleBinaryMessage, two or more for
// libresolve.MultipleBinariesMessage.
func Compatible(lib libresolve.LibrarySpec, kind string) []libresolve.BinarySpec {
	var compatible []libresolve.BinarySpec
	for _, bin := range lib.Binaries() {
		if bin.Kind() == kind {
			compatible = append(compatible, bin)
		}
	}
	sort.Slice(compatible, func(i, j int) bool {
		return compatible[i].Name() < compatible[j].Name()
	})
	return compatible
}
