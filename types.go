package libresolve

// LibrarySpec describes a library component declared by a project. A
// library has a name, unique within its project, and exposes one or
// more binary variants that can be built from it.
//
// Implementations are expected to be immutable value types; the
// resolution code never mutates them and holds references only for the
// lifetime of a single Result.
type LibrarySpec interface {
	// Name returns the library name, unique within its project.
	Name() string

	// Binaries returns the binary variants this library can produce.
	Binaries() []BinarySpec
}

// BinarySpec describes a single buildable variant of a library, for
// example a jar or a platform-specific shared binary.
type BinarySpec interface {
	// Name returns the binary's name, unique within its library.
	Name() string

	// Kind returns the binary's type display name (e.g. "jar").
	Kind() string
}

// Filter reports whether a library satisfies the compatibility
// requirements of the current request, typically "exposes at least one
// binary variant of the requested kind". Filters are supplied by the
// variant-matching subsystem; see the variant package for stock
// implementations.
type Filter func(LibrarySpec) bool

// Selector identifies the library a dependency request points at. It
// is carried alongside a Result purely to render diagnostics; none of
// its fields participate in selection logic.
type Selector struct {
	// ProjectPath is the display path of the target project (e.g. ":core:api").
	ProjectPath string

	// LibraryName is the requested library name. Empty means no
	// specific library was requested and the project's single matching
	// library, if any, is implied.
	LibraryName string

	// BinaryKind is the display name of the binary type the request
	// expects (e.g. "jar"). Used only in failure messages.
	BinaryKind string
}
