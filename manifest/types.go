package manifest

import "libresolve"

// Project is the set of libraries declared by one build project.
type Project struct {
	// Path is the project's display path (e.g. ":core:api"). Set by
	// the Locator; empty for manifests parsed directly from content.
	Path string

	// Libraries holds the declared libraries in manifest order.
	Libraries []*Library
}

// Specs returns the declared libraries as resolution inputs.
func (p *Project) Specs() []libresolve.LibrarySpec {
	specs := make([]libresolve.LibrarySpec, len(p.Libraries))
	for i, lib := range p.Libraries {
		specs[i] = lib
	}
	return specs
}

// Library is a manifest-declared library. It implements
// libresolve.LibrarySpec.
type Library struct {
	name     string
	binaries []*Binary
}

// NewLibrary builds a library declaration outside of manifest parsing,
// mainly for tests and in-memory projects.
func NewLibrary(name string, binaries ...*Binary) *Library {
	return &Library{name: name, binaries: binaries}
}

// Name returns the library name, unique within its project.
func (l *Library) Name() string {
	return l.name
}

// Binaries returns the library's binary variants.
func (l *Library) Binaries() []libresolve.BinarySpec {
	specs := make([]libresolve.BinarySpec, len(l.binaries))
	for i, bin := range l.binaries {
		specs[i] = bin
	}
	return specs
}

// Binary is a manifest-declared binary variant. It implements
// libresolve.BinarySpec.
type Binary struct {
	name string
	kind string
}

// NewBinary builds a binary declaration outside of manifest parsing.
func NewBinary(name, kind string) *Binary {
	return &Binary{name: name, kind: kind}
}

// Name returns the binary's name, unique within its library.
func (b *Binary) Name() string {
	return b.name
}

// Kind returns the binary's type display name (e.g. "jar").
func (b *Binary) Kind() string {
	return b.kind
}
