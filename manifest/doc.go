// Package manifest locates build projects and parses their library
// manifests into resolution inputs.
//
// A manifest is a Starlark-syntax file (LIBRARIES.star by default)
// declaring the libraries a project exposes and the binary variants
// each can produce:
//
//	library(
//	    name = "core",
//	    binaries = [
//	        binary(name = "coreJar", kind = "jar"),
//	        binary(name = "coreShared", kind = "shared"),
//	    ],
//	)
//
// Unknown top-level calls are ignored so manifests can carry other
// build declarations alongside libraries.
//
// # Locating Projects
//
// A Locator maps build-tool project paths to directories under a root:
//
//	loc := manifest.NewLocator("/repo")
//	project, err := loc.Locate(":core:api") // /repo/core/api/LIBRARIES.star
//	if errors.Is(err, manifest.ErrProjectNotFound) {
//	    result := libresolve.ProjectNotFound()
//	    ...
//	}
//
// A project directory without a manifest file is a valid project that
// declares no libraries; only a missing directory is ErrProjectNotFound.
package manifest
