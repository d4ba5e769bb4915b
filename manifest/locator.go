package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFilename is the manifest file name looked up in each project
// directory.
const DefaultFilename = "LIBRARIES.star"

// Locator maps build-tool project paths to directories under a root
// and loads their manifests.
type Locator struct {
	// Root is the directory of the root project.
	Root string

	// Filename is the manifest file name, DefaultFilename if empty.
	Filename string
}

// NewLocator returns a Locator rooted at the given directory.
func NewLocator(root string) *Locator {
	return &Locator{Root: root, Filename: DefaultFilename}
}

// Locate loads the manifest of the project at projectPath. ":" or the
// empty string is the root project; ":a:b" maps to a/b under the root.
//
// A missing project directory yields an error wrapping
// ErrProjectNotFound. A project directory without a manifest file is a
// valid project declaring no libraries.
func (l *Locator) Locate(projectPath string) (*Project, error) {
	dir := l.dir(projectPath)

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("project %q: %w", projectPath, ErrProjectNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", projectPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project %q: %w", projectPath, ErrProjectNotFound)
	}

	filename := l.Filename
	if filename == "" {
		filename = DefaultFilename
	}

	data, err := os.ReadFile(filepath.Join(dir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return &Project{Path: projectPath}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", projectPath, err)
	}

	project, err := Parse(filepath.Join(dir, filename), data)
	if err != nil {
		return nil, err
	}
	project.Path = projectPath
	return project, nil
}

func (l *Locator) dir(projectPath string) string {
	trimmed := strings.Trim(projectPath, ":")
	if trimmed == "" {
		return l.Root
	}
	return filepath.Join(l.Root, filepath.FromSlash(strings.ReplaceAll(trimmed, ":", "/")))
}
