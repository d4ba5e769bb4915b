package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, DefaultFilename), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLocate(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `library(name = "rootLib")`)
	writeManifest(t, filepath.Join(root, "core", "api"), `library(name = "api")`)
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	loc := NewLocator(root)

	tests := []struct {
		name        string
		projectPath string
		wantLibs    []string
	}{
		{"root project via colon", ":", []string{"rootLib"}},
		{"root project via empty path", "", []string{"rootLib"}},
		{"nested project", ":core:api", []string{"api"}},
		{"project without manifest declares nothing", ":empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project, err := loc.Locate(tt.projectPath)
			if err != nil {
				t.Fatalf("Locate(%q) error: %v", tt.projectPath, err)
			}
			if project.Path != tt.projectPath {
				t.Errorf("Path = %q, want %q", project.Path, tt.projectPath)
			}
			if len(project.Libraries) != len(tt.wantLibs) {
				t.Fatalf("Locate(%q) found %d libraries, want %d", tt.projectPath, len(project.Libraries), len(tt.wantLibs))
			}
			for i, want := range tt.wantLibs {
				if got := project.Libraries[i].Name(); got != want {
					t.Errorf("library[%d] = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestLocateProjectNotFound(t *testing.T) {
	loc := NewLocator(t.TempDir())

	_, err := loc.Locate(":no:such:project")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("Locate() error = %v, want ErrProjectNotFound", err)
	}
}

func TestLocateBadManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `library(binaries = [])`)

	_, err := NewLocator(root).Locate(":")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("Locate() error type %T, want *ParseError", err)
	}
}

func TestLocatorCustomFilename(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "components.star"), []byte(`library(name = "lib")`), 0o644); err != nil {
		t.Fatal(err)
	}

	loc := NewLocator(root)
	loc.Filename = "components.star"

	project, err := loc.Locate(":")
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if len(project.Libraries) != 1 || project.Libraries[0].Name() != "lib" {
		t.Errorf("Locate() libraries = %v, want [lib]", project.Libraries)
	}
}
