package discover

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDiscoverProjects(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "App", "App.csproj"), "<Project/>")
	writeFile(t, filepath.Join(root, "App", "Program.cs"), "")
	writeFile(t, filepath.Join(root, "App", "Models", "User.cs"), "")
	writeFile(t, filepath.Join(root, "Lib", "Lib.csproj"), "<Project/>")
	writeFile(t, filepath.Join(root, "Lib", "Thing.cs"), "")

	projects, err := Projects(root, nil)
	if err != nil {
		t.Fatalf("Projects failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}

	if projects[0].Name != "App" || projects[1].Name != "Lib" {
		t.Errorf("unexpected project names: %s, %s", projects[0].Name, projects[1].Name)
	}
	if len(projects[0].Files) != 2 {
		t.Errorf("expected 2 App sources, got %v", projects[0].Files)
	}
	if len(projects[1].Files) != 1 {
		t.Errorf("expected 1 Lib source, got %v", projects[1].Files)
	}
}

func TestDiscoverImplicitProjectFallback(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.cs"), "")
	writeFile(t, filepath.Join(root, "sub", "b.cs"), "")

	projects, err := Projects(root, nil)
	if err != nil {
		t.Fatalf("Projects failed: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 implicit project, got %d", len(projects))
	}
	if projects[0].Name != filepath.Base(root) {
		t.Errorf("implicit project name = %q, want root dir name %q", projects[0].Name, filepath.Base(root))
	}
	if len(projects[0].Files) != 2 {
		t.Errorf("expected 2 sources, got %v", projects[0].Files)
	}
}

func TestDiscoverSkipsBuildOutput(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "App.csproj"), "<Project/>")
	writeFile(t, filepath.Join(root, "Program.cs"), "")
	writeFile(t, filepath.Join(root, "bin", "Debug", "Generated.cs"), "")
	writeFile(t, filepath.Join(root, "obj", "Temp.cs"), "")

	projects, err := Projects(root, nil)
	if err != nil {
		t.Fatalf("Projects failed: %v", err)
	}
	if len(projects[0].Files) != 1 {
		t.Errorf("bin/ and obj/ must be excluded, got %v", projects[0].Files)
	}
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Keep.cs"), "")
	writeFile(t, filepath.Join(root, "Generated", "Skip.cs"), "")
	writeFile(t, filepath.Join(root, "deep", "x.designer.cs"), "")

	projects, err := Projects(root, []string{"Generated/**", "**/*.designer.cs"})
	if err != nil {
		t.Fatalf("Projects failed: %v", err)
	}
	if len(projects) != 1 || len(projects[0].Files) != 1 {
		t.Fatalf("expected 1 project with 1 file, got %+v", projects)
	}
	if filepath.Base(projects[0].Files[0]) != "Keep.cs" {
		t.Errorf("unexpected surviving file: %v", projects[0].Files)
	}
}

func TestDiscoverNoSources(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "readme.md"), "nothing here")

	_, err := Projects(root, nil)
	var noSources *NoSourcesError
	if !errors.As(err, &noSources) {
		t.Fatalf("expected NoSourcesError, got %v", err)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	if _, err := Projects(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Fatal("expected error for missing root")
	}
}
