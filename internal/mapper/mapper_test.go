package mapper

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apimap/apimap/internal/surface"
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

const userSource = `namespace App.Models;

/// <summary>Represents a registered user.</summary>
public class User
{
    public User(string id) {}
    public string GetId() => "";
    private void Hidden() {}
}
`

func TestRunImplicitProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "User.cs"), userSource)

	projects, sum, err := Run(Options{Root: root})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}

	pm := projects[0]
	if pm.Name != filepath.Base(root) {
		t.Errorf("project name = %q", pm.Name)
	}
	if len(pm.Files) != 1 || pm.Files[0].Path != "User.cs" {
		t.Fatalf("unexpected file maps: %+v", pm.Files)
	}

	if sum.Projects != 1 || sum.Files != 1 || sum.Namespaces != 1 || sum.Types != 1 || sum.Methods != 2 {
		t.Errorf("unexpected run summary: %+v", sum)
	}

	cls := pm.Files[0].Members[0].Children[0]
	if cls.Doc != "Represents a registered user." {
		t.Errorf("doc summary = %q", cls.Doc)
	}
}

func TestRunSkipsFailingFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Good.cs"), "public class Good {}\n")
	writeFile(t, filepath.Join(root, "Bad.cs"), "public class {{{\n")

	var report bytes.Buffer
	projects, sum, err := Run(Options{Root: root, Report: &report})
	if err != nil {
		t.Fatalf("a per-file parse failure must not fail the run: %v", err)
	}
	if len(projects) != 1 || len(projects[0].Files) != 1 {
		t.Fatalf("expected the good file only, got %+v", projects)
	}
	if sum.Types != 1 {
		t.Errorf("summary types = %d, want 1", sum.Types)
	}
	if !strings.Contains(report.String(), "Bad.cs") {
		t.Errorf("expected a report mentioning Bad.cs, got %q", report.String())
	}
}

func TestRunDropsEmptyFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Empty.cs"), "using System;\n")
	writeFile(t, filepath.Join(root, "Full.cs"), "public class C {}\n")

	projects, _, err := Run(Options{Root: root})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(projects[0].Files) != 1 || projects[0].Files[0].Path != "Full.cs" {
		t.Errorf("files with no members must be dropped: %+v", projects[0].Files)
	}
}

func TestRunPerProjectSummaries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "A", "A.csproj"), "<Project/>")
	writeFile(t, filepath.Join(root, "A", "One.cs"), "public class One {}\n")
	writeFile(t, filepath.Join(root, "B", "B.csproj"), "<Project/>")
	writeFile(t, filepath.Join(root, "B", "Two.cs"), "public class Two {}\npublic class Three {}\n")

	projects, sum, err := Run(Options{Root: root})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Summary.Types != 1 || projects[1].Summary.Types != 2 {
		t.Errorf("per-project summaries wrong: %+v, %+v", projects[0].Summary, projects[1].Summary)
	}
	want := surface.Summary{Projects: 2, Files: 2, Types: 3}
	if sum != want {
		t.Errorf("run summary = %+v, want %+v", sum, want)
	}
}

func TestRunIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "User.cs"), userSource)

	first, sum1, err := Run(Options{Root: root})
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, sum2, err := Run(Options{Root: root})
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if sum1 != sum2 {
		t.Errorf("summaries differ across runs: %+v vs %+v", sum1, sum2)
	}
	if len(first) != len(second) || len(first[0].Files) != len(second[0].Files) {
		t.Error("unchanged source must yield a structurally identical map")
	}
}
