package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseValidSource(t *testing.T) {
	p := New()
	defer p.Close()

	result, err := p.Parse([]byte("namespace A { public class B {} }\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer result.Close()

	if result.Root == nil {
		t.Fatal("expected a root node")
	}
	if result.Root.Type() != "compilation_unit" {
		t.Errorf("root type = %q, want compilation_unit", result.Root.Type())
	}
}

func TestParseMalformedSource(t *testing.T) {
	p := New()
	defer p.Close()

	_, err := p.Parse([]byte("public class {{{\n"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Line == 0 {
		t.Error("parse error should carry a location")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.cs")
	if err := os.WriteFile(path, []byte("public enum E { A }\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p := New()
	defer p.Close()

	result, err := p.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	defer result.Close()

	if result.FilePath != path {
		t.Errorf("FilePath = %q, want %q", result.FilePath, path)
	}
}

func TestParseFileMissing(t *testing.T) {
	p := New()
	defer p.Close()

	_, err := p.ParseFile(filepath.Join(t.TempDir(), "missing.cs"))
	if _, ok := err.(*FileReadError); !ok {
		t.Fatalf("expected *FileReadError, got %T: %v", err, err)
	}
}

func TestParseErrorCarriesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.cs")
	if err := os.WriteFile(path, []byte("class }{\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p := New()
	defer p.Close()

	_, err := p.ParseFile(path)
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if pe.File != path {
		t.Errorf("ParseError.File = %q, want %q", pe.File, path)
	}
}
