// Package discover locates project units and their C# source files under a
// root path. A project unit is defined by a .csproj file: its display name is
// the file base name and its sources are the .cs files beneath its
// directory. A root with no .csproj files falls back to a single implicit
// project covering the whole tree. Build-output directories are never
// entered.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// buildOutputDirs are directory names excluded from every walk.
var buildOutputDirs = map[string]bool{
	"bin": true,
	"obj": true,
}

// Project is one discovered project unit.
type Project struct {
	// Name is the display name used for the artifact file.
	Name string
	// Root is the directory source paths are made relative to.
	Root string
	// Files are the absolute source file paths in discovery order.
	Files []string
}

// NoSourcesError is returned when a root contains no C# source files at all.
type NoSourcesError struct {
	Root string
}

// Error implements the error interface.
func (e *NoSourcesError) Error() string {
	return fmt.Sprintf("no C# source files found under %s", e.Root)
}

// Projects discovers the project units under root. The excludes are
// doublestar globs matched against slash-separated paths relative to root.
func Projects(root string, excludes []string) ([]Project, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("reading root path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path is not a directory: %s", absRoot)
	}

	projectFiles, err := findFiles(absRoot, absRoot, ".csproj", excludes)
	if err != nil {
		return nil, err
	}

	if len(projectFiles) == 0 {
		// No project units: treat the root itself as one implicit project.
		sources, err := findFiles(absRoot, absRoot, ".cs", excludes)
		if err != nil {
			return nil, err
		}
		if len(sources) == 0 {
			return nil, &NoSourcesError{Root: absRoot}
		}
		return []Project{{
			Name:  filepath.Base(absRoot),
			Root:  absRoot,
			Files: sources,
		}}, nil
	}

	var projects []Project
	for _, pf := range projectFiles {
		dir := filepath.Dir(pf)
		sources, err := findFiles(dir, absRoot, ".cs", excludes)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(pf), filepath.Ext(pf))
		projects = append(projects, Project{
			Name:  name,
			Root:  dir,
			Files: sources,
		})
	}
	return projects, nil
}

// findFiles walks dir collecting files with the given extension, skipping
// build-output directories, hidden directories, and excluded paths. Results
// are sorted for reproducible discovery order.
func findFiles(dir, root, ext string, excludes []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path == dir {
				return nil
			}
			name := d.Name()
			if buildOutputDirs[strings.ToLower(name)] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if matchesAny(excludes, rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		if matchesAny(excludes, rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}

// matchesAny reports whether a relative path matches any exclude glob.
// Invalid patterns never match.
func matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}
