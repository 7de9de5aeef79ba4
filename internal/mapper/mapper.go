// Package mapper runs the per-file surface pipeline for every discovered
// project: parse, walk, aggregate. Files are processed one at a time and a
// file's results are folded into the run only after its traversal fully
// completes, so a parse failure is isolated to that file.
package mapper

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/apimap/apimap/internal/discover"
	"github.com/apimap/apimap/internal/parser"
	"github.com/apimap/apimap/internal/surface"
)

// Options configures a mapping run.
type Options struct {
	// Root is the path projects are discovered under.
	Root string
	// Excludes are doublestar globs applied during discovery.
	Excludes []string
	// Report receives per-file diagnostics (parse failures, skips).
	// Nil discards them.
	Report io.Writer
}

// ProjectMap is the in-memory surface map of one project unit.
type ProjectMap struct {
	Name    string
	Files   []*surface.FileMap
	Summary surface.Summary
}

// Run maps every project under the root. Projects whose files all parse
// empty or fail yield no ProjectMap. The returned run summary aggregates
// across projects.
func Run(opts Options) ([]ProjectMap, surface.Summary, error) {
	projects, err := discover.Projects(opts.Root, opts.Excludes)
	if err != nil {
		return nil, surface.Summary{}, err
	}

	p := parser.New()
	defer p.Close()

	var out []ProjectMap
	var run surface.Summary
	for _, proj := range projects {
		pm := mapProject(p, proj, opts.Report)
		if pm == nil {
			continue
		}
		out = append(out, *pm)
		run = run.Merge(pm.Summary)
		run.Projects++
	}
	return out, run, nil
}

// mapProject parses and walks every source file of one project. Returns nil
// when no file yields members.
func mapProject(p *parser.Parser, proj discover.Project, report io.Writer) *ProjectMap {
	var files []*surface.FileMap
	for _, path := range proj.Files {
		result, err := p.ParseFile(path)
		if err != nil {
			if report != nil {
				fmt.Fprintf(report, "skipping %s: %v\n", path, err)
			}
			continue
		}

		rel, err := filepath.Rel(proj.Root, path)
		if err != nil {
			rel = path
		}
		fm := surface.NewWalker(result).FileMap(filepath.ToSlash(rel))
		result.Close()

		if fm != nil {
			files = append(files, fm)
		}
	}

	if len(files) == 0 {
		return nil
	}
	return &ProjectMap{
		Name:    proj.Name,
		Files:   files,
		Summary: surface.Count(files),
	}
}
