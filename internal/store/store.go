// Package store provides an optional SQLite-backed index of surface maps.
// The index holds the same forest the artifacts do, flattened into
// parent-linked member rows so downstream consumers can query the surface
// with SQL instead of reparsing artifacts.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/apimap/apimap/internal/surface"
)

// Store manages the surface index database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the index database at the given path and
// initializes the schema.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open index db: %w", err)
	}

	// WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveProject replaces the indexed surface of one project. The whole project
// is written in a single transaction so a failure never leaves a partial
// index behind.
func (s *Store) SaveProject(name string, files []*surface.FileMap) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if err := deleteProject(tx, name); err != nil {
		return err
	}

	res, err := tx.Exec("INSERT INTO projects (name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("insert project %s: %w", name, err)
	}
	projectID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("project id: %w", err)
	}

	for _, f := range files {
		res, err := tx.Exec(
			"INSERT INTO files (project_id, path) VALUES (?, ?)",
			projectID, f.Path)
		if err != nil {
			return fmt.Errorf("insert file %s: %w", f.Path, err)
		}
		fileID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("file id: %w", err)
		}

		for i, m := range f.Members {
			if err := insertMember(tx, fileID, nil, i, m); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// insertMember writes one member row and recurses into its children.
func insertMember(tx *sql.Tx, fileID int64, parentID *int64, ordinal int, m *surface.Member) error {
	res, err := tx.Exec(`
INSERT INTO members (file_id, parent_id, ordinal, kind, signature, line, static, doc, base_types, attributes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fileID, parentID, ordinal, string(m.Kind), m.Signature, m.Line,
		boolToInt(m.Static), m.Doc,
		strings.Join(m.BaseTypes, ","), strings.Join(m.Attributes, ","))
	if err != nil {
		return fmt.Errorf("insert member %s: %w", m.Signature, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("member id: %w", err)
	}
	for i, child := range m.Children {
		if err := insertMember(tx, fileID, &id, i, child); err != nil {
			return err
		}
	}
	return nil
}

// deleteProject removes a project and its files and members.
func deleteProject(tx *sql.Tx, name string) error {
	_, err := tx.Exec(`
DELETE FROM members WHERE file_id IN (
  SELECT f.id FROM files f JOIN projects p ON f.project_id = p.id WHERE p.name = ?
);
`, name)
	if err != nil {
		return fmt.Errorf("delete members of %s: %w", name, err)
	}
	if _, err := tx.Exec(
		"DELETE FROM files WHERE project_id IN (SELECT id FROM projects WHERE name = ?)",
		name); err != nil {
		return fmt.Errorf("delete files of %s: %w", name, err)
	}
	if _, err := tx.Exec("DELETE FROM projects WHERE name = ?", name); err != nil {
		return fmt.Errorf("delete project %s: %w", name, err)
	}
	return nil
}

// CountMembers returns the number of indexed members for a project.
func (s *Store) CountMembers(project string) (int, error) {
	row := s.db.QueryRow(`
SELECT COUNT(*) FROM members m
JOIN files f ON m.file_id = f.id
JOIN projects p ON f.project_id = p.id
WHERE p.name = ?`, project)

	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return n, nil
}

// ProjectNames returns the names of all indexed projects.
func (s *Store) ProjectNames() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM projects ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan project name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
