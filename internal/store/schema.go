package store

// schemaSQL defines the SQLite schema for the surface index.
// Tables:
//   - projects: one row per mapped project unit
//   - files: one row per non-empty source file
//   - members: the flattened member forest, parent-linked, ordered by ordinal
const schemaSQL = `
CREATE TABLE IF NOT EXISTS projects (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS files (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id INTEGER NOT NULL REFERENCES projects(id),
    path TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS members (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    file_id INTEGER NOT NULL REFERENCES files(id),
    parent_id INTEGER REFERENCES members(id),
    ordinal INTEGER NOT NULL,
    kind TEXT NOT NULL,
    signature TEXT NOT NULL,
    line INTEGER NOT NULL DEFAULT 0,
    static INTEGER NOT NULL DEFAULT 0,
    doc TEXT NOT NULL DEFAULT '',
    base_types TEXT NOT NULL DEFAULT '',
    attributes TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_files_project ON files(project_id);
CREATE INDEX IF NOT EXISTS idx_members_file ON members(file_id);
CREATE INDEX IF NOT EXISTS idx_members_kind ON members(kind);
`

// initSchema creates the tables and indexes if they don't exist.
func (s *Store) initSchema() error {
	_, err := s.db.Exec(schemaSQL)
	return err
}
