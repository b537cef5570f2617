// Package session persists conversation snapshots. The primary store
// is a local sqlite database; JSON export/import covers sharing a
// single conversation as a file.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"compass/internal/debug"
	"compass/internal/errors"
	"compass/internal/tree"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	name            TEXT NOT NULL UNIQUE,
	current_node_id TEXT NOT NULL DEFAULT '',
	created_at      TEXT NOT NULL,
	updated_at      TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS nodes (
	session_id      INTEGER NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	id              TEXT NOT NULL,
	parent_id       TEXT NOT NULL DEFAULT '',
	type            TEXT NOT NULL,
	speaker         TEXT NOT NULL DEFAULT '',
	content         TEXT NOT NULL DEFAULT '',
	sequence_number INTEGER NOT NULL,
	PRIMARY KEY (session_id, id)
);
CREATE INDEX IF NOT EXISTS idx_nodes_session_seq ON nodes(session_id, sequence_number);
`

// Info describes one saved session.
type Info struct {
	Name      string
	NodeCount int
	UpdatedAt time.Time
}

// Store is a sqlite-backed session archive.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the session database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, storeErr("open session database", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, storeErr("ping session database", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, storeErr("create session schema", err)
	}
	debug.Logf("session: opened database at %s", path)
	return &Store{db: db, path: path}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file the store was opened on.
func (s *Store) Path() string {
	return s.path
}

// Save writes the snapshot under name, replacing any previous contents
// of that session. The write is transactional.
func (s *Store) Save(ctx context.Context, name string, snap tree.Snapshot) (err error) {
	if name == "" {
		return errors.New(errors.CodeSessionStore, "session name must not be empty", nil)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin save", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (name, current_node_id, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET current_node_id = excluded.current_node_id,
			updated_at = excluded.updated_at`,
		name, snap.CurrentNodeID, now, now); err != nil {
		return storeErr("upsert session", err)
	}

	var sessionID int64
	if err = tx.QueryRowContext(ctx,
		`SELECT id FROM sessions WHERE name = ?`, name).Scan(&sessionID); err != nil {
		return storeErr("resolve session id", err)
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM nodes WHERE session_id = ?`, sessionID); err != nil {
		return storeErr("clear previous nodes", err)
	}
	for _, n := range snap.Nodes {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO nodes (session_id, id, parent_id, type, speaker, content, sequence_number)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			sessionID, n.ID, n.ParentID, n.Type, n.Speaker, n.Content, n.Seq); err != nil {
			return storeErr("insert node", err)
		}
	}
	if err = tx.Commit(); err != nil {
		return storeErr("commit save", err)
	}
	debug.Logf("session: saved %q with %d nodes", name, len(snap.Nodes))
	return nil
}

// Load reads the named session's snapshot, nodes ordered by sequence.
func (s *Store) Load(ctx context.Context, name string) (tree.Snapshot, error) {
	var snap tree.Snapshot
	var sessionID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, current_node_id FROM sessions WHERE name = ?`, name).
		Scan(&sessionID, &snap.CurrentNodeID)
	if err == sql.ErrNoRows {
		return tree.Snapshot{}, errors.New(errors.CodeNotFound,
			fmt.Sprintf("session %q not found", name), nil)
	}
	if err != nil {
		return tree.Snapshot{}, storeErr("load session", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, parent_id, type, speaker, content, sequence_number
		FROM nodes WHERE session_id = ? ORDER BY sequence_number`, sessionID)
	if err != nil {
		return tree.Snapshot{}, storeErr("load nodes", err)
	}
	defer rows.Close()

	for rows.Next() {
		var n tree.SnapshotNode
		if err := rows.Scan(&n.ID, &n.ParentID, &n.Type, &n.Speaker, &n.Content, &n.Seq); err != nil {
			return tree.Snapshot{}, storeErr("scan node", err)
		}
		snap.Nodes = append(snap.Nodes, n)
	}
	if err := rows.Err(); err != nil {
		return tree.Snapshot{}, storeErr("iterate nodes", err)
	}
	return snap, nil
}

// List returns every saved session, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.name, s.updated_at, COUNT(n.id)
		FROM sessions s LEFT JOIN nodes n ON n.session_id = s.id
		GROUP BY s.id ORDER BY s.updated_at DESC`)
	if err != nil {
		return nil, storeErr("list sessions", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var info Info
		var updated string
		if err := rows.Scan(&info.Name, &updated, &info.NodeCount); err != nil {
			return nil, storeErr("scan session", err)
		}
		if ts, err := time.Parse(time.RFC3339, updated); err == nil {
			info.UpdatedAt = ts
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate sessions", err)
	}
	return infos, nil
}

// Delete removes a saved session and its nodes.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE name = ?`, name)
	if err != nil {
		return storeErr("delete session", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.New(errors.CodeNotFound,
			fmt.Sprintf("session %q not found", name), nil)
	}
	// Cascades require the pragma; clean up explicitly as well so a
	// connection opened without it cannot strand node rows.
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM nodes WHERE session_id NOT IN (SELECT id FROM sessions)`); err != nil {
		return storeErr("delete session nodes", err)
	}
	return nil
}

func storeErr(msg string, err error) error {
	return errors.New(errors.CodeSessionStore, msg, err)
}
