// Package sqlite provides a SQLite-backed implementation of
// journal.Repository.
//
// WAL mode is enabled on Open so readers never block the writer: HTTP
// request goroutines append entries while an operator may be querying
// the file with the sqlite3 CLI.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"foodcourt/internal/journal"

	// Register the pure-Go SQLite driver. modernc.org/sqlite needs no
	// CGO, which keeps the Docker build on plain Alpine.
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS event_journal (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Logical topic: menu_updates or order_updates.
    queue       TEXT NOT NULL,

    -- Event action, e.g. "order_received".
    action      TEXT NOT NULL,

    -- Id of the order or menu the event concerns.
    entity_id   TEXT NOT NULL,

    -- Exact JSON body handed to the publisher.
    payload     TEXT NOT NULL,

    -- W3C trace/span ids of the request that produced the event.
    trace_id    TEXT NOT NULL DEFAULT '',
    span_id     TEXT NOT NULL DEFAULT '',

    -- RFC3339 stored as TEXT, the SQLite idiom.
    created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_event_journal_entity ON event_journal(entity_id, created_at);
CREATE INDEX IF NOT EXISTS idx_event_journal_trace ON event_journal(trace_id);
`

// Repository is the SQLite implementation of journal.Repository.
type Repository struct {
	db *sql.DB
}

var _ journal.Repository = (*Repository)(nil)

// Open opens (or creates) the journal database at path and applies the
// schema. busy_timeout makes concurrent appends wait for the write lock
// instead of failing immediately.
func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	// Use "sqlite", not "sqlite3", for the modernc driver.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("journal: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("journal: apply schema: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save appends one entry. Safe for concurrent use.
func (r *Repository) Save(ctx context.Context, e *journal.Entry) error {
	const q = `
		INSERT INTO event_journal (queue, action, entity_id, payload, trace_id, span_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		e.Queue,
		e.Action,
		e.EntityID,
		e.Payload,
		e.TraceID,
		e.SpanID,
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("journal: save %s for %q: %w", e.Action, e.EntityID, err)
	}
	return nil
}

// ListByEntity returns all journaled events for one order or menu, oldest
// first. Used by operators; the services only append.
func (r *Repository) ListByEntity(ctx context.Context, entityID string) ([]journal.Entry, error) {
	const q = `
		SELECT queue, action, entity_id, payload, trace_id, span_id, created_at
		FROM   event_journal
		WHERE  entity_id = ?
		ORDER  BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, q, entityID)
	if err != nil {
		return nil, fmt.Errorf("journal: list for %q: %w", entityID, err)
	}
	defer rows.Close()

	var out []journal.Entry
	for rows.Next() {
		var e journal.Entry
		var createdAt string
		if err := rows.Scan(&e.Queue, &e.Action, &e.EntityID, &e.Payload, &e.TraceID, &e.SpanID, &createdAt); err != nil {
			return nil, fmt.Errorf("journal: scan entry: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("journal: parse time %q: %w", createdAt, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
