// Package devtools provides optional, off-path diagnostics for a
// running vellum document: a frame tracer that persists per-node
// restyle activity to sqlite for offline inspection.
package devtools

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/tekugo/vellum"
)

// Tracer records one row per restyled node per frame into a sqlite
// database, grounded on the teacher's cmd/dbu — the only place in the
// pack that opens a go-sqlite3 connection — reused here to persist
// trace rows instead of query results.
type Tracer struct {
	db    *sql.DB
	frame int
	err   error
}

// Open creates (or reuses) a sqlite database at path and ensures the
// trace table exists.
func Open(path string) (*Tracer, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	const schema = `
		CREATE TABLE IF NOT EXISTS frame_trace (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			frame         INTEGER NOT NULL,
			node          INTEGER NOT NULL,
			old_style     TEXT,
			new_style     TEXT NOT NULL,
			restyle_hint  INTEGER NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Tracer{db: db}, nil
}

// Close releases the underlying database connection.
func (t *Tracer) Close() error {
	return t.db.Close()
}

// NextFrame advances the tracer's internal frame counter; call once per
// render before recording that frame's restyle activity.
func (t *Tracer) NextFrame() int {
	t.frame++
	return t.frame
}

// Record persists one node's restyle outcome for the current frame.
// old is nil for a node restyled for the first time.
func (t *Tracer) Record(node vellum.NodeID, old, updated *vellum.ComputedStyle, hint vellum.RestyleHint) error {
	var oldSummary sql.NullString
	if old != nil {
		oldSummary = sql.NullString{String: summarize(*old), Valid: true}
	}
	_, err := t.db.Exec(
		`INSERT INTO frame_trace (frame, node, old_style, new_style, restyle_hint) VALUES (?, ?, ?, ?, ?)`,
		t.frame, uint32(node), oldSummary, summarize(*updated), uint8(hint),
	)
	return err
}

// Observe implements vellum.RestyleObserver, so a *Tracer can be passed
// directly to vellum.RunFrameObserved. Write failures are swallowed
// here (tracing is a diagnostics side channel, not load-bearing) and
// kept on Err for the caller to check once per frame.
func (t *Tracer) Observe(node vellum.NodeID, old, updated *vellum.ComputedStyle, hint vellum.RestyleHint) {
	if err := t.Record(node, old, updated, hint); err != nil {
		t.err = err
	}
}

// Err returns the most recent write error encountered by Observe, if
// any.
func (t *Tracer) Err() error {
	return t.err
}

func summarize(s vellum.ComputedStyle) string {
	return fmt.Sprintf("display=%v color=%v bg=%v w=%v h=%v", s.Display, s.Color, s.BackgroundColor, s.Width, s.Height)
}

// FrameRow is one persisted trace entry, as read back by Frames.
type FrameRow struct {
	Frame       int
	Node        vellum.NodeID
	OldStyle    string
	NewStyle    string
	RestyleHint vellum.RestyleHint
}

// Frames returns every trace row for the given frame number, in
// insertion order, for a devtools panel or offline script to render.
func (t *Tracer) Frames(frame int) ([]FrameRow, error) {
	rows, err := t.db.Query(
		`SELECT frame, node, old_style, new_style, restyle_hint FROM frame_trace WHERE frame = ? ORDER BY id`,
		frame,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FrameRow
	for rows.Next() {
		var r FrameRow
		var node uint32
		var old sql.NullString
		var hint uint8
		if err := rows.Scan(&r.Frame, &node, &old, &r.NewStyle, &hint); err != nil {
			return nil, err
		}
		r.Node = vellum.NodeID(node)
		r.OldStyle = old.String
		r.RestyleHint = vellum.RestyleHint(hint)
		out = append(out, r)
	}
	return out, rows.Err()
}
