// Package store provides an in-memory SQLite journal of pool transitions.
//
// The journal lives only as long as the process; nothing is written to disk.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/cryptosave/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// memoryDSN keeps the database private to this connection.
const memoryDSN = ":memory:"

// Journal records pool events for the current session.
type Journal struct {
	db *sql.DB
}

// Open creates an empty in-memory journal.
func Open() (*Journal, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}
	// Each new connection to :memory: would see a different database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close releases the database; all events are discarded.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends an event and returns it with its sequence number set.
// A zero At is replaced with the current time.
func (j *Journal) Record(ctx context.Context, e model.Event) (model.Event, error) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	var memberID sql.NullString
	if e.MemberID != uuid.Nil {
		memberID = sql.NullString{String: e.MemberID.String(), Valid: true}
	}

	res, err := j.db.ExecContext(ctx, `INSERT INTO events
		(week, kind, member_id, member_name, tier, amount, at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Week, string(e.Kind), memberID, e.MemberName, e.Tier, e.Amount,
		e.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return e, fmt.Errorf("recording %s event: %w", e.Kind, err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return e, fmt.Errorf("reading event seq: %w", err)
	}
	e.Seq = seq
	return e, nil
}

// Recent returns up to limit events, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]model.Event, error) {
	rows, err := j.db.QueryContext(ctx, `SELECT
		seq, week, kind, member_id, member_name, tier, amount, at
		FROM events ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		var kind, at string
		var memberID, memberName sql.NullString
		var tier sql.NullInt64

		if err := rows.Scan(&e.Seq, &e.Week, &kind, &memberID, &memberName, &tier, &e.Amount, &at); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}

		e.Kind = model.EventKind(kind)
		if memberID.Valid {
			e.MemberID, _ = uuid.Parse(memberID.String)
		}
		if memberName.Valid {
			e.MemberName = memberName.String
		}
		if tier.Valid {
			e.Tier = int(tier.Int64)
		}
		e.At, _ = time.Parse(time.RFC3339Nano, at)

		events = append(events, e)
	}
	return events, rows.Err()
}

// Count returns the number of recorded events.
func (j *Journal) Count(ctx context.Context) (int, error) {
	var n int
	err := j.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&n)
	return n, err
}
