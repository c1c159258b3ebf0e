package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS events (
    seq          INTEGER PRIMARY KEY AUTOINCREMENT,
    week         INTEGER NOT NULL,
    kind         TEXT NOT NULL,
    member_id    TEXT,
    member_name  TEXT,
    tier         INTEGER,
    amount       INTEGER NOT NULL DEFAULT 0,
    at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_member ON events(member_id);
`
