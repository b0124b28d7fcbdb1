package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS cars (
    collection           TEXT NOT NULL,
    position             INTEGER NOT NULL,
    manufacturer         TEXT NOT NULL,
    model                TEXT NOT NULL,
    year                 INTEGER NOT NULL,
    speed                REAL NOT NULL,
    handling             REAL NOT NULL,
    acceleration         REAL NOT NULL,
    braking              REAL NOT NULL,
    drive_type           TEXT NOT NULL,
    price                INTEGER NOT NULL,
    PRIMARY KEY (collection, position)
);

CREATE TABLE IF NOT EXISTS account (
    id                   INTEGER PRIMARY KEY CHECK (id = 1),
    balance              TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id           TEXT NOT NULL,
    seq                  INTEGER NOT NULL,
    recorded_at          TEXT NOT NULL,
    description          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
`
