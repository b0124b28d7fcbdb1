// Package store persists marketplace state in a SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/automarket/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

var (
	// ErrUnavailable wraps every I/O failure of the store.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrUnsupportedKind is returned for collections that are never persisted.
	ErrUnsupportedKind = errors.New("collection kind is not persisted")
)

// FileName is the database file created inside the data directory.
const FileName = "automarket.db"

// Store is the SQLite-backed persistence layer.
type Store struct {
	db *sql.DB
}

// Path returns the database path inside dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// Open opens or creates the database at dbPath.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: creating data dir: %w", ErrUnavailable, err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening db: %w", ErrUnavailable, err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: creating schema: %w", ErrUnavailable, err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
}

func persisted(kind model.Kind) error {
	switch kind {
	case model.KindDefaultMarket, model.KindUserMarket, model.KindGarage:
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
}

// LoadCollection reads a collection in stored order. A collection that was
// never saved loads empty.
func (s *Store) LoadCollection(kind model.Kind) (*model.Collection, error) {
	if err := persisted(kind); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT
		manufacturer, model, year, speed, handling, acceleration, braking, drive_type, price
		FROM cars WHERE collection = ? ORDER BY position`, kind.String())
	if err != nil {
		return nil, unavailable("loading "+kind.String(), err)
	}
	defer func() { _ = rows.Close() }()

	c := model.NewCollection(kind)
	for rows.Next() {
		var car model.Car
		var drive string
		err := rows.Scan(&car.Manufacturer, &car.Model, &car.Year,
			&car.Speed, &car.Handling, &car.Acceleration, &car.Braking, &drive, &car.Price)
		if err != nil {
			return nil, unavailable("reading "+kind.String(), err)
		}
		car.DriveType, err = model.ParseDriveType(drive)
		if err != nil {
			return nil, unavailable("reading "+kind.String(), err)
		}
		c.Add(car)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("reading "+kind.String(), err)
	}
	return c, nil
}

// SaveCollection replaces the stored contents of a collection in one transaction.
func (s *Store) SaveCollection(kind model.Kind, c *model.Collection) error {
	if err := persisted(kind); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return unavailable("saving "+kind.String(), err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM cars WHERE collection = ?", kind.String()); err != nil {
		return unavailable("saving "+kind.String(), err)
	}

	stmt, err := tx.Prepare(`INSERT INTO cars
		(collection, position, manufacturer, model, year, speed, handling, acceleration, braking, drive_type, price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return unavailable("saving "+kind.String(), err)
	}
	defer func() { _ = stmt.Close() }()

	for i, car := range c.All() {
		_, err := stmt.Exec(kind.String(), i, car.Manufacturer, car.Model, car.Year,
			car.Speed, car.Handling, car.Acceleration, car.Braking, string(car.DriveType), car.Price)
		if err != nil {
			return unavailable("saving "+kind.String(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return unavailable("saving "+kind.String(), err)
	}
	return nil
}

// LoadAccount reads the stored account. found is false when none was ever saved.
func (s *Store) LoadAccount() (acct *model.Account, found bool, err error) {
	var raw string
	err = s.db.QueryRow("SELECT balance FROM account WHERE id = 1").Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, unavailable("loading account", err)
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, false, unavailable("parsing balance", err)
	}
	acct, err = model.NewAccount(balance)
	if err != nil {
		return nil, false, unavailable("loading account", err)
	}
	return acct, true, nil
}

// SaveAccount stores the balance.
func (s *Store) SaveAccount(a *model.Account) error {
	_, err := s.db.Exec(`INSERT INTO account (id, balance, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET balance = excluded.balance, updated_at = excluded.updated_at`,
		a.Balance().String(), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return unavailable("saving account", err)
	}
	return nil
}

// StoredEvent is an event together with the session that recorded it.
type StoredEvent struct {
	SessionID string
	model.Event
}

// AppendEvents stores events for a session.
func (s *Store) AppendEvents(sessionID string, events []model.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return unavailable("saving events", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, ev := range events {
		_, err := tx.Exec(`INSERT INTO events (session_id, seq, recorded_at, description)
			VALUES (?, ?, ?, ?)`,
			sessionID, ev.Seq, ev.At.UTC().Format(time.RFC3339Nano), ev.Description)
		if err != nil {
			return unavailable("saving events", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return unavailable("saving events", err)
	}
	return nil
}

// LoadEvents returns up to limit of the most recent events, oldest first.
// A limit of zero or less returns everything.
func (s *Store) LoadEvents(limit int) ([]StoredEvent, error) {
	query := `SELECT session_id, seq, recorded_at, description FROM events ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, unavailable("loading events", err)
	}
	defer func() { _ = rows.Close() }()

	var events []StoredEvent
	for rows.Next() {
		var ev StoredEvent
		var at string
		if err := rows.Scan(&ev.SessionID, &ev.Seq, &at, &ev.Description); err != nil {
			return nil, unavailable("reading events", err)
		}
		ev.At, _ = time.Parse(time.RFC3339Nano, at)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("reading events", err)
	}

	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events, nil
}

// Counts returns the number of stored cars per collection.
func (s *Store) Counts() (map[model.Kind]int, error) {
	rows, err := s.db.Query("SELECT collection, COUNT(*) FROM cars GROUP BY collection")
	if err != nil {
		return nil, unavailable("counting cars", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[model.Kind]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, unavailable("counting cars", err)
		}
		if kind, err := model.ParseKind(name); err == nil {
			counts[kind] = n
		}
	}
	return counts, rows.Err()
}
