package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/i474232898/weather-lookup/internal/weather"
)

// Backend names a database engine for the preference store.
type Backend string

const (
	SQLiteBackend     Backend = "sqlite"
	MySQLBackend      Backend = "mysql"
	PostgreSQLBackend Backend = "postgres"
)

const preferenceTable = "user_preference_cities"

// maxPreferenceField bounds session ids and city names, in runes.
const maxPreferenceField = 100

// SQLPreferenceStore keeps each session's saved cities in a relational
// database. It implements weather.PreferenceStore.
type SQLPreferenceStore struct {
	db      *sql.DB
	backend Backend
}

var _ weather.PreferenceStore = (*SQLPreferenceStore)(nil) // Compile-time check

// OpenPreferenceStore opens the database for backend and creates the schema.
//
// dsn formats:
//   - sqlite: file path or ":memory:"
//   - mysql: user:password@tcp(host:port)/dbname
//   - postgres: host=localhost port=5432 user=postgres dbname=mydb
func OpenPreferenceStore(ctx context.Context, backend Backend, dsn string) (*SQLPreferenceStore, error) {
	var driverName string
	switch backend {
	case SQLiteBackend:
		driverName = "sqlite"
	case MySQLBackend:
		driverName = "mysql"
	case PostgreSQLBackend:
		driverName = "pgx"
	default:
		return nil, fmt.Errorf("unsupported preference backend: %s. Must be sqlite, mysql, or postgres", backend)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s preference store: %w", backend, err)
	}
	if backend == SQLiteBackend {
		// A single connection avoids "database is locked" errors and keeps
		// ":memory:" databases alive for the lifetime of the store.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to %s preference store: %w", backend, err)
	}

	s := &SQLPreferenceStore{db: db, backend: backend}
	if _, err := db.ExecContext(ctx, s.createTableQuery()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create table %s: %w", preferenceTable, err)
	}
	return s, nil
}

func (s *SQLPreferenceStore) createTableQuery() string {
	switch s.backend {
	case MySQLBackend:
		return `CREATE TABLE IF NOT EXISTS ` + preferenceTable + ` (
			session_id VARCHAR(100) NOT NULL,
			city VARCHAR(100) NOT NULL,
			position INT NOT NULL,
			PRIMARY KEY (session_id, city)
		)`
	default: // SQLite and PostgreSQL
		return `CREATE TABLE IF NOT EXISTS ` + preferenceTable + ` (
			session_id TEXT NOT NULL,
			city TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (session_id, city)
		)`
	}
}

// bind rewrites ? placeholders to $n for PostgreSQL.
func (s *SQLPreferenceStore) bind(query string) string {
	if s.backend != PostgreSQLBackend {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SQLPreferenceStore) insertIgnoreQuery() string {
	switch s.backend {
	case MySQLBackend:
		return `INSERT IGNORE INTO ` + preferenceTable + ` (session_id, city, position) VALUES (?, ?, ?)`
	default:
		return s.bind(`INSERT INTO ` + preferenceTable + ` (session_id, city, position) VALUES (?, ?, ?) ON CONFLICT (session_id, city) DO NOTHING`)
	}
}

// GetUserPreferences returns the session's cities in the order they were
// added, or nil when the session has none.
func (s *SQLPreferenceStore) GetUserPreferences(ctx context.Context, sessionID string) (*weather.Preferences, error) {
	rows, err := s.db.QueryContext(ctx,
		s.bind(`SELECT city FROM `+preferenceTable+` WHERE session_id = ? ORDER BY position`), sessionID)
	if err != nil {
		return nil, fmt.Errorf("query preferences: %w", err)
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	if len(cities) == 0 {
		return nil, nil
	}
	return &weather.Preferences{SessionID: sessionID, Cities: cities}, nil
}

// AddCity appends city (lowercased) to the session, creating the session if
// needed. Adding a city twice keeps the original position.
func (s *SQLPreferenceStore) AddCity(ctx context.Context, sessionID, city string) (*weather.Preferences, error) {
	city = strings.ToLower(strings.TrimSpace(city))
	if err := validatePreferenceInput(sessionID, city); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin add city: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	row := tx.QueryRowContext(ctx,
		s.bind(`SELECT COALESCE(MAX(position), -1) + 1 FROM `+preferenceTable+` WHERE session_id = ?`), sessionID)
	if err := row.Scan(&next); err != nil {
		return nil, fmt.Errorf("next position: %w", err)
	}
	if _, err := tx.ExecContext(ctx, s.insertIgnoreQuery(), sessionID, city, next); err != nil {
		return nil, fmt.Errorf("insert city: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit add city: %w", err)
	}

	return s.getAfterWrite(ctx, sessionID)
}

// RemoveCity deletes city from the session. It fails with a NotFound error
// when the session or the city does not exist.
func (s *SQLPreferenceStore) RemoveCity(ctx context.Context, sessionID, city string) (*weather.Preferences, error) {
	const op = "preferences.remove"

	city = strings.ToLower(strings.TrimSpace(city))
	if err := validatePreferenceInput(sessionID, city); err != nil {
		return nil, err
	}

	prefs, err := s.GetUserPreferences(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		return nil, weather.NewError(weather.KindNotFound, op, fmt.Sprintf("session with ID %s not found", sessionID), nil)
	}

	res, err := s.db.ExecContext(ctx,
		s.bind(`DELETE FROM `+preferenceTable+` WHERE session_id = ? AND city = ?`), sessionID, city)
	if err != nil {
		return nil, fmt.Errorf("delete city: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, weather.NewError(weather.KindNotFound, op, fmt.Sprintf("city %q not found in preferences", city), nil)
	}

	updated, err := s.GetUserPreferences(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return &weather.Preferences{SessionID: sessionID, Cities: []string{}}, nil
	}
	return updated, nil
}

func (s *SQLPreferenceStore) getAfterWrite(ctx context.Context, sessionID string) (*weather.Preferences, error) {
	prefs, err := s.GetUserPreferences(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		return nil, fmt.Errorf("preferences for session %s vanished after write", sessionID)
	}
	return prefs, nil
}

// Close closes the underlying database.
func (s *SQLPreferenceStore) Close() error {
	return s.db.Close()
}

func validatePreferenceInput(sessionID, city string) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(sessionID)); n < 1 || n > maxPreferenceField {
		return weather.Validationf("sessionId must be between 1 and %d characters", maxPreferenceField)
	}
	if n := utf8.RuneCountInString(city); n < 1 || n > maxPreferenceField {
		return weather.Validationf("city must be between 1 and %d characters", maxPreferenceField)
	}
	return nil
}
