package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteAudit implements the AuditLog interface on a local SQLite
// database. It mirrors the relational layout of the original game
// database: users and per-choice records keyed by session id.
type SQLiteAudit struct {
	db     *sql.DB
	logger *slog.Logger
}

// Ensure SQLiteAudit implements AuditLog interface
var _ AuditLog = (*SQLiteAudit)(nil)

const auditSchema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS choices (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT,
	user_choice TEXT,
	ai_response TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_choices_session ON choices(session_id);
`

// OpenSQLiteAudit opens (or creates) the audit database at path and
// applies the schema. Use ":memory:" for tests.
func OpenSQLiteAudit(path string, logger *slog.Logger) (*SQLiteAudit, error) {
	dsn := path
	if path != ":memory:" {
		dsn += "?_journal_mode=WAL&_busy_timeout=5000"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping audit db: %w", err)
	}

	if _, err := db.Exec(auditSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply audit schema: %w", err)
	}

	return &SQLiteAudit{db: db, logger: logger}, nil
}

func (a *SQLiteAudit) Close() error {
	if err := a.db.Close(); err != nil {
		a.logger.Error("Failed to close audit db", "error", err)
		return err
	}
	a.logger.Info("Audit db closed")
	return nil
}

func (a *SQLiteAudit) CreateUser(ctx context.Context, username string) (int64, error) {
	res, err := a.db.ExecContext(ctx,
		"INSERT INTO users (username) VALUES (?)", username)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read user id: %w", err)
	}
	return id, nil
}

func (a *SQLiteAudit) AppendChoice(ctx context.Context, rec *ChoiceRecord) error {
	res, err := a.db.ExecContext(ctx,
		"INSERT INTO choices (session_id, user_choice, ai_response) VALUES (?, ?, ?)",
		rec.SessionID.String(), rec.UserChoice, rec.AIResponse)
	if err != nil {
		return fmt.Errorf("failed to insert choice: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

func (a *SQLiteAudit) ListChoices(ctx context.Context, sessionID uuid.UUID) ([]ChoiceRecord, error) {
	rows, err := a.db.QueryContext(ctx,
		"SELECT id, session_id, user_choice, ai_response, created_at FROM choices WHERE session_id = ? ORDER BY id ASC",
		sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	choices := make([]ChoiceRecord, 0)
	for rows.Next() {
		var rec ChoiceRecord
		var sid string
		var createdAt string
		if err := rows.Scan(&rec.ID, &sid, &rec.UserChoice, &rec.AIResponse, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan choice row: %w", err)
		}
		if id, err := uuid.Parse(sid); err == nil {
			rec.SessionID = id
		}
		ts, err := parseAuditTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse choice timestamp: %w", err)
		}
		rec.CreatedAt = ts
		choices = append(choices, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate choice rows: %w", err)
	}
	return choices, nil
}

// parseAuditTime reads a CURRENT_TIMESTAMP column value. The sqlite
// driver stores these in RFC3339; the space-separated layout covers
// rows written by other tools.
func parseAuditTime(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02 15:04:05", raw)
}
