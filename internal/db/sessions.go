package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/readability-analyzer/internal/types"
)

// CreateSession creates a new session record and returns its ID
func (db *DB) CreateSession(ctx context.Context) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO sessions DEFAULT VALUES RETURNING id`,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// GetSession retrieves a session by ID, or nil when it does not exist
func (db *DB) GetSession(ctx context.Context, sessionID uuid.UUID) (*Session, error) {
	var s Session
	err := db.pool.QueryRow(ctx,
		`SELECT id, created_at, updated_at FROM sessions WHERE id = $1`,
		sessionID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// DeleteSession removes a session and its zones
func (db *DB) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ListSessionZones retrieves a session's zones in position order
func (db *DB) ListSessionZones(ctx context.Context, sessionID uuid.UUID) ([]StoredZone, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, session_id, position, text, category, created_at
		 FROM session_zones WHERE session_id = $1 ORDER BY position`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list session zones: %w", err)
	}
	defer rows.Close()

	var zones []StoredZone
	for rows.Next() {
		var z StoredZone
		if err := rows.Scan(&z.ID, &z.SessionID, &z.Position, &z.Text, &z.Category, &z.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session zone: %w", err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read session zones: %w", err)
	}
	return zones, nil
}

// ReplaceSessionZones overwrites a session's zone snapshot in a single
// transaction, so a failed write never leaves a partial snapshot behind.
func (db *DB) ReplaceSessionZones(ctx context.Context, sessionID uuid.UUID, zones []types.Zone) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM session_zones WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("failed to clear session zones: %w", err)
	}
	for i, zone := range zones {
		_, err := tx.Exec(ctx,
			`INSERT INTO session_zones (session_id, position, text, category)
			 VALUES ($1, $2, $3, $4)`,
			sessionID, i, zone.Text, string(zone.Category),
		)
		if err != nil {
			return fmt.Errorf("failed to insert session zone %d: %w", i, err)
		}
	}
	if _, err := tx.Exec(ctx, `UPDATE sessions SET updated_at = NOW() WHERE id = $1`, sessionID); err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit session zones: %w", err)
	}
	return nil
}
