package history

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"
)

// Store persists invocation records.
type Store struct {
	db *sql.DB
}

// NewStore creates a store over an open history database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ProtocolRow is one protocol's outcome within an invocation.
type ProtocolRow struct {
	ProtocolID string
	Status     string
	Score      float64
}

// Invocation is one engine run.
type Invocation struct {
	ID           string
	StartedAt    string
	Mode         string
	Total        int
	PassCount    int
	WarningCount int
	FailCount    int
	AverageScore float64
	ManifestPath string
	Protocols    []ProtocolRow
}

// NewInvocationID generates a random invocation identifier.
func NewInvocationID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate invocation id: %w", err)
	}
	return "inv-" + hex.EncodeToString(buf), nil
}

// Record inserts the invocation and its per-protocol rows in one
// transaction.
func (s *Store) Record(ctx context.Context, inv Invocation) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin record invocation: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO invocations(invocation_id, started_at, mode, total, pass_count, warning_count, fail_count, average_score, manifest_path)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.StartedAt, inv.Mode, inv.Total, inv.PassCount, inv.WarningCount, inv.FailCount, inv.AverageScore, inv.ManifestPath); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert invocation: %w", err)
	}
	for _, row := range inv.Protocols {
		if _, err := tx.ExecContext(ctx, `INSERT INTO invocation_protocols(invocation_id, protocol_id, status, score) VALUES(?, ?, ?, ?)`,
			inv.ID, row.ProtocolID, row.Status, row.Score); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert invocation protocol: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit record invocation: %w", err)
	}
	return nil
}

// List returns the most recent invocations, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Invocation, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `SELECT invocation_id, started_at, mode, total, pass_count, warning_count, fail_count, average_score, manifest_path
		FROM invocations ORDER BY started_at DESC, invocation_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list invocations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Invocation
	for rows.Next() {
		var inv Invocation
		if err := rows.Scan(&inv.ID, &inv.StartedAt, &inv.Mode, &inv.Total, &inv.PassCount, &inv.WarningCount, &inv.FailCount, &inv.AverageScore, &inv.ManifestPath); err != nil {
			return nil, fmt.Errorf("scan invocation: %w", err)
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invocations: %w", err)
	}
	return out, nil
}

// RetentionPolicy controls invocation cleanup.
type RetentionPolicy struct {
	KeepLast int
	KeepDays int
}

// PruneResult summarizes a prune operation.
type PruneResult struct {
	Considered int
	Kept       int
	Deleted    int
}

// Prune deletes old invocation records according to the policy. Dry-run
// reports what would be removed without touching the database.
func (s *Store) Prune(ctx context.Context, policy RetentionPolicy, dryRun bool) (PruneResult, error) {
	if policy.KeepLast <= 0 && policy.KeepDays <= 0 {
		return PruneResult{}, nil
	}
	cutoff := time.Time{}
	if policy.KeepDays > 0 {
		cutoff = time.Now().UTC().Add(-time.Duration(policy.KeepDays) * 24 * time.Hour)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT invocation_id, started_at FROM invocations ORDER BY started_at DESC, invocation_id DESC`)
	if err != nil {
		return PruneResult{}, fmt.Errorf("list invocations: %w", err)
	}
	type invRow struct {
		id        string
		startedAt time.Time
		parseErr  error
	}
	var invs []invRow
	for rows.Next() {
		var id, startedAt string
		if err := rows.Scan(&id, &startedAt); err != nil {
			_ = rows.Close()
			return PruneResult{}, fmt.Errorf("scan invocation: %w", err)
		}
		parsed, parseErr := time.Parse(time.RFC3339, startedAt)
		invs = append(invs, invRow{id: id, startedAt: parsed, parseErr: parseErr})
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return PruneResult{}, fmt.Errorf("iterate invocations: %w", err)
	}
	_ = rows.Close()

	res := PruneResult{Considered: len(invs)}
	for idx, row := range invs {
		keep := false
		if policy.KeepLast > 0 && idx < policy.KeepLast {
			keep = true
		}
		if !keep && policy.KeepDays > 0 {
			if row.parseErr != nil {
				keep = true
			} else if row.startedAt.After(cutoff) {
				keep = true
			}
		}
		if keep {
			res.Kept++
			continue
		}
		if !dryRun {
			if _, err := s.db.ExecContext(ctx, `DELETE FROM invocations WHERE invocation_id=?`, row.id); err != nil {
				return res, fmt.Errorf("delete invocation %s: %w", row.id, err)
			}
		}
		res.Deleted++
	}
	return res, nil
}
