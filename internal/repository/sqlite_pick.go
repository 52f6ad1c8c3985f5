package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/wordpick/internal/db"
	"github.com/alexanderramin/wordpick/internal/domain"
)

// SQLitePickRepo implements PickRepo on the pick_history table.
type SQLitePickRepo struct {
	db db.DBTX
}

func NewSQLitePickRepo(db db.DBTX) *SQLitePickRepo {
	return &SQLitePickRepo{db: db}
}

func (r *SQLitePickRepo) Create(ctx context.Context, p *domain.PickRecord) error {
	query := `INSERT INTO pick_history (id, word, category, all_play, picked_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Word,
		p.Category,
		boolToInt(p.AllPlay),
		formatTimestamp(p.PickedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting pick record: %w", err)
	}
	return nil
}

// ListRecent returns up to limit picks, newest first. A limit <= 0 lists all.
func (r *SQLitePickRepo) ListRecent(ctx context.Context, limit int) ([]*domain.PickRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT id, word, category, all_play, picked_at
		FROM pick_history ORDER BY picked_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent picks: %w", err)
	}
	defer rows.Close()
	return r.scanPicks(rows)
}

func (r *SQLitePickRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pick_history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting picks: %w", err)
	}
	return n, nil
}

// scanPicks scans multiple pick records from *sql.Rows.
func (r *SQLitePickRepo) scanPicks(rows *sql.Rows) ([]*domain.PickRecord, error) {
	var picks []*domain.PickRecord
	for rows.Next() {
		var p domain.PickRecord
		var allPlay int
		var pickedAtStr string

		if err := rows.Scan(&p.ID, &p.Word, &p.Category, &allPlay, &pickedAtStr); err != nil {
			return nil, fmt.Errorf("scanning pick row: %w", err)
		}

		pickedAt, err := time.Parse(timestampLayout, pickedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing picked_at: %w", err)
		}
		p.PickedAt = pickedAt
		p.AllPlay = intToBool(allPlay)

		picks = append(picks, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating picks: %w", err)
	}
	return picks, nil
}
