package manifest

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"framescribe/internal/archive"
)

// Store is the transient work-item manifest. Work items carry time-boxed
// signed URLs, so they are kept in a local sqlite file for the lifetime of a
// job and purged by the assembler, never written to the permanent ledger.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS work_items (
	job_id       TEXT NOT NULL,
	global_index INTEGER NOT NULL,
	filename     TEXT NOT NULL,
	base_key     TEXT NOT NULL,
	crop_key     TEXT NOT NULL,
	signed_url   TEXT NOT NULL,
	PRIMARY KEY (job_id, global_index)
);
`

func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open manifest db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init manifest schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the manifest for a job.
func (s *Store) Save(ctx context.Context, jobID uuid.UUID, items []archive.WorkItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin manifest tx: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM work_items WHERE job_id = ?`, jobID.String()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear manifest: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO work_items (job_id, global_index, filename, base_key, crop_key, signed_url) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare manifest insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()
	for _, it := range items {
		if _, err := stmt.ExecContext(ctx, jobID.String(), it.GlobalIndex, it.Filename, it.BaseKey, it.CropKey, it.SignedURL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert manifest item %d: %w", it.GlobalIndex, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit manifest: %w", err)
	}
	s.logger.Debug("manifest.saved", "job_id", jobID, "items", len(items))
	return nil
}

// Load returns the manifest ordered by global index; empty slice if absent.
func (s *Store) Load(ctx context.Context, jobID uuid.UUID) ([]archive.WorkItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT global_index, filename, base_key, crop_key, signed_url FROM work_items WHERE job_id = ? ORDER BY global_index`,
		jobID.String())
	if err != nil {
		return nil, fmt.Errorf("query manifest: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []archive.WorkItem
	for rows.Next() {
		var it archive.WorkItem
		if err := rows.Scan(&it.GlobalIndex, &it.Filename, &it.BaseKey, &it.CropKey, &it.SignedURL); err != nil {
			return nil, fmt.Errorf("scan manifest row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate manifest: %w", err)
	}
	return items, nil
}

// Purge drops a job's manifest once its results are final.
func (s *Store) Purge(ctx context.Context, jobID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM work_items WHERE job_id = ?`, jobID.String())
	if err != nil {
		return fmt.Errorf("purge manifest: %w", err)
	}
	return nil
}
