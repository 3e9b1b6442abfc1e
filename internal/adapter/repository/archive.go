package repository

import (
	"context"
	"encoding/json"

	"wolfeye-backend/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// ArchiveRepo mirrors finished transactions into Postgres. The in-memory
// store stays authoritative; this is a best-effort copy for inspection, so
// a nil pool disables it and write errors are left to the caller to log.
type ArchiveRepo struct {
	pool *pgxpool.Pool
}

func NewArchiveRepo(pool *pgxpool.Pool) *ArchiveRepo {
	return &ArchiveRepo{pool: pool}
}

func (r *ArchiveRepo) Save(ctx context.Context, t *domain.Transaction) error {
	if r.pool == nil {
		return nil
	}

	resumesB, err := json.Marshal(t.Resumes)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO analysis_transactions (id, name, status, created_at, completed_at, resumes)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, status = EXCLUDED.status, completed_at = EXCLUDED.completed_at, resumes = EXCLUDED.resumes`,
		t.ID, t.Name, t.Status, t.CreatedAt, t.CompletedAt, resumesB)

	return err
}
