package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// RunMigrations prepares the transaction archive schema on startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	migrations := []Migration{
		{
			Name: "create_analysis_transactions",
			Up:   createAnalysisTransactions,
		},
		{
			Name: "index_analysis_transactions_created_at",
			Up:   indexAnalysisTransactionsCreatedAt,
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			logger.Error("migration failed", zap.String("name", m.Name), zap.Error(err))
			return err
		}
		logger.Debug("migration completed", zap.String("name", m.Name))
	}

	return nil
}

func createAnalysisTransactions(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS analysis_transactions (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			completed_at TIMESTAMPTZ,
			resumes JSONB NOT NULL DEFAULT '[]'::jsonb
		);
	`

	_, err := pool.Exec(ctx, query)
	return err
}

func indexAnalysisTransactionsCreatedAt(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE INDEX IF NOT EXISTS analysis_transactions_created_at_idx
		ON analysis_transactions (created_at);
	`

	_, err := pool.Exec(ctx, query)
	return err
}
