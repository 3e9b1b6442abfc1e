package usecase

import (
	"context"
	"time"

	"wolfeye-backend/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the in-memory transaction registry. Put publishes a fully-built
// record; Get returns domain.ErrTransactionNotFound for unknown ids.
type Store interface {
	Put(t *domain.Transaction)
	Get(id string) (*domain.Transaction, error)
	List() []*domain.Transaction
}

// Archive mirrors finished transactions to external storage best-effort.
type Archive interface {
	Save(ctx context.Context, t *domain.Transaction) error
}

// Processor turns a (name, urls) submission into a finished transaction.
// Processing is synchronous: by the time Process returns, every resume is
// terminal and the record is published to the store.
type Processor struct {
	analyzer Analyzer
	store    Store
	archive  Archive
	logger   *zap.Logger
	now      func() time.Time
}

func NewProcessor(a Analyzer, s Store, archive Archive, logger *zap.Logger) *Processor {
	return &Processor{analyzer: a, store: s, archive: archive, logger: logger, now: time.Now}
}

func (p *Processor) Process(ctx context.Context, name string, urls []string) *domain.Transaction {
	t := &domain.Transaction{
		ID:        uuid.New(),
		Name:      name,
		Status:    domain.StatusProcessing,
		CreatedAt: p.now().UTC(),
	}

	for _, raw := range urls {
		t.Resumes = append(t.Resumes, &domain.Resume{
			ID:     ResumeID(raw),
			URL:    raw,
			Status: domain.StatusInProgress,
		})
	}

	for _, r := range t.Resumes {
		status, result := p.analyzer.Analyze(r.ID, r.URL)
		r.Status = status
		if result != nil {
			result.ResumeID = r.ID
			r.Analysis = result
		}
	}

	completedAt := p.now().UTC()
	t.CompletedAt = &completedAt
	t.Status = domain.StatusCompleted

	// publish only after every resume is terminal, so readers never see a
	// partially-constructed record
	p.store.Put(t)

	p.logger.Info("transaction processed",
		zap.String("transaction_id", t.ID.String()),
		zap.String("name", t.Name),
		zap.Int("resumes", len(t.Resumes)),
	)

	if p.archive != nil {
		if err := p.archive.Save(ctx, t); err != nil {
			p.logger.Warn("archive save failed",
				zap.String("transaction_id", t.ID.String()),
				zap.Error(err),
			)
		}
	}

	return t
}
