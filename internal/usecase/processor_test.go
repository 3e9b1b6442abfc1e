package usecase

import (
	"context"
	"errors"
	"testing"

	"wolfeye-backend/internal/adapter/repository"
	"wolfeye-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingArchive struct {
	calls int
}

func (f *failingArchive) Save(ctx context.Context, t *domain.Transaction) error {
	f.calls++
	return errors.New("archive down")
}

func newTestProcessor(archive Archive) (*Processor, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	return NewProcessor(NewDemoAnalyzer(), store, archive, zap.NewNop()), store
}

func TestProcessCreatesTerminalTransaction(t *testing.T) {
	p, store := newTestProcessor(nil)

	urls := []string{"https://hh.ru/resume/a", "https://hh.ru/resume/b"}
	tx := p.Process(context.Background(), "Test", urls)

	require.Len(t, tx.Resumes, 2)
	assert.Equal(t, domain.StatusCompleted, tx.Status)
	require.NotNil(t, tx.CompletedAt)

	for i, r := range tx.Resumes {
		assert.Equal(t, urls[i], r.URL)
		assert.True(t, r.Terminal())
		require.NotNil(t, r.Analysis)
		assert.Equal(t, r.ID, r.Analysis.ResumeID)
	}

	// published to the store under the same id
	stored, err := store.Get(tx.ID.String())
	require.NoError(t, err)
	assert.Equal(t, tx.ID, stored.ID)
	assert.Len(t, stored.Resumes, 2)
}

func TestProcessMalformedURLFails(t *testing.T) {
	p, _ := newTestProcessor(nil)

	tx := p.Process(context.Background(), "Test", []string{"https://hh.ru/resume/a", "not a url"})

	require.Len(t, tx.Resumes, 2)
	assert.Equal(t, domain.StatusCompleted, tx.Resumes[0].Status)
	assert.Equal(t, domain.StatusError, tx.Resumes[1].Status)
	assert.Nil(t, tx.Resumes[1].Analysis)

	// the transaction itself is still done: both resumes are terminal
	assert.Equal(t, domain.StatusCompleted, tx.Status)
	assert.True(t, tx.Done())
}

func TestProcessToleratesArchiveFailure(t *testing.T) {
	archive := &failingArchive{}
	p, store := newTestProcessor(archive)

	tx := p.Process(context.Background(), "Test", []string{"https://hh.ru/resume/a"})

	assert.Equal(t, 1, archive.calls)
	assert.Equal(t, domain.StatusCompleted, tx.Status)

	_, err := store.Get(tx.ID.String())
	assert.NoError(t, err)
}

func TestProcessRepeatedReadsAreIdentical(t *testing.T) {
	p, store := newTestProcessor(nil)

	tx := p.Process(context.Background(), "Test", []string{"https://hh.ru/resume/a"})

	first, err := store.Get(tx.ID.String())
	require.NoError(t, err)
	second, err := store.Get(tx.ID.String())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProcessUniqueIDs(t *testing.T) {
	p, store := newTestProcessor(nil)

	a := p.Process(context.Background(), "A", []string{"https://hh.ru/resume/a"})
	b := p.Process(context.Background(), "B", []string{"https://hh.ru/resume/b"})

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, store.Len())
}
