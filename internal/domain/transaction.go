package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status values shared by transactions and resumes.
const (
	StatusProcessing = "processing"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// Transaction is a named batch of resume URLs submitted for analysis.
type Transaction struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Resumes     []*Resume  `json:"resumes"`
}

type Resume struct {
	ID       string    `json:"id"`
	URL      string    `json:"url"`
	Status   string    `json:"status"`
	Analysis *Analysis `json:"analysis,omitempty"`
}

// Terminal reports whether the resume reached a final processing state.
func (r *Resume) Terminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusError
}

// Done reports whether every resume in the transaction is terminal.
func (t *Transaction) Done() bool {
	for _, r := range t.Resumes {
		if !r.Terminal() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so store readers never share mutable state
// with the stored record.
func (t *Transaction) Clone() *Transaction {
	out := *t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		out.CompletedAt = &at
	}
	out.Resumes = make([]*Resume, len(t.Resumes))
	for i, r := range t.Resumes {
		rc := *r
		if r.Analysis != nil {
			rc.Analysis = r.Analysis.clone()
		}
		out.Resumes[i] = &rc
	}
	return &out
}

func (a *Analysis) clone() *Analysis {
	out := *a
	out.Flags = append([]Flag(nil), a.Flags...)
	out.Legends = make([]LegendMatch, len(a.Legends))
	for i, l := range a.Legends {
		lc := l
		if l.CopyLegend != nil {
			cl := *l.CopyLegend
			lc.CopyLegend = &cl
		}
		out.Legends[i] = lc
	}
	return &out
}
