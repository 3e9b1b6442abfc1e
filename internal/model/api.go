package model

import (
	"time"

	"wolfeye-backend/internal/domain"
)

// Request and response schemas for the analysis API. Shapes follow the
// wire format expected by existing callers.

type ProcessResumesRequest struct {
	Name string   `json:"name"`
	URLs []string `json:"urls"`
}

type VacancyResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	TransactionID    string `json:"transaction_id"`
	CountRespondents int    `json:"count_respondents"`
}

type ResumeDetail struct {
	ResumeID string           `json:"resume_id"`
	URL      string           `json:"url"`
	Status   string           `json:"status"`
	Result   *domain.Analysis `json:"result,omitempty"`
}

type TransactionResponse struct {
	TransactionID string         `json:"transaction_id"`
	Name          string         `json:"name"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
	Resumes       []ResumeDetail `json:"resumes"`
}

type TransactionSummary struct {
	TransactionID string     `json:"transaction_id"`
	Name          string     `json:"name"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	ResumeCount   int        `json:"resume_count"`
}

type AllResultsResponse struct {
	Results []TransactionSummary `json:"results"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewTransactionResponse maps a stored transaction to its full wire form.
func NewTransactionResponse(t *domain.Transaction) TransactionResponse {
	resumes := make([]ResumeDetail, 0, len(t.Resumes))
	for _, r := range t.Resumes {
		resumes = append(resumes, newResumeDetail(r))
	}
	return TransactionResponse{
		TransactionID: t.ID.String(),
		Name:          t.Name,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
		CompletedAt:   t.CompletedAt,
		Resumes:       resumes,
	}
}

// NewPreviewResponse is NewTransactionResponse restricted to resumes that
// finished successfully.
func NewPreviewResponse(t *domain.Transaction) TransactionResponse {
	resp := NewTransactionResponse(t)
	completed := resp.Resumes[:0]
	for _, r := range resp.Resumes {
		if r.Status == domain.StatusCompleted {
			completed = append(completed, r)
		}
	}
	resp.Resumes = completed
	return resp
}

func NewTransactionSummary(t *domain.Transaction) TransactionSummary {
	return TransactionSummary{
		TransactionID: t.ID.String(),
		Name:          t.Name,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
		CompletedAt:   t.CompletedAt,
		ResumeCount:   len(t.Resumes),
	}
}

func newResumeDetail(r *domain.Resume) ResumeDetail {
	return ResumeDetail{
		ResumeID: r.ID,
		URL:      r.URL,
		Status:   r.Status,
		Result:   r.Analysis,
	}
}
