package usecase

import (
	"testing"

	"wolfeye-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoResumeID = "108b9793000f5a420900bb41f052543668456f"

func TestAnalyzeSeededProfile(t *testing.T) {
	a := NewDemoAnalyzer()

	status, result := a.Analyze(demoResumeID, "https://hh.ru/resume/"+demoResumeID)

	require.Equal(t, domain.StatusCompleted, status)
	require.NotNil(t, result)
	// 96 months of experience: 70 + 8*2
	assert.Equal(t, 86, result.Score)
	assert.Equal(t, "A. Petrov", result.FLName)
	assert.Equal(t, 96, result.ExperienceMonths)
	assert.Len(t, result.Legends, 2)
	assert.Equal(t, "hh.ru", result.Source)
}

func TestAnalyzeScoreIsCapped(t *testing.T) {
	a := NewDemoAnalyzer()

	// 150 months: 70 + 12*2, still under the cap
	status, result := a.Analyze("18c8bdbe000f4ab1d300bb41f0634b4a386c33", "https://hh.ru/resume/18c8bdbe000f4ab1d300bb41f0634b4a386c33")

	require.Equal(t, domain.StatusCompleted, status)
	require.NotNil(t, result)
	assert.Equal(t, 94, result.Score)
	assert.LessOrEqual(t, result.Score, 95)
}

func TestAnalyzeUnknownResume(t *testing.T) {
	a := NewDemoAnalyzer()

	status, result := a.Analyze("deadbeef", "https://hh.ru/resume/deadbeef")

	require.Equal(t, domain.StatusCompleted, status)
	require.NotNil(t, result)
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, "Unknown", result.FLName)
	assert.Equal(t, 25, result.YearsOld)
	assert.Equal(t, 50000, result.Salary)
	assert.Empty(t, result.Legends)
}

func TestAnalyzeMalformedURL(t *testing.T) {
	a := NewDemoAnalyzer()

	for _, raw := range []string{"not a url", "/resume/abc", "https://", ""} {
		status, result := a.Analyze("abc", raw)
		assert.Equal(t, domain.StatusError, status, "url %q", raw)
		assert.Nil(t, result, "url %q", raw)
	}
}

func TestAnalyzeSourceSite(t *testing.T) {
	a := NewDemoAnalyzer()

	_, result := a.Analyze("x", "https://spb.hh.ru/resume/x")
	require.NotNil(t, result)
	assert.Equal(t, "hh.ru", result.Source)

	_, result = a.Analyze("x", "http://localhost:8080/resume/x")
	require.NotNil(t, result)
	assert.Equal(t, "localhost", result.Source)
}

func TestResumeID(t *testing.T) {
	assert.Equal(t, "abc", ResumeID("https://hh.ru/resume/abc"))
	assert.Equal(t, "abc", ResumeID("https://hh.ru/resume/abc/"))

	// anything else gets a generated uuid
	id := ResumeID("https://hh.ru/vacancy/123")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}
