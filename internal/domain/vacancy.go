package domain

// Vacancy is a static demo job posting. The catalog is seeded once at
// startup and never mutated; respondent counts are illustrative.
type Vacancy struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	RespondentCount int    `json:"respondent_count"`
}

// DemoVacancies returns the seeded vacancy catalog in stable order.
func DemoVacancies() []Vacancy {
	return []Vacancy{
		{ID: "vac_1", Title: "Senior Python Developer", RespondentCount: 12},
		{ID: "vac_2", Title: "C# .NET Developer", RespondentCount: 7},
		{ID: "vac_3", Title: "Full Stack Developer", RespondentCount: 3},
	}
}
