package domain

// Analysis is the synthetic result payload attached to a completed resume.
// Fields mirror what a real analysis pipeline would produce; values here are
// derived from seeded demo profiles, never from fetching the URL.
type Analysis struct {
	ResumeID         string        `json:"resume_id"`
	Score            int           `json:"score"`
	FLName           string        `json:"fl_name"`
	ExperienceMonths int           `json:"experience_months"`
	Flags            []Flag        `json:"flags"`
	YearsOld         int           `json:"years_old"`
	Salary           int           `json:"salary"`
	Legends          []LegendMatch `json:"legends"`
	Source           string        `json:"source,omitempty"`
}

// Flag marks a notable fact found during analysis.
type Flag struct {
	Name string `json:"name"`
	Fact string `json:"fact"`
}

// Legend describes one employment entry from the resume.
type Legend struct {
	CompanyName string `json:"company_name"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	LegendText  string `json:"legend_text,omitempty"`
}

// LegendMatch pairs an employment entry with its closest duplicate, if any,
// and a 0-100 similarity.
type LegendMatch struct {
	OriginalLegend Legend  `json:"original_legend"`
	CopyLegend     *Legend `json:"copy_legend,omitempty"`
	Similarity     int     `json:"similarity"`
}
