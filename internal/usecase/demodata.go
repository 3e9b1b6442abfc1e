package usecase

import (
	"fmt"

	"wolfeye-backend/internal/domain"
)

// Seeded demo profiles, keyed by resume id. These stand in for the data a
// real pipeline would fetch and parse; ids match the demo resume URLs the
// frontend ships with.
func demoProfiles() map[string]profile {
	return map[string]profile{
		"108b9793000f5a420900bb41f052543668456f": {
			FirstName:        "Aleksei",
			LastName:         "Petrov",
			ExperienceMonths: 96,
			Age:              29,
			Salary:           180000,
			Experience: []employment{
				{Company: "TechCorp", Position: "Senior Python Developer", Start: "2019-03-01", End: "2023-06-30"},
				{Company: "DataWorks", Position: "Backend Developer", Start: "2015-07-01", End: "2019-02-28"},
			},
		},
		"13db2fbf000df537aa00bb41f05063456f6a39": {
			FirstName:        "Marina",
			LastName:         "Sokolova",
			ExperienceMonths: 48,
			Age:              26,
			Salary:           140000,
			Experience: []employment{
				{Company: "BankSoft", Position: ".NET Developer", Start: "2020-09-01", End: "2024-08-31"},
			},
		},
		"18c8bdbe000f4ab1d300bb41f0634b4a386c33": {
			FirstName:        "Dmitry",
			LastName:         "Ivanov",
			ExperienceMonths: 150,
			Age:              34,
			Salary:           250000,
			Experience: []employment{
				{Company: "StartupInc", Position: "Full Stack Developer", Start: "2018-01-15", End: ""},
				{Company: "WebStudio", Position: "Frontend Developer", Start: "2012-06-01", End: "2017-12-31"},
				{Company: "Freelance", Position: "Web Developer", Start: "2010-02-01", End: "2012-05-31"},
			},
		},
	}
}

type profile struct {
	FirstName        string
	LastName         string
	ExperienceMonths int
	Age              int
	Salary           int
	Experience       []employment
}

type employment struct {
	Company  string
	Position string
	Start    string
	End      string
}

// analysis builds the synthetic payload for a seeded profile. The score
// grows with experience but stays inside 60..95.
func (p profile) analysis(id, source string) *domain.Analysis {
	score := 70 + (p.ExperienceMonths/12)*2
	if score < 60 {
		score = 60
	}
	if score > 95 {
		score = 95
	}

	legends := make([]domain.LegendMatch, 0, 2)
	for _, exp := range p.Experience {
		if len(legends) == 2 {
			break
		}
		legends = append(legends, domain.LegendMatch{
			OriginalLegend: domain.Legend{
				CompanyName: exp.Company,
				StartDate:   exp.Start,
				EndDate:     exp.End,
				LegendText:  fmt.Sprintf("%s at %s", exp.Position, exp.Company),
			},
			Similarity: 95,
		})
	}

	return &domain.Analysis{
		ResumeID:         id,
		Score:            score,
		FLName:           fmt.Sprintf("%s. %s", p.FirstName[:1], p.LastName),
		ExperienceMonths: p.ExperienceMonths,
		Flags: []domain.Flag{
			{Name: "Experience", Fact: fmt.Sprintf("%d months of experience", p.ExperienceMonths)},
			{Name: "Education", Fact: "Higher technical education"},
		},
		YearsOld: p.Age,
		Salary:   p.Salary,
		Legends:  legends,
		Source:   source,
	}
}

// baselineAnalysis is the payload for resumes with no seeded data.
func baselineAnalysis(id, source string) *domain.Analysis {
	return &domain.Analysis{
		ResumeID:         id,
		Score:            50,
		FLName:           "Unknown",
		ExperienceMonths: 0,
		Flags: []domain.Flag{
			{Name: "No data", Fact: "Resume not found in demo data"},
		},
		YearsOld: 25,
		Salary:   50000,
		Legends:  []domain.LegendMatch{},
		Source:   source,
	}
}
