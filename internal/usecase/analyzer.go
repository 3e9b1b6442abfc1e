package usecase

import (
	"net"
	"net/url"
	"strings"

	"wolfeye-backend/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
)

// Analyzer assigns a terminal status and, on success, a synthetic analysis
// payload to a resume. The policy lives behind this interface so tests can
// swap it without touching request handling.
type Analyzer interface {
	Analyze(id, rawURL string) (status string, result *domain.Analysis)
}

// DemoAnalyzer is the default policy: a URL that does not parse as an
// absolute URL with a host fails with StatusError; everything else completes.
// Resumes matching a seeded demo profile get a profile-derived payload,
// unknown resumes get the baseline payload. No network I/O happens here.
type DemoAnalyzer struct {
	profiles map[string]profile
}

func NewDemoAnalyzer() *DemoAnalyzer {
	return &DemoAnalyzer{profiles: demoProfiles()}
}

func (a *DemoAnalyzer) Analyze(id, rawURL string) (string, *domain.Analysis) {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return domain.StatusError, nil
	}

	source := sourceSite(u.Host)
	if p, ok := a.profiles[id]; ok {
		return domain.StatusCompleted, p.analysis(id, source)
	}
	return domain.StatusCompleted, baselineAnalysis(id, source)
}

// ResumeID extracts the resume identifier from a URL of the form
// .../resume/{id}. Anything else gets a fresh uuid.
func ResumeID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return uuid.NewString()
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) >= 2 && parts[0] == "resume" && parts[1] != "" {
		return parts[1]
	}
	return uuid.NewString()
}

// sourceSite reduces a URL host to its registrable domain, e.g.
// "spb.hh.ru" -> "hh.ru". Falls back to the bare host when the public
// suffix list has no answer.
func sourceSite(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(host)
	site, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return site
}
