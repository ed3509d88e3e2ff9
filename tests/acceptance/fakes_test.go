package acceptance

import (
	"context"
	"errors"
	"sync"

	"github.com/codehire/codehire-api/internal/analysis"
)

// captureMailer records verification codes instead of relaying them
type captureMailer struct {
	mu    sync.Mutex
	codes map[string]string
	fail  bool
}

func newCaptureMailer() *captureMailer {
	return &captureMailer{codes: make(map[string]string)}
}

func (m *captureMailer) SendOTP(_ context.Context, to, code string, _ int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp relay unavailable")
	}
	m.codes[to] = code
	return nil
}

func (m *captureMailer) CodeFor(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[email]
}

func (m *captureMailer) SetFail(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = fail
}

func (m *captureMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes = make(map[string]string)
	m.fail = false
}

// fakeProvider returns canned analysis results without network calls
type fakeProvider struct {
	mu   sync.Mutex
	fail bool
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{}
}

func (p *fakeProvider) SetFail(fail bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail = fail
}

func (p *fakeProvider) Reset() {
	p.SetFail(false)
}

func (p *fakeProvider) failing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fail
}

func (p *fakeProvider) ReviewCode(_ context.Context, _, _ string) (*analysis.CodeReview, error) {
	if p.failing() {
		return nil, errors.New("model api unavailable")
	}
	return &analysis.CodeReview{
		Score:       88,
		Issues:      []analysis.Issue{},
		Suggestions: []string{"Add input validation"},
		CodeQuality: analysis.CodeQuality{
			Readability:     90,
			Maintainability: 85,
			Performance:     88,
			Security:        80,
		},
		BestPractices: []string{"Consistent naming"},
		SecurityAnalysis: analysis.SecurityAnalysis{
			Vulnerabilities: []string{},
			RiskLevel:       "low",
			Recommendations: []string{},
		},
		PerformanceInsights: analysis.PerformanceInsights{
			SlowPatterns:  []string{},
			Optimizations: []string{},
		},
		RefactoringOpportunities: []string{},
	}, nil
}

func (p *fakeProvider) AnalyzeResume(_ context.Context, _ string) (*analysis.ResumeReport, error) {
	if p.failing() {
		return nil, errors.New("model api unavailable")
	}
	return &analysis.ResumeReport{
		ATSScore:      77,
		JobMatchScore: 72,
		SkillMatches:  []analysis.SkillMatch{},
		Strengths:     []string{"Clear experience section"},
		Improvements:  []string{"Quantify achievements"},
		Keywords: analysis.Keywords{
			Present: []string{"Go"},
			Missing: []string{"Kubernetes"},
		},
		CareerInsights:  []analysis.CareerInsight{},
		ActionableSteps: []string{},
	}, nil
}
