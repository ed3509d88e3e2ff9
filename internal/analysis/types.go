package analysis

// CodeReview is the fully defaulted result of a code review. Every field is
// populated by the adapter; handlers never see the provider's raw output.
type CodeReview struct {
	Score                    float64             `json:"score"`
	Issues                   []Issue             `json:"issues"`
	Suggestions              []string            `json:"suggestions"`
	CodeQuality              CodeQuality         `json:"codeQuality"`
	BestPractices            []string            `json:"bestPractices"`
	SecurityAnalysis         SecurityAnalysis    `json:"securityAnalysis"`
	PerformanceInsights      PerformanceInsights `json:"performanceInsights"`
	RefactoringOpportunities []string            `json:"refactoringOpportunities"`
}

// Issue is a single finding in a code review
type Issue struct {
	Type       string `json:"type"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	Severity   string `json:"severity"`
	Line       int    `json:"line,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// CodeQuality holds per-dimension quality scores
type CodeQuality struct {
	Readability     float64 `json:"readability"`
	Maintainability float64 `json:"maintainability"`
	Performance     float64 `json:"performance"`
	Security        float64 `json:"security"`
}

// SecurityAnalysis summarizes vulnerabilities found in a review
type SecurityAnalysis struct {
	Vulnerabilities []string `json:"vulnerabilities"`
	RiskLevel       string   `json:"riskLevel"`
	Recommendations []string `json:"recommendations"`
}

// PerformanceInsights lists slow patterns and optimization opportunities
type PerformanceInsights struct {
	SlowPatterns  []string `json:"slowPatterns"`
	Optimizations []string `json:"optimizations"`
}

// ResumeReport is the fully defaulted result of a resume analysis
type ResumeReport struct {
	ATSScore           float64             `json:"atsScore"`
	JobMatchScore      float64             `json:"jobMatchScore"`
	SkillMatches       []SkillMatch        `json:"skillMatches"`
	Strengths          []string            `json:"strengths"`
	Improvements       []string            `json:"improvements"`
	Sections           ResumeSections      `json:"sections"`
	Keywords           Keywords            `json:"keywords"`
	CareerInsights     []CareerInsight     `json:"careerInsights"`
	SalaryEstimate     *SalaryEstimate     `json:"salaryEstimate"`
	IndustryComparison *IndustryComparison `json:"industryComparison"`
	CoverLetter        string              `json:"coverLetter"`
	ActionableSteps    []string            `json:"actionableSteps"`
}

// SkillMatch scores a single skill against market demand
type SkillMatch struct {
	Skill    string  `json:"skill"`
	Match    float64 `json:"match"`
	Demand   string  `json:"demand"`
	Category string  `json:"category"`
}

// SectionReview evaluates one resume section
type SectionReview struct {
	Score    float64 `json:"score"`
	Status   string  `json:"status"`
	Feedback string  `json:"feedback"`
}

// ResumeSections holds per-section evaluations
type ResumeSections struct {
	ContactInfo SectionReview `json:"contactInfo"`
	Summary     SectionReview `json:"summary"`
	Experience  SectionReview `json:"experience"`
	Education   SectionReview `json:"education"`
	Skills      SectionReview `json:"skills"`
}

// Keywords lists present and missing ATS keywords
type Keywords struct {
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// CareerInsight is a prioritized recommendation
type CareerInsight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// SalaryEstimate is the provider's salary range guess
type SalaryEstimate struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Average  float64 `json:"average"`
	Currency string  `json:"currency"`
}

// IndustryComparison benchmarks the candidate against the field
type IndustryComparison struct {
	Percentile float64 `json:"percentile"`
	Benchmark  string  `json:"benchmark"`
}
