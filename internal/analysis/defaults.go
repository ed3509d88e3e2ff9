package analysis

// Defaulting mirrors the product's behavior: a zero score reads as "the
// model didn't say" and becomes the neutral 70, nil slices become empty so
// clients can iterate without nil checks.

const neutralScore = 70

func applyCodeReviewDefaults(r *CodeReview) {
	if r.Score == 0 {
		r.Score = neutralScore
	}
	if r.Issues == nil {
		r.Issues = []Issue{}
	}
	if r.Suggestions == nil {
		r.Suggestions = []string{}
	}
	if r.CodeQuality.Readability == 0 {
		r.CodeQuality.Readability = neutralScore
	}
	if r.CodeQuality.Maintainability == 0 {
		r.CodeQuality.Maintainability = neutralScore
	}
	if r.CodeQuality.Performance == 0 {
		r.CodeQuality.Performance = neutralScore
	}
	if r.CodeQuality.Security == 0 {
		r.CodeQuality.Security = neutralScore
	}
	if r.BestPractices == nil {
		r.BestPractices = []string{}
	}
	if r.SecurityAnalysis.Vulnerabilities == nil {
		r.SecurityAnalysis.Vulnerabilities = []string{}
	}
	if r.SecurityAnalysis.RiskLevel == "" {
		r.SecurityAnalysis.RiskLevel = "low"
	}
	if r.SecurityAnalysis.Recommendations == nil {
		r.SecurityAnalysis.Recommendations = []string{}
	}
	if r.PerformanceInsights.SlowPatterns == nil {
		r.PerformanceInsights.SlowPatterns = []string{}
	}
	if r.PerformanceInsights.Optimizations == nil {
		r.PerformanceInsights.Optimizations = []string{}
	}
	if r.RefactoringOpportunities == nil {
		r.RefactoringOpportunities = []string{}
	}
}

func fallbackCodeReview() CodeReview {
	return CodeReview{
		Score: neutralScore,
		Issues: []Issue{{
			Type:     "warning",
			Category: "quality",
			Message:  "Unable to perform detailed analysis. Please try again.",
			Severity: "medium",
		}},
		Suggestions: []string{
			"Ensure code is properly formatted",
			"Try analyzing smaller code sections",
		},
		CodeQuality: CodeQuality{
			Readability:     neutralScore,
			Maintainability: neutralScore,
			Performance:     neutralScore,
			Security:        neutralScore,
		},
		BestPractices: []string{
			"Follow language-specific conventions",
			"Add proper error handling",
		},
		SecurityAnalysis: SecurityAnalysis{
			Vulnerabilities: []string{},
			RiskLevel:       "low",
			Recommendations: []string{"Review security best practices"},
		},
		PerformanceInsights: PerformanceInsights{
			SlowPatterns:  []string{},
			Optimizations: []string{"Profile code for bottlenecks"},
		},
		RefactoringOpportunities: []string{"Break down large functions into smaller ones"},
	}
}

func applyResumeDefaults(r *ResumeReport) {
	if r.ATSScore == 0 {
		r.ATSScore = neutralScore
	}
	if r.JobMatchScore == 0 {
		r.JobMatchScore = neutralScore
	}
	if r.SkillMatches == nil {
		r.SkillMatches = []SkillMatch{}
	}
	if r.Strengths == nil {
		r.Strengths = []string{}
	}
	if r.Improvements == nil {
		r.Improvements = []string{}
	}
	r.Sections.ContactInfo = defaultSection(r.Sections.ContactInfo, "Contact information needs review")
	r.Sections.Summary = defaultSection(r.Sections.Summary, "Professional summary could be improved")
	r.Sections.Experience = defaultSection(r.Sections.Experience, "Experience section needs enhancement")
	r.Sections.Education = defaultSection(r.Sections.Education, "Education section present")
	r.Sections.Skills = defaultSection(r.Sections.Skills, "Skills section needs more detail")
	if r.Keywords.Present == nil {
		r.Keywords.Present = []string{}
	}
	if r.Keywords.Missing == nil {
		r.Keywords.Missing = []string{}
	}
	if r.CareerInsights == nil {
		r.CareerInsights = []CareerInsight{}
	}
	if r.ActionableSteps == nil {
		r.ActionableSteps = []string{}
	}
}

func defaultSection(s SectionReview, feedback string) SectionReview {
	if s.Score == 0 && s.Status == "" && s.Feedback == "" {
		return SectionReview{Score: neutralScore, Status: "needs-improvement", Feedback: feedback}
	}
	return s
}

func fallbackResumeReport() ResumeReport {
	return ResumeReport{
		ATSScore:      neutralScore,
		JobMatchScore: neutralScore,
		SkillMatches: []SkillMatch{
			{Skill: "Communication", Match: 75, Demand: "high", Category: "soft"},
			{Skill: "Problem Solving", Match: 70, Demand: "high", Category: "soft"},
			{Skill: "Teamwork", Match: 72, Demand: "medium", Category: "soft"},
		},
		Strengths: []string{
			"Resume shows relevant work experience",
			"Professional formatting is present",
		},
		Improvements: []string{
			"Add more quantifiable achievements with metrics",
			"Include relevant keywords for ATS optimization",
			"Expand the skills section with technical competencies",
		},
		Sections: ResumeSections{
			ContactInfo: SectionReview{Score: 80, Status: "good", Feedback: "Contact information is present"},
			Summary:     SectionReview{Score: 60, Status: "needs-improvement", Feedback: "Consider adding a professional summary section"},
			Experience:  SectionReview{Score: 75, Status: "good", Feedback: "Work experience section is present"},
			Education:   SectionReview{Score: 70, Status: "good", Feedback: "Education section is included"},
			Skills:      SectionReview{Score: 65, Status: "needs-improvement", Feedback: "Skills section could be more detailed"},
		},
		Keywords: Keywords{
			Present: []string{"experience", "education", "skills"},
			Missing: []string{"leadership", "project management", "communication"},
		},
		CareerInsights: []CareerInsight{
			{
				Title:       "Quantify Your Achievements",
				Description: "Add metrics and numbers to demonstrate the impact of your work",
				Priority:    "high",
			},
			{
				Title:       "Optimize for ATS Systems",
				Description: "Include industry-standard keywords that match job descriptions in your field",
				Priority:    "medium",
			},
		},
		SalaryEstimate: &SalaryEstimate{
			Min: 55000, Max: 85000, Average: 70000, Currency: "$",
		},
		IndustryComparison: &IndustryComparison{
			Percentile: 60,
			Benchmark:  "Your resume is competitive for mid-level positions in your field",
		},
		ActionableSteps: []string{
			"Add a professional summary section at the top of your resume",
			"Quantify achievements with specific numbers and metrics",
			"Tailor your resume keywords to match target job descriptions",
		},
	}
}
