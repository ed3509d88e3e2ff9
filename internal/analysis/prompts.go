package analysis

import "fmt"

const codeReviewSystemPrompt = "You are an expert code reviewer. Analyze code thoroughly and return only valid JSON without any markdown formatting or code blocks."

const resumeSystemPrompt = "You are an expert resume analyzer and career coach. Analyze resumes thoroughly and return only valid JSON without any markdown formatting."

func buildCodeReviewPrompt(code, language string) string {
	if language == "" {
		language = "code"
	}
	return fmt.Sprintf(`You are an expert code reviewer with expertise in bug detection, security analysis, performance optimization, and code quality assessment.

Analyze the following %s and provide a comprehensive review in JSON format with the following structure:

{
  "score": <overall code quality score 0-100>,
  "issues": [
    {
      "type": "error" | "warning" | "info",
      "category": "bug" | "performance" | "security" | "quality" | "structure",
      "message": "detailed description of the issue",
      "severity": "high" | "medium" | "low",
      "line": <line number if applicable>,
      "suggestion": "how to fix this issue"
    }
  ],
  "suggestions": ["actionable improvement suggestion"],
  "codeQuality": {
    "readability": <score 0-100>,
    "maintainability": <score 0-100>,
    "performance": <score 0-100>,
    "security": <score 0-100>
  },
  "bestPractices": ["best practice recommendation"],
  "securityAnalysis": {
    "vulnerabilities": ["vulnerability description"],
    "riskLevel": "critical" | "high" | "medium" | "low",
    "recommendations": ["security improvement"]
  },
  "performanceInsights": {
    "slowPatterns": ["description of slow pattern or anti-pattern"],
    "optimizations": ["specific optimization opportunity"]
  },
  "refactoringOpportunities": ["refactoring suggestion"]
}

IMPORTANT:
- Provide specific, actionable feedback
- Include line numbers when possible
- Categorize each issue properly
- Focus on real issues, not minor style preferences
- Return ONLY valid JSON without any markdown formatting, preamble, or code blocks

Code to review:
`+"```%s\n%s\n```"+`

Respond with the JSON object now:`, language, language, code)
}

func buildResumePrompt(text string) string {
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) resume analyzer, career coach, and hiring specialist. Analyze the following resume and provide a comprehensive evaluation in JSON format with the following structure:

{
  "atsScore": <overall ATS compatibility score 0-100>,
  "jobMatchScore": <overall job market match score 0-100>,
  "skillMatches": [
    {"skill": "skill name", "match": <0-100>, "demand": "high" | "medium" | "low", "category": "technical" | "soft" | "tools" | "domain"}
  ],
  "strengths": ["specific strength with evidence"],
  "improvements": ["specific, actionable improvement"],
  "sections": {
    "contactInfo": {"score": <0-100>, "status": "good" | "needs-improvement" | "missing", "feedback": "specific feedback"},
    "summary": {"score": <0-100>, "status": "good" | "needs-improvement" | "missing", "feedback": "specific feedback"},
    "experience": {"score": <0-100>, "status": "good" | "needs-improvement" | "missing", "feedback": "specific feedback"},
    "education": {"score": <0-100>, "status": "good" | "needs-improvement" | "missing", "feedback": "specific feedback"},
    "skills": {"score": <0-100>, "status": "good" | "needs-improvement" | "missing", "feedback": "specific feedback"}
  },
  "keywords": {"present": ["keyword"], "missing": ["important keyword"]},
  "careerInsights": [
    {"title": "insight title", "description": "detailed description", "priority": "high" | "medium" | "low"}
  ],
  "salaryEstimate": {"min": <number>, "max": <number>, "average": <number>, "currency": "$"},
  "industryComparison": {"percentile": <0-100>, "benchmark": "where the candidate stands"},
  "coverLetter": "A professional cover letter tailored to the candidate, 3-4 paragraphs.",
  "actionableSteps": ["specific action step the candidate should take"]
}

IMPORTANT INSTRUCTIONS:
- Provide ONLY valid JSON without any markdown formatting, code blocks, or preamble
- Be specific and actionable in all feedback
- Base salary estimates on the experience level and skills mentioned
- Include 5-8 skill matches with accurate demand levels
- Provide 6-10 actionable steps prioritized by impact

Resume content:
%s

Return the JSON object now:`, text)
}
