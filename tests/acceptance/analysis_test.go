package acceptance

import (
	"net/http"
	"strings"

	"github.com/codehire/codehire-api/internal/analysis"
	"github.com/codehire/codehire-api/internal/dto"
)

const sampleResumeText = "Alice Example. Senior backend engineer with eight years of Go, " +
	"distributed systems and MongoDB experience. Led a team of five."

func (s *Suite) TestCodeReview_Success() {
	client := s.newClient()
	s.signup(client, "alice@example.com", "Alice")

	resp := s.postJSON(client, "/api/v1/code-review", dto.CodeReviewRequest{
		Code:     "func add(a, b int) int { return a + b }",
		Language: "go",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var review analysis.CodeReview
	s.decode(resp, &review)
	s.Equal(88.0, review.Score)

	// A successful review lands in the activity ledger with its score
	stats := s.getJSON(client, "/api/v1/profile/stats")
	var statsResp dto.StatsResponse
	s.decode(stats, &statsResp)
	s.Equal(int64(1), statsResp.CodeReviewsCount)
	s.Require().NotNil(statsResp.LastCodeReviewScore)
	s.Equal(88.0, *statsResp.LastCodeReviewScore)
}

func (s *Suite) TestCodeReview_EmptyCode() {
	client := s.newClient()
	s.signup(client, "alice@example.com", "Alice")

	resp := s.postJSON(client, "/api/v1/code-review", dto.CodeReviewRequest{Code: ""})
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestCodeReview_ProviderDown() {
	client := s.newClient()
	s.signup(client, "alice@example.com", "Alice")

	s.Provider.SetFail(true)
	defer s.Provider.SetFail(false)

	resp := s.postJSON(client, "/api/v1/code-review", dto.CodeReviewRequest{
		Code: "print('hi')",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusBadGateway, resp.StatusCode)

	// Failed runs are not counted
	stats := s.getJSON(client, "/api/v1/profile/stats")
	var statsResp dto.StatsResponse
	s.decode(stats, &statsResp)
	s.Equal(int64(0), statsResp.CodeReviewsCount)
}

func (s *Suite) TestCodeReview_RequiresSession() {
	resp := s.postJSON(s.newClient(), "/api/v1/code-review", dto.CodeReviewRequest{
		Code: "x = 1",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestResumeAnalysis_Success() {
	client := s.newClient()
	s.signup(client, "alice@example.com", "Alice")

	resp := s.postJSON(client, "/api/v1/resume-analysis", dto.ResumeAnalysisRequest{
		Text: sampleResumeText,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var report analysis.ResumeReport
	s.decode(resp, &report)
	s.Equal(77.0, report.ATSScore)

	stats := s.getJSON(client, "/api/v1/profile/stats")
	var statsResp dto.StatsResponse
	s.decode(stats, &statsResp)
	s.Equal(int64(1), statsResp.ResumeAnalysesCount)
	s.Require().NotNil(statsResp.LastResumeScore)
	s.Equal(77.0, *statsResp.LastResumeScore)
}

func (s *Suite) TestResumeAnalysis_TooShort() {
	client := s.newClient()
	s.signup(client, "alice@example.com", "Alice")

	resp := s.postJSON(client, "/api/v1/resume-analysis", dto.ResumeAnalysisRequest{
		Text: "too short",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestResumeAnalysis_LongTextAccepted() {
	client := s.newClient()
	s.signup(client, "alice@example.com", "Alice")

	resp := s.postJSON(client, "/api/v1/resume-analysis", dto.ResumeAnalysisRequest{
		Text: strings.Repeat(sampleResumeText+" ", 200),
	})
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}
