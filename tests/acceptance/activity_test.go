package acceptance

import (
	"net/http"

	"github.com/codehire/codehire-api/internal/dto"
)

func (s *Suite) TestTrackActivity_Increments() {
	client := s.newClient()
	s.signup(client, "alice@example.com", "Alice")

	score := 85.0
	for i := 0; i < 2; i++ {
		resp := s.postJSON(client, "/api/v1/activity/track", dto.TrackActivityRequest{
			Type:  "code_review",
			Score: &score,
		})
		var trackResp dto.TrackActivityResponse
		s.decode(resp, &trackResp)
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		s.True(trackResp.Success)
		s.Require().NotNil(trackResp.Activity)
		s.Equal(int64(i+1), trackResp.Activity.CodeReviewsCount)
	}

	resp := s.getJSON(client, "/api/v1/profile/stats")
	s.Equal(http.StatusOK, resp.StatusCode)

	var stats dto.StatsResponse
	s.decode(resp, &stats)
	s.Equal(int64(2), stats.CodeReviewsCount)
	s.Equal(int64(0), stats.ResumeAnalysesCount)
	s.Require().NotNil(stats.LastCodeReviewScore)
	s.Equal(85.0, *stats.LastCodeReviewScore)
	s.NotNil(stats.LastCodeReviewAt)
	s.Nil(stats.LastResumeAnalysisAt)
	s.Nil(stats.LastResumeScore)
}

func (s *Suite) TestTrackActivity_WithoutScoreKeepsLast() {
	client := s.newClient()
	s.signup(client, "alice@example.com", "Alice")

	score := 91.0
	resp := s.postJSON(client, "/api/v1/activity/track", dto.TrackActivityRequest{
		Type:  "resume_analysis",
		Score: &score,
	})
	resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	resp = s.postJSON(client, "/api/v1/activity/track", dto.TrackActivityRequest{
		Type: "resume_analysis",
	})
	resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	stats := s.getJSON(client, "/api/v1/profile/stats")
	var statsResp dto.StatsResponse
	s.decode(stats, &statsResp)
	s.Equal(int64(2), statsResp.ResumeAnalysesCount)
	s.Require().NotNil(statsResp.LastResumeScore)
	s.Equal(91.0, *statsResp.LastResumeScore)
}

func (s *Suite) TestTrackActivity_InvalidType() {
	client := s.newClient()
	s.signup(client, "alice@example.com", "Alice")

	resp := s.postJSON(client, "/api/v1/activity/track", dto.TrackActivityRequest{
		Type: "interview_prep",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestTrackActivity_RequiresSession() {
	resp := s.postJSON(s.newClient(), "/api/v1/activity/track", dto.TrackActivityRequest{
		Type: "code_review",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestProfileStats_Defaults() {
	client := s.newClient()
	s.signup(client, "alice@example.com", "Alice")

	resp := s.getJSON(client, "/api/v1/profile/stats")
	s.Equal(http.StatusOK, resp.StatusCode)

	var stats dto.StatsResponse
	s.decode(resp, &stats)
	s.Equal(int64(0), stats.CodeReviewsCount)
	s.Equal(int64(0), stats.ResumeAnalysesCount)
	s.Nil(stats.LastCodeReviewAt)
	s.Nil(stats.LastResumeAnalysisAt)
	s.Nil(stats.LastCodeReviewScore)
	s.Nil(stats.LastResumeScore)
}

func (s *Suite) TestProfileStats_RequiresSession() {
	resp := s.getJSON(s.newClient(), "/api/v1/profile/stats")
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}
