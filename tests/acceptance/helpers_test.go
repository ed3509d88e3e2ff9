package acceptance

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"

	"github.com/codehire/codehire-api/internal/dto"
)

// newClient returns an HTTP client with its own cookie jar so each test
// carries an independent session.
func (s *Suite) newClient() *http.Client {
	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	return &http.Client{Jar: jar}
}

func (s *Suite) postJSON(client *http.Client, path string, body any) *http.Response {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	resp, err := client.Post(s.BaseURL+path, "application/json", bytes.NewBuffer(payload))
	s.Require().NoError(err)
	return resp
}

func (s *Suite) getJSON(client *http.Client, path string) *http.Response {
	resp, err := client.Get(s.BaseURL + path)
	s.Require().NoError(err)
	return resp
}

func (s *Suite) decode(resp *http.Response, out any) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}

// requestOTP drives the send-otp endpoint and returns the delivered code
func (s *Suite) requestOTP(client *http.Client, email string) string {
	resp := s.postJSON(client, "/api/v1/auth/send-otp", dto.SendOTPRequest{Email: email})
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	code := s.Mailer.CodeFor(email)
	s.Require().NotEmpty(code, "verification code should have been delivered")
	return code
}

// signup runs the full send-otp then signup flow and leaves the session
// cookie in the client's jar.
func (s *Suite) signup(client *http.Client, email, name string) dto.AuthResponse {
	code := s.requestOTP(client, email)

	resp := s.postJSON(client, "/api/v1/auth/signup", dto.SignupRequest{
		Email:    email,
		Password: testPassword,
		Name:     name,
		OTP:      code,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var authResp dto.AuthResponse
	s.decode(resp, &authResp)
	return authResp
}
