package dto

// SendOTPRequest asks for a verification code to be emailed
type SendOTPRequest struct {
	Email string `json:"email"`
}

// SignupRequest completes registration with a previously issued code.
// Field validation is collected per-field by the service so a form can
// highlight every offending field at once, hence no binding tags here.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	OTP      string `json:"otp"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest rotates the account password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// TrackActivityRequest records a tool invocation
type TrackActivityRequest struct {
	Type  string   `json:"type"`
	Score *float64 `json:"score,omitempty"`
}

// CodeReviewRequest submits source code for review
type CodeReviewRequest struct {
	Code     string `json:"code"`
	Language string `json:"language,omitempty"`
}

// ResumeAnalysisRequest submits resume text for analysis
type ResumeAnalysisRequest struct {
	Text string `json:"text"`
}
