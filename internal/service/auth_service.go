package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/codehire/codehire-api/internal/domain"
	"github.com/codehire/codehire-api/internal/dto"
	"github.com/codehire/codehire-api/internal/mailer"
	"github.com/codehire/codehire-api/internal/repository"
	"github.com/codehire/codehire-api/internal/utils"
)

const minPasswordLength = 6

// authService implements AuthService
type authService struct {
	userRepo   repository.UserRepository
	otpRepo    repository.OtpRepository
	sessions   *utils.SessionManager
	sender     mailer.Sender
	bcryptCost int
	otpExpiry  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	otpRepo repository.OtpRepository,
	sessions *utils.SessionManager,
	sender mailer.Sender,
	bcryptCost int,
	otpExpiry time.Duration,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		otpRepo:    otpRepo,
		sessions:   sessions,
		sender:     sender,
		bcryptCost: bcryptCost,
		otpExpiry:  otpExpiry,
	}
}

// SendOTP issues and delivers a fresh verification code. Prior codes for the
// email are swept first so at most one usable code exists.
func (s *authService) SendOTP(ctx context.Context, email string) error {
	email = utils.SanitizeEmail(email)
	if email == "" {
		return NewValidationError("Email is required", map[string]string{"email": "Email is required"})
	}
	if !utils.ValidateEmail(email) {
		return NewValidationError("Please enter a valid email address", map[string]string{"email": "Please enter a valid email address"})
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return NewDependencyError("Something went wrong. Please try again.", err)
	}

	if err := s.otpRepo.DeleteByEmail(ctx, email); err != nil {
		return NewDependencyError("Something went wrong. Please try again.", err)
	}

	rec := &domain.OtpVerification{
		Email:     email,
		OTP:       code,
		ExpiresAt: time.Now().Add(s.otpExpiry),
	}
	if err := s.otpRepo.Create(ctx, rec); err != nil {
		return NewDependencyError("Something went wrong. Please try again.", err)
	}

	expiryMinutes := int(s.otpExpiry.Minutes())
	if err := s.sender.SendOTP(ctx, email, code, expiryMinutes); err != nil {
		return NewDependencyError("Failed to send verification email. Please try again.", err)
	}

	return nil
}

// Signup validates every field at once, consumes the OTP, creates the user
// and mints a session.
func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*AuthResult, error) {
	email := utils.SanitizeEmail(req.Email)
	name := trimmed(req.Name)
	otp := trimmed(req.OTP)

	fields := map[string]string{}
	switch {
	case email == "":
		fields["email"] = "Email is required"
	case !utils.ValidateEmail(email):
		fields["email"] = "Please enter a valid email address"
	}
	switch {
	case otp == "":
		fields["otp"] = "Verification code is required"
	case !utils.ValidateOTP(otp):
		fields["otp"] = "Enter the 6-digit code"
	}
	if name == "" {
		fields["name"] = "Name is required"
	}
	switch {
	case req.Password == "":
		fields["password"] = "Password is required"
	case len(req.Password) < minPasswordLength:
		fields["password"] = fmt.Sprintf("Password must be at least %d characters", minPasswordLength)
	}
	if len(fields) > 0 {
		return nil, NewValidationError("Please fix the errors below", fields)
	}

	if _, err := s.otpRepo.FindValid(ctx, email, otp); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewValidationError("Invalid or expired verification code",
				map[string]string{"otp": "Invalid or expired code. Request a new one."})
		}
		return nil, NewDependencyError("Something went wrong. Please try again.", err)
	}

	hash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, NewDependencyError("Something went wrong. Please try again.", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, NewConflictError("An account with this email already exists",
				map[string]string{"email": "An account with this email already exists"})
		}
		return nil, NewDependencyError("Something went wrong. Please try again.", err)
	}

	// Codes for the email are consumed regardless of which one matched
	if err := s.otpRepo.DeleteByEmail(ctx, email); err != nil {
		return nil, NewDependencyError("Something went wrong. Please try again.", err)
	}

	return s.issueSession(user)
}

// Login collapses unknown-email and wrong-password into one generic error
// so the response never reveals which part failed.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*AuthResult, error) {
	email := utils.SanitizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, NewValidationError("Email and password are required", nil)
	}

	user, err := s.userRepo.GetByEmail(ctx, email, true)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewUnauthorizedError("Invalid email or password")
		}
		return nil, NewDependencyError("Something went wrong. Please try again.", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, NewUnauthorizedError("Invalid email or password")
	}

	return s.issueSession(user)
}

// VerifySession validates a session token and returns the subject user id
func (s *authService) VerifySession(token string) (string, error) {
	claims, err := s.sessions.Verify(token)
	if err != nil {
		return "", NewUnauthorizedError("Invalid or expired session")
	}
	return claims.UserID, nil
}

// GetUser fetches the profile for a verified session subject
func (s *authService) GetUser(ctx context.Context, userID string) (*dto.UserInfo, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, NewUnauthorizedError("Invalid or expired session")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewUnauthorizedError("Invalid or expired session")
		}
		return nil, NewDependencyError("Something went wrong. Please try again.", err)
	}

	info := userInfo(user)
	return &info, nil
}

// ChangePassword re-verifies the current password before accepting a new
// one. Other outstanding sessions stay valid.
func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return NewValidationError("Current password and new password are required", nil)
	}
	if len(req.NewPassword) < minPasswordLength {
		return NewValidationError(fmt.Sprintf("New password must be at least %d characters", minPasswordLength), nil)
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return NewUnauthorizedError("Please log in first")
	}

	withHash, err := s.getUserWithHash(ctx, id)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, withHash.PasswordHash) {
		return NewValidationError("Current password is incorrect", nil)
	}

	hash, err := utils.HashPassword(req.NewPassword, s.bcryptCost)
	if err != nil {
		return NewDependencyError("Something went wrong. Please try again.", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, id, hash); err != nil {
		return NewDependencyError("Something went wrong. Please try again.", err)
	}

	return nil
}

func (s *authService) getUserWithHash(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewUnauthorizedError("Please log in first")
		}
		return nil, NewDependencyError("Something went wrong. Please try again.", err)
	}

	// GetByID omits the hash; re-read by email with the password included
	full, err := s.userRepo.GetByEmail(ctx, user.Email, true)
	if err != nil {
		return nil, NewDependencyError("Something went wrong. Please try again.", err)
	}

	return full, nil
}

func (s *authService) issueSession(user *domain.User) (*AuthResult, error) {
	token, err := s.sessions.Issue(user.ID.Hex())
	if err != nil {
		return nil, NewDependencyError("Something went wrong. Please try again.", err)
	}

	return &AuthResult{
		User:  userInfo(user),
		Token: token,
	}, nil
}

func userInfo(user *domain.User) dto.UserInfo {
	info := dto.UserInfo{
		ID:    user.ID.Hex(),
		Email: user.Email,
		Name:  user.Name,
	}
	if !user.CreatedAt.IsZero() {
		info.CreatedAt = user.CreatedAt.UTC().Format(time.RFC3339)
	}
	return info
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
