package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/codehire/codehire-api/internal/domain"
	"github.com/codehire/codehire-api/internal/repository"
)

// In-memory stand-ins for the mongo repositories, keyed the same way the
// collections are indexed.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // by normalized email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Email]; ok {
		return fmt.Errorf("duplicate: %w", repository.ErrDuplicateEmail)
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now()
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string, withPassword bool) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, fmt.Errorf("missing: %w", repository.ErrNotFound)
	}
	cp := *u
	if !withPassword {
		cp.PasswordHash = ""
	}
	return &cp, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			cp.PasswordHash = ""
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("missing: %w", repository.ErrNotFound)
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id primitive.ObjectID, newHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			u.PasswordHash = newHash
			return nil
		}
	}
	return fmt.Errorf("missing: %w", repository.ErrNotFound)
}

type fakeOtpRepo struct {
	mu   sync.Mutex
	recs []*domain.OtpVerification
}

func newFakeOtpRepo() *fakeOtpRepo {
	return &fakeOtpRepo{}
}

func (f *fakeOtpRepo) Create(_ context.Context, rec *domain.OtpVerification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *rec
	f.recs = append(f.recs, &cp)
	return nil
}

func (f *fakeOtpRepo) FindValid(_ context.Context, email, code string) (*domain.OtpVerification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for _, r := range f.recs {
		if r.Email == email && r.OTP == code && r.ExpiresAt.After(now) {
			cp := *r
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("missing: %w", repository.ErrNotFound)
}

func (f *fakeOtpRepo) DeleteByEmail(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.recs[:0]
	for _, r := range f.recs {
		if r.Email != email {
			kept = append(kept, r)
		}
	}
	f.recs = kept
	return nil
}

func (f *fakeOtpRepo) codesFor(email string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, r := range f.recs {
		if r.Email == email {
			out = append(out, r.OTP)
		}
	}
	return out
}

type fakeSender struct {
	mu   sync.Mutex
	sent []string // codes, in order
	to   []string
	fail bool
}

func (f *fakeSender) SendOTP(_ context.Context, to, code string, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("smtp relay unavailable")
	}
	f.sent = append(f.sent, code)
	f.to = append(f.to, to)
	return nil
}

func (f *fakeSender) lastCode() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return ""
	}
	return f.sent[len(f.sent)-1]
}

type fakeActivityRepo struct {
	mu   sync.Mutex
	recs map[primitive.ObjectID]*domain.UserActivity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{recs: map[primitive.ObjectID]*domain.UserActivity{}}
}

func (f *fakeActivityRepo) Upsert(_ context.Context, userID primitive.ObjectID, kind domain.ActivityKind, score *float64) (*domain.UserActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.recs[userID]
	if !ok {
		a = &domain.UserActivity{ID: primitive.NewObjectID(), UserID: userID}
		f.recs[userID] = a
	}
	now := time.Now()
	switch kind {
	case domain.ActivityCodeReview:
		a.CodeReviewsCount++
		a.LastCodeReviewAt = &now
		if score != nil {
			a.LastCodeReviewScore = score
		}
	case domain.ActivityResumeAnalysis:
		a.ResumeAnalysesCount++
		a.LastResumeAnalysisAt = &now
		if score != nil {
			a.LastResumeScore = score
		}
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	a.UpdatedAt = now
	cp := *a
	return &cp, nil
}

func (f *fakeActivityRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) (*domain.UserActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.recs[userID]
	if !ok {
		return nil, fmt.Errorf("missing: %w", repository.ErrNotFound)
	}
	cp := *a
	return &cp, nil
}
