package core

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/db"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/models"
)

// stubIdentity is a canned IdentityClient.
type stubIdentity struct {
	createUserCalls int
	createUserErr   error

	verifyErr error
	verifyUID string

	customTokenErr error

	getUserRecord *auth.UserRecord
	getUserErr    error
}

func (s *stubIdentity) CreateUser(_ context.Context, _ *auth.UserToCreate) (*auth.UserRecord, error) {
	s.createUserCalls++
	if s.createUserErr != nil {
		return nil, s.createUserErr
	}
	return &auth.UserRecord{UserInfo: &auth.UserInfo{UID: "uid-123"}}, nil
}

func (s *stubIdentity) VerifyIDToken(_ context.Context, _ string) (*auth.Token, error) {
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}
	return &auth.Token{UID: s.verifyUID}, nil
}

func (s *stubIdentity) CustomToken(_ context.Context, uid string) (string, error) {
	if s.customTokenErr != nil {
		return "", s.customTokenErr
	}
	return "custom-token-for-" + uid, nil
}

func (s *stubIdentity) GetUser(_ context.Context, _ string) (*auth.UserRecord, error) {
	if s.getUserErr != nil {
		return nil, s.getUserErr
	}
	return s.getUserRecord, nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users     map[string]*models.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *user
	cp.CreatedAt = time.Now().UTC()
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, uid string) (*models.User, error) {
	u, ok := r.users[uid]
	if !ok {
		return nil, fmt.Errorf("user '%s': %w", uid, db.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Upsert(_ context.Context, user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

// fakeOutboxRepo records enqueued entries.
type fakeOutboxRepo struct {
	entries []*models.ProfileMirrorEntry
}

func (r *fakeOutboxRepo) Enqueue(_ context.Context, entry *models.ProfileMirrorEntry) (string, error) {
	cp := *entry
	r.entries = append(r.entries, &cp)
	return fmt.Sprintf("entry-%d", len(r.entries)), nil
}

func (r *fakeOutboxRepo) ListPending(_ context.Context, limit int) ([]*models.ProfileMirrorEntry, error) {
	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	return r.entries[:limit], nil
}

func (r *fakeOutboxRepo) Update(_ context.Context, _ *models.ProfileMirrorEntry) error {
	return nil
}

func TestSignupRequiresEmailAndPassword(t *testing.T) {
	identity := &stubIdentity{}
	svc := NewAuthService(identity, newFakeUserRepo(), &fakeOutboxRepo{}, zap.NewNop())

	for _, req := range []models.SignupRequest{
		{},
		{Email: "a@example.com"},
		{Password: "secret123"},
	} {
		_, err := svc.Signup(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation)
	}
	// Validation fails before the provider is ever called.
	assert.Zero(t, identity.createUserCalls)
}

func TestSignupWritesProfileMirror(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(&stubIdentity{}, userRepo, &fakeOutboxRepo{}, zap.NewNop())

	uid, err := svc.Signup(context.Background(), models.SignupRequest{
		Email:       "a@example.com",
		Password:    "secret123",
		DisplayName: "Ann",
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-123", uid)

	mirror, err := userRepo.GetByID(context.Background(), "uid-123")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", mirror.Email)
	assert.Equal(t, "Ann", mirror.DisplayName)
}

func TestSignupMirrorFailureEnqueuesOutbox(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.createErr = errors.New("firestore unavailable")
	outbox := &fakeOutboxRepo{}
	svc := NewAuthService(&stubIdentity{}, userRepo, outbox, zap.NewNop())

	uid, err := svc.Signup(context.Background(), models.SignupRequest{
		Email:    "a@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-123", uid)

	require.Len(t, outbox.entries, 1)
	entry := outbox.entries[0]
	assert.Equal(t, "uid-123", entry.UID)
	assert.Equal(t, "a@example.com", entry.Email)
	assert.Equal(t, models.MirrorStatusPending, entry.Status)
	assert.Contains(t, entry.LastError, "firestore unavailable")
}

func TestSignupProviderFailure(t *testing.T) {
	identity := &stubIdentity{createUserErr: errors.New("EMAIL_EXISTS")}
	outbox := &fakeOutboxRepo{}
	svc := NewAuthService(identity, newFakeUserRepo(), outbox, zap.NewNop())

	_, err := svc.Signup(context.Background(), models.SignupRequest{
		Email:    "a@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Empty(t, outbox.entries)
}

func TestLoginMintsCustomToken(t *testing.T) {
	identity := &stubIdentity{verifyUID: "uid-123"}
	svc := NewAuthService(identity, newFakeUserRepo(), &fakeOutboxRepo{}, zap.NewNop())

	resp, err := svc.Login(context.Background(), "valid-id-token")
	require.NoError(t, err)
	assert.Equal(t, "uid-123", resp.UID)
	assert.Equal(t, "custom-token-for-uid-123", resp.CustomToken)
}

func TestLoginRejectsBadToken(t *testing.T) {
	identity := &stubIdentity{verifyErr: errors.New("ID token has expired")}
	svc := NewAuthService(identity, newFakeUserRepo(), &fakeOutboxRepo{}, zap.NewNop())

	_, err := svc.Login(context.Background(), "expired")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Login(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProfileMergesMirror(t *testing.T) {
	identity := &stubIdentity{
		getUserRecord: &auth.UserRecord{
			UserInfo:      &auth.UserInfo{UID: "uid-123", Email: "stale@example.com", DisplayName: "Stale"},
			EmailVerified: true,
		},
	}
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.Create(context.Background(), &models.User{
		ID:          "uid-123",
		Email:       "fresh@example.com",
		DisplayName: "Fresh",
	}))
	svc := NewAuthService(identity, userRepo, &fakeOutboxRepo{}, zap.NewNop())

	profile, err := svc.Profile(context.Background(), "uid-123")
	require.NoError(t, err)
	assert.Equal(t, "uid-123", profile.UID)
	assert.Equal(t, "fresh@example.com", profile.Email)
	assert.Equal(t, "Fresh", profile.DisplayName)
	assert.True(t, profile.EmailVerified)
	assert.False(t, profile.CreatedAt.IsZero())
}

func TestProfileMissingMirror(t *testing.T) {
	identity := &stubIdentity{
		getUserRecord: &auth.UserRecord{UserInfo: &auth.UserInfo{UID: "uid-123"}},
	}
	svc := NewAuthService(identity, newFakeUserRepo(), &fakeOutboxRepo{}, zap.NewNop())

	_, err := svc.Profile(context.Background(), "uid-123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
