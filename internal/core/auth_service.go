package core

import (
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/db"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/models"
)

// IdentityClient is the slice of the Firebase Auth client the service needs;
// tests substitute a stub.
type IdentityClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	CustomToken(ctx context.Context, uid string) (string, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
}

// authService implements AuthService against Firebase Auth plus the profile
// mirror collection.
type authService struct {
	identity IdentityClient
	userRepo db.UserRepository
	outbox   db.OutboxRepository
	logger   *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(identity IdentityClient, userRepo db.UserRepository, outbox db.OutboxRepository, logger *zap.Logger) AuthService {
	return &authService{
		identity: identity,
		userRepo: userRepo,
		outbox:   outbox,
		logger:   logger,
	}
}

// Signup creates the identity-provider user and writes the profile mirror.
// A mirror failure does not fail the signup: the write is recorded in the
// outbox and retried by the scheduled worker.
func (s *authService) Signup(ctx context.Context, req models.SignupRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	userToCreate := (&auth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password).
		DisplayName(req.DisplayName).
		EmailVerified(false)

	record, err := s.identity.CreateUser(ctx, userToCreate)
	if err != nil {
		return "", fmt.Errorf("failed to create identity-provider user: %w", err)
	}

	mirror := &models.User{
		ID:          record.UID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
	}
	if err := s.userRepo.Create(ctx, mirror); err != nil {
		s.logger.Warn("Profile mirror write failed; enqueueing outbox entry",
			zap.String("uid", record.UID), zap.Error(err))
		entry := &models.ProfileMirrorEntry{
			UID:         record.UID,
			Email:       req.Email,
			DisplayName: req.DisplayName,
			Status:      models.MirrorStatusPending,
			LastError:   err.Error(),
		}
		if _, enqErr := s.outbox.Enqueue(ctx, entry); enqErr != nil {
			s.logger.Error("Failed to enqueue profile mirror outbox entry",
				zap.String("uid", record.UID), zap.Error(enqErr))
		}
	}

	return record.UID, nil
}

// Login verifies the client-supplied ID token and mints a fresh custom token
// for the same subject.
func (s *authService) Login(ctx context.Context, idToken string) (*models.LoginResponse, error) {
	if idToken == "" {
		return nil, fmt.Errorf("%w: idToken is required", ErrValidation)
	}

	token, err := s.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	customToken, err := s.identity.CustomToken(ctx, token.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to mint custom token for uid '%s': %w", token.UID, err)
	}

	return &models.LoginResponse{UID: token.UID, CustomToken: customToken}, nil
}

// Profile fetches the identity-provider record and merges the profile mirror
// document. A missing mirror is treated as a missing profile.
func (s *authService) Profile(ctx context.Context, uid string) (*models.UserProfile, error) {
	record, err := s.identity.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get identity-provider user '%s': %w", uid, err)
	}

	mirror, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: no profile document for uid '%s'", ErrUserNotFound, uid)
		}
		return nil, fmt.Errorf("failed to get profile mirror for uid '%s': %w", uid, err)
	}

	profile := &models.UserProfile{
		UID:           record.UID,
		Email:         record.Email,
		DisplayName:   record.DisplayName,
		EmailVerified: record.EmailVerified,
		CreatedAt:     mirror.CreatedAt,
	}
	// The mirror wins for fields it carries; the provider record fills gaps.
	if mirror.Email != "" {
		profile.Email = mirror.Email
	}
	if mirror.DisplayName != "" {
		profile.DisplayName = mirror.DisplayName
	}
	return profile, nil
}
