package service

import (
	"context"
	"fmt"
	"log"

	"gatekeeper/internal/auth"
	"gatekeeper/internal/cache"
	apperrors "gatekeeper/internal/errors"
	"gatekeeper/internal/model"
	"gatekeeper/internal/provider"
	"gatekeeper/internal/repository"
)

const defaultRole = "user"

// RegisterParams carries the profile fields of a password registration.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Age      int
	Country  string
	Gender   string
	Role     string
}

// AuthService handles authentication, registration, and identity reconciliation.
type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	GoogleAuth(ctx context.Context, credential string) (*model.User, string, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	verifier   provider.Verifier
	cache      *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, verifier provider.Verifier, cache *cache.Client) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		verifier:   verifier,
		cache:      cache,
	}
}

// Register creates a new password-authenticated user and issues a token.
// Email uniqueness is ultimately enforced by the store's unique index; the
// pre-read only provides the common-case error without an insert attempt.
func (s *authService) Register(ctx context.Context, params RegisterParams) (*model.User, string, error) {
	existing, err := s.users.FindByEmail(ctx, params.Email)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrDuplicateEmail
	}
	if err != nil && !repository.IsNotFound(err) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	role := params.Role
	if role == "" {
		role = defaultRole
	}

	user := &model.User{
		Name:         params.Name,
		Email:        params.Email,
		Age:          params.Age,
		Country:      params.Country,
		Gender:       params.Gender,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			// lost an insert race: same outcome as the pre-read hit
			return nil, "", apperrors.ErrDuplicateEmail
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user by email and password and issues a token.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, "", apperrors.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	// Google-only accounts have no usable credential; refuse before comparing
	// so an absent hash never reaches bcrypt. Linked accounts keep their
	// password hash and may still log in with it.
	if user.PasswordHash == "" {
		return nil, "", apperrors.ErrProviderMismatch
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", apperrors.ErrBadPassword
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// GoogleAuth verifies a Google ID token, reconciles the verified identity to a
// user record, and issues a token. Replaying the same verified identity always
// reconciles to the same record.
func (s *authService) GoogleAuth(ctx context.Context, credential string) (*model.User, string, error) {
	identity, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		log.Printf("google verification failed: %v", err)
		return nil, "", apperrors.ErrVerification
	}

	user, err := s.reconcileGoogleIdentity(ctx, identity)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// reconcileGoogleIdentity maps a verified identity to exactly one user record:
// create when nothing matches, link when an unlinked record matches, reuse when
// the record already carries this subject. An email match bound to a different
// subject is rejected rather than silently reused or overwritten.
func (s *authService) reconcileGoogleIdentity(ctx context.Context, identity *provider.Identity) (*model.User, error) {
	user, err := s.users.FindByEmailOrGoogleID(ctx, identity.Email, identity.Subject)
	switch {
	case err == nil:
	case repository.IsNotFound(err):
		created, err := s.createGoogleUser(ctx, identity)
		if err == nil {
			return created, nil
		}
		if !repository.IsDuplicateKey(err) {
			return nil, err
		}
		// lost a create race; the store cannot say which unique key collided,
		// so re-read the winner and classify it like a pre-check match
		user, err = s.users.FindByEmailOrGoogleID(ctx, identity.Email, identity.Subject)
		if err != nil {
			if repository.IsNotFound(err) {
				// winner vanished between insert and re-read
				return nil, apperrors.ErrDuplicateEmail
			}
			return nil, fmt.Errorf("find user: %w", err)
		}
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user.GoogleID == nil {
		// link: the existing password-registered profile is preserved untouched
		googleID := identity.Subject
		user.GoogleID = &googleID
		user.IsGoogleAuth = true
		user.Picture = identity.Picture
		user.EmailVerified = true
		if err := s.users.Update(ctx, user); err != nil {
			if repository.IsDuplicateKey(err) {
				// the subject got bound to another record between read and write
				return nil, apperrors.ErrDuplicateSubject
			}
			return nil, fmt.Errorf("link user: %w", err)
		}
		_ = s.cache.Delete(ctx, profileCacheKey(user.ID))
		return user, nil
	}

	if *user.GoogleID != identity.Subject {
		return nil, apperrors.ErrDuplicateSubject
	}

	return user, nil
}

func (s *authService) createGoogleUser(ctx context.Context, identity *provider.Identity) (*model.User, error) {
	googleID := identity.Subject
	user := &model.User{
		Name:          identity.Name,
		Email:         identity.Email,
		Role:          defaultRole,
		GoogleID:      &googleID,
		IsGoogleAuth:  true,
		Picture:       identity.Picture,
		EmailVerified: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
