package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/babies-shop/commerce-api/internal/core/domain"
	"github.com/babies-shop/commerce-api/internal/core/ports"
)

// AuthService implements registration, password login, and the Google
// sign-in exchange.
type AuthService struct {
	repo      ports.UserRepository
	verifier  ports.IdentityVerifier
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, verifier ports.IdentityVerifier, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, verifier: verifier, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Address:      input.Address,
		Phone:        input.Phone,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// LoginWithGoogle exchanges an external identity assertion for a local
// session. First sign-in creates the account with role "user" and an
// unusable random password hash; password login stays impossible until the
// user sets one through a future reset flow.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (string, *domain.User, error) {
	if s.verifier == nil {
		return "", nil, fmt.Errorf("google sign-in: %w", domain.ErrInvalidCredentials)
	}

	profile, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return "", nil, fmt.Errorf("google sign-in: %w", domain.ErrInvalidCredentials)
	}

	user, err := s.repo.FindByEmail(ctx, profile.Email)
	switch {
	case err == nil:
		// existing account, fall through to token issue
	case errors.Is(err, domain.ErrUserNotFound):
		user, err = s.createGoogleUser(ctx, profile)
		if err != nil {
			return "", nil, err
		}
	default:
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("google sign-in")
	return token, user, nil
}

func (s *AuthService) GetAccount(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) createGoogleUser(ctx context.Context, profile *ports.ExternalProfile) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(randomSecret()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        profile.Email,
		PasswordHash: string(hash),
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user created via google sign-in")
	return created, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// randomSecret returns 32 bytes of hex-encoded randomness for accounts that
// have no password of their own.
func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
