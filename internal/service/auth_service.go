package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"halladmin/internal/auth"
	"halladmin/internal/errors"
	"halladmin/internal/metrics"
	"halladmin/internal/model"
	"halladmin/internal/repository"
)

// AuthService verifies credentials and issues dashboard sessions.
type AuthService interface {
	Authenticate(ctx context.Context, username, pin string) (accessToken, refreshToken string, user *model.User, err error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	audit      AuditRecorder
	log        zerolog.Logger
	now        func() time.Time
}

// NewAuthService creates a new authentication service. now may be nil, in
// which case time.Now is used.
func NewAuthService(
	userRepo repository.UserRepository,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	audit AuditRecorder,
	log zerolog.Logger,
	now func() time.Time,
) AuthService {
	if now == nil {
		now = time.Now
	}
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		audit:      audit,
		log:        log,
		now:        now,
	}
}

// Authenticate checks a username/PIN pair and returns session tokens.
// Unknown username, wrong PIN and inactive account all fail with
// ErrInvalidCredentials so the cases cannot be told apart by a caller.
func (s *authService) Authenticate(ctx context.Context, username, pin string) (string, string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err == gorm.ErrRecordNotFound {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", "", nil, errors.ErrInvalidCredentials
	}
	if err != nil {
		return "", "", nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPIN(user.PINHash, pin) || !user.IsActive {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", "", nil, errors.ErrInvalidCredentials
	}

	// Stamp last login. Best-effort: a failed write must not undo the login.
	loginAt := s.now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, loginAt); err != nil {
		s.log.Warn().Err(err).Str("username", user.Username).Msg("last-login stamp failed")
	} else {
		user.LastLogin = &loginAt
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Username, user.Role, user.HallNumber)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.Username)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, user.Username, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	s.audit.Record(user.ID, model.ActionLogin, "user logged in successfully")
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return accessToken, refreshToken, user, nil
}

// Refresh validates a refresh token and returns a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.ID == "" {
		return "", errors.ErrInvalidCredentials
	}

	storedUserID, storedUsername, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil {
		return "", errors.ErrInvalidCredentials
	}
	if storedUserID.String() != claims.UserID || storedUsername != claims.Username {
		return "", errors.ErrInvalidCredentials
	}

	// Re-read the user so a deactivation since login takes effect here.
	user, err := s.userRepo.FindByID(ctx, storedUserID)
	if err == gorm.ErrRecordNotFound {
		return "", errors.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if !user.IsActive {
		return "", errors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Username, user.Role, user.HallNumber)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes a refresh token and audits the logout.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.ID == "" {
		return errors.ErrInvalidCredentials
	}

	userID, _, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil {
		return errors.ErrInvalidCredentials
	}

	if err := s.tokenStore.DeleteRefreshToken(ctx, claims.ID); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}

	s.audit.Record(userID, model.ActionLogout, "user logged out")
	return nil
}
