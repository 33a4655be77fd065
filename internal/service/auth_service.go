package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"patrimonio-go/internal/config"
	"patrimonio-go/internal/dto"
	"patrimonio-go/internal/models"
	"patrimonio-go/internal/repository"
	"patrimonio-go/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TokenBlacklist store of revoked refresh tokens
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AttemptLimiter counts attempts per key within a window
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// AuthService registration, login, tokens and password recovery
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *utils.JWTManager
	cfg        *config.Config
	logger     *logrus.Logger

	// optional, nil when Redis is disabled
	blacklist    TokenBlacklist
	resetLimiter AttemptLimiter
}

// NewAuthService creates the auth service
func NewAuthService(userRepo *repository.UserRepository, jwtManager *utils.JWTManager, cfg *config.Config, logger *logrus.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		cfg:        cfg,
		logger:     logger,
	}
}

// WithBlacklist enables refresh token revocation
func (s *AuthService) WithBlacklist(blacklist TokenBlacklist) *AuthService {
	s.blacklist = blacklist
	return s
}

// WithResetLimiter enables throttling of password reset attempts
func (s *AuthService) WithResetLimiter(limiter AttemptLimiter) *AuthService {
	s.resetLimiter = limiter
	return s
}

// Register creates a user with a viewer profile holding the secret question
// and the hashed secret answer
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	exists, err := s.userRepo.ExistsByUsername(req.Username, 0)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("username %w", ErrConflict)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	answerHash, err := utils.HashPassword(req.SecretAnswer)
	if err != nil {
		return nil, fmt.Errorf("hash secret answer: %w", err)
	}

	question := req.SecretQuestion
	user := &models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		IsActive:     true,
		Profile: models.Profile{
			Role:           models.RoleViewer,
			SecretQuestion: &question,
			SecretAnswer:   &answerHash,
		},
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("user registered")
	return user, nil
}

// Login checks the credentials and issues a token pair
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	pair, err := s.jwtManager.GenerateTokenPair(user.ID, user.Username, string(user.Profile.Role))
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &dto.LoginResponse{
		Access:    pair.Access,
		Refresh:   pair.Refresh,
		TokenType: "Bearer",
		User:      dto.NewUserInfo(user),
	}, nil
}

// Refresh exchanges a refresh token for a new access token. The role is
// re-read so role changes show up without logging in again.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := s.jwtManager.ValidateTokenType(refreshToken, utils.TokenTypeRefresh)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if s.blacklist != nil {
		revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrInvalidToken
		}
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username, string(user.Profile.Role))
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &dto.RefreshResponse{Access: access, TokenType: "Bearer"}, nil
}

// Logout revokes a refresh token. Without a blacklist it is a no-op and the
// client simply discards its tokens.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtManager.ValidateTokenType(refreshToken, utils.TokenTypeRefresh)
	if err != nil {
		return ErrInvalidToken
	}

	if s.blacklist == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	return s.blacklist.Revoke(ctx, claims.ID, ttl)
}

// GetMe returns the current user
func (s *AuthService) GetMe(userID uint) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, notFound(err, "user")
	}

	info := dto.NewUserInfo(user)
	return &info, nil
}

// GetSecretQuestion returns the secret question configured by username
func (s *AuthService) GetSecretQuestion(username string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", notFound(err, "user")
	}

	if !user.Profile.HasSecretQuestion() {
		return "", ErrNoSecretQuestion
	}
	return *user.Profile.SecretQuestion, nil
}

// ResetPassword sets a new password when the secret answer matches the stored
// hash. On any failure the password is left unchanged.
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	log := s.logger.WithField("username", req.Username)

	if s.resetLimiter != nil {
		allowed, err := s.resetLimiter.Allow(ctx, req.Username)
		if err != nil {
			return err
		}
		if !allowed {
			log.Warn("password reset throttled")
			return ErrTooManyAttempts
		}
	}

	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return notFound(err, "user")
	}

	answer := user.Profile.SecretAnswer
	if answer == nil || *answer == "" || utils.CheckPassword(req.SecretAnswer, *answer) != nil {
		log.Warn("password reset with wrong secret answer")
		return ErrWrongSecretAnswer
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(user.ID, passwordHash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if s.resetLimiter != nil {
		if err := s.resetLimiter.Reset(ctx, req.Username); err != nil {
			log.WithError(err).Warn("reset limiter")
		}
	}

	log.WithField("user_id", user.ID).Info("password reset")
	return nil
}

// InitAdmin creates the configured administrator when no admin exists
func (s *AuthService) InitAdmin() error {
	admin, err := s.userRepo.GetAdmin()
	if err == nil && admin != nil {
		return nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	exists, err := s.userRepo.ExistsByUsername(s.cfg.Admin.Username, 0)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("username %q is taken by a non-admin user", s.cfg.Admin.Username)
	}

	passwordHash := s.cfg.Admin.Password
	if !utils.IsBcryptHash(passwordHash) {
		passwordHash, err = utils.HashPassword(s.cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
	}

	user := &models.User{
		Username:     s.cfg.Admin.Username,
		PasswordHash: passwordHash,
		IsActive:     true,
		Profile:      models.Profile{Role: models.RoleAdmin},
	}

	if s.cfg.Admin.SecretQuestion != "" && s.cfg.Admin.SecretAnswer != "" {
		answerHash, err := utils.HashPassword(s.cfg.Admin.SecretAnswer)
		if err != nil {
			return fmt.Errorf("hash secret answer: %w", err)
		}
		question := s.cfg.Admin.SecretQuestion
		user.Profile.SecretQuestion = &question
		user.Profile.SecretAnswer = &answerHash
	}

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	s.logger.WithField("username", user.Username).Info("administrator account created")
	return nil
}
