package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/restobill/restobill/internal/models"
	"github.com/restobill/restobill/pkg/apperr"
	"github.com/restobill/restobill/pkg/config"
	"github.com/restobill/restobill/pkg/logctx"
	"github.com/restobill/restobill/pkg/tool"
	"github.com/restobill/restobill/pkg/types"
)

// Service manages backoffice accounts and session tokens.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.SugaredLogger

	now func() time.Time
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{cfg: cfg, db: db, log: log, now: time.Now}
}

type CreateUserInput struct {
	Email        string         `json:"email"`
	Password     string         `json:"password"`
	Role         types.UserRole `json:"role"`
	RestaurantID string         `json:"restaurant_id"`
}

type LoginResult struct {
	Token string            `json:"token"`
	User  *models.AdminUser `json:"user"`
}

func (s *Service) CreateUser(ctx context.Context, in *CreateUserInput) (*models.AdminUser, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || len(in.Password) < 8 {
		return nil, apperr.Validationf("email and a password of at least 8 characters are required")
	}
	if in.Role != types.UserRoleSuperAdmin && in.Role != types.UserRoleAdmin {
		return nil, apperr.Validationf("invalid role: %s", in.Role)
	}
	if in.Role == types.UserRoleAdmin && in.RestaurantID == "" {
		return nil, apperr.Validationf("restaurant_id is required for admin users")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internalf("failed to hash password: %w", err)
	}

	u := &models.AdminUser{
		ID:           tool.GenerateUUIDV7(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		RestaurantID: in.RestaurantID,
		IsActive:     true,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.AdminUser{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return apperr.Internalf("failed to check email: %w", err)
		}
		if count > 0 {
			return apperr.Conflictf("email already registered")
		}
		if err := tx.Create(u).Error; err != nil {
			return apperr.Internalf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("admin user created", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// Login verifies credentials and issues a session token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u models.AdminUser
	if err := s.db.WithContext(ctx).Where("email = ? AND is_active = ?", email, true).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validationf("invalid credentials")
		}
		return nil, apperr.Internalf("failed to load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Validationf("invalid credentials")
	}

	token, err := issueToken(s.cfg.Auth.JWTSecret, s.cfg.Auth.TokenTTL, u.ID, u.Role, u.RestaurantID, s.now())
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("login", "user_id", u.ID, "role", u.Role)
	return &LoginResult{Token: token, User: &u}, nil
}

// VerifyToken parses and validates a session token.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	return parseToken(s.cfg.Auth.JWTSecret, tokenString)
}
