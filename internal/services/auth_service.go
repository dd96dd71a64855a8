package services

import (
	"context"
	"errors"
	"time"

	"github.com/xosoviet/xoso-backend/internal/config"
	"github.com/xosoviet/xoso-backend/internal/models"
	"github.com/xosoviet/xoso-backend/internal/repositories"
	"github.com/xosoviet/xoso-backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AdminUser, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

// Compile-time check to ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

// AuthServiceImpl handles admin account registration and login
type AuthServiceImpl struct {
	 userRepo repositories.AdminUserRepository
	 cfg      *config.Config
}

// NewAuthService creates a new AuthServiceImpl
func NewAuthService(userRepo repositories.AdminUserRepository, cfg *config.Config) *AuthServiceImpl {
	return &AuthServiceImpl{
		 userRepo: userRepo,
		 cfg:      cfg,
	}
}

// Register creates a new admin account with a bcrypt-hashed password
func (s *AuthServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*models.AdminUser, error) {
	 existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	 if err == nil && existing != nil {
		 return nil, errors.New("an account with this email already exists")
	 }
	 if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		 return nil, err
	 }

	 hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	 if err != nil {
		 return nil, errors.New("failed to hash password")
	 }

	 role := req.Role
	 if role == "" {
		 role = "admin"
	 }
	 user := &models.AdminUser{
		 Email:    req.Email,
		 Password: string(hashed),
		 Role:     role,
	 }
	 if err := s.userRepo.Create(ctx, user); err != nil {
		 return nil, err
	 }
	 slog.Info("admin account created", "email", user.Email, "role", user.Role)

	 user.Password = ""
	 return user, nil
}

// Login checks credentials and returns a signed JWT. Invalid email and
// invalid password produce the same error.
func (s *AuthServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	 user, err := s.userRepo.FindByEmail(ctx, req.Email)
	 if err != nil {
		 return nil, errors.New("invalid credentials")
	 }
	 if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		 return nil, errors.New("invalid credentials")
	 }

	 expiresAt := time.Now().Add(time.Second * time.Duration(s.cfg.JWT.ExpiresIn))
	 token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role, s.cfg)
	 if err != nil {
		 slog.Error("failed to sign token", "email", user.Email, "error", err)
		 return nil, errors.New("failed to generate token")
	 }

	 return &models.LoginResponse{
		 Token:     token,
		 ExpiresAt: expiresAt.Unix(),
	 }, nil
}
