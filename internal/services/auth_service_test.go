package services

import (
	"context"
	"testing"

	"github.com/xosoviet/xoso-backend/internal/config"
	"github.com/xosoviet/xoso-backend/internal/models"
	"github.com/xosoviet/xoso-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeAdminUserRepo keeps admin accounts keyed by email
type fakeAdminUserRepo struct {
	users map[string]*models.AdminUser
}

func newFakeAdminUserRepo() *fakeAdminUserRepo {
	return &fakeAdminUserRepo{users: make(map[string]*models.AdminUser)}
}

func (f *fakeAdminUserRepo) Create(ctx context.Context, user *models.AdminUser) error {
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	return nil
}

func (f *fakeAdminUserRepo) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return user, nil
}

func authTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
	}
}

func TestRegisterThenLogin(t *testing.T) {
	cfg := authTestConfig()
	svc := NewAuthService(newFakeAdminUserRepo(), cfg)

	user, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "ops@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Password != "" {
		t.Error("Register must not return the password hash")
	}
	if user.Role != "admin" {
		t.Errorf("role = %q, want default admin", user.Role)
	}

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ops@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := utils.ValidateJWT(resp.Token, cfg)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims["email"] != "ops@example.com" {
		t.Errorf("email claim = %v, want ops@example.com", claims["email"])
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(newFakeAdminUserRepo(), authTestConfig())

	if _, err := svc.Login(context.Background(), &models.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	}); err == nil {
		t.Fatal("expected login to fail for an unknown email")
	}

	if _, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email: "ops@example.com", Password: "correct-horse",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Login(context.Background(), &models.LoginRequest{
		Email: "ops@example.com", Password: "wrong-password",
	}); err == nil {
		t.Fatal("expected login to fail for a wrong password")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeAdminUserRepo(), authTestConfig())

	req := &models.RegisterRequest{Email: "ops@example.com", Password: "correct-horse"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(context.Background(), req); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}
