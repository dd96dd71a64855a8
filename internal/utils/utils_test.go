package utils

import (
	"testing"
	"time"

	"github.com/xosoviet/xoso-backend/internal/config"
	"github.com/xosoviet/xoso-backend/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:    "test-secret",
			ExpiresIn: 3600,
		},
	}
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateJWT("user-1", "ops@example.com", "admin", cfg)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token, cfg)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims["sub"] != "user-1" {
		t.Errorf("sub = %v, want user-1", claims["sub"])
	}
	if claims["email"] != "ops@example.com" {
		t.Errorf("email = %v, want ops@example.com", claims["email"])
	}
	if claims["role"] != "admin" {
		t.Errorf("role = %v, want admin", claims["role"])
	}
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-1", "ops@example.com", "admin", testConfig())
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	other := testConfig()
	other.JWT.Secret = "different-secret"
	if _, err := ValidateJWT(token, other); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestGetDrawProvinces(t *testing.T) {
	north := GetDrawProvinces(models.RegionNorth, time.Monday)
	if len(north) != 1 || north[0] != "Hà Nội" {
		t.Errorf("north monday = %v, want [Hà Nội]", north)
	}

	south := GetDrawProvinces(models.RegionSouth, time.Saturday)
	if len(south) != 4 {
		t.Errorf("south saturday has %d provinces, want 4", len(south))
	}

	for _, region := range models.AllRegions() {
		for day := time.Sunday; day <= time.Saturday; day++ {
			if len(GetDrawProvinces(region, day)) == 0 {
				t.Errorf("%s has no draw on %s", region, day)
			}
		}
	}

	if got := GetDrawProvinces(models.Region("west"), time.Monday); got != nil {
		t.Errorf("unknown region = %v, want nil", got)
	}
}
