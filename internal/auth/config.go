package auth

import (
	"fmt"
	"time"
)

// DefaultTokenTTL is the lifetime of tokens issued without an explicit TTL
const DefaultTokenTTL = time.Hour

// AuthConfig holds the admin API authentication settings
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
}

// NewAuthConfig builds an AuthConfig with defaults for the optional fields
func NewAuthConfig(secret string) *AuthConfig {
	return &AuthConfig{
		JWTSecret: secret,
		Issuer:    "product-relations-backend",
		TokenTTL:  DefaultTokenTTL,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT secret must be at least 16 characters")
	}
	if c.TokenTTL < 0 {
		return fmt.Errorf("token TTL must not be negative")
	}
	return nil
}
