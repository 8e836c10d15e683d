package config

import (
	"os"
	"sync"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		expiry := 24 * time.Hour
		if raw := os.Getenv("JWT_EXPIRY"); raw != "" {
			if parsed, err := time.ParseDuration(raw); err == nil {
				expiry = parsed
			}
		}
		authConfig = &AuthConfig{
			JWTSecret:   os.Getenv("JWT_SECRET"),
			TokenExpiry: expiry,
		}
	})
	return authConfig
}
