package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "valid development config",
			config: Config{Port: "8080", JWTSecret: "dev-secret", Env: "development"},
		},
		{
			name:    "missing port",
			config:  Config{JWTSecret: "dev-secret"},
			wantErr: "PORT is required",
		},
		{
			name:    "missing JWT secret",
			config:  Config{Port: "8080"},
			wantErr: "JWT_SECRET is required",
		},
		{
			name: "production requires long JWT secret",
			config: Config{
				Port:      "8080",
				JWTSecret: "short",
				Env:       "production",
			},
			wantErr: "JWT_SECRET must be at least 32 characters in production",
		},
		{
			name: "production requires strong DB password",
			config: Config{
				Port:       "8080",
				JWTSecret:  "a-very-long-secret-key-of-32-chars!!",
				DBPassword: "password",
				Env:        "production",
			},
			wantErr: "a strong DB_PASSWORD is required in production",
		},
		{
			name: "valid production config",
			config: Config{
				Port:       "8080",
				JWTSecret:  "a-very-long-secret-key-of-32-chars!!",
				DBPassword: "s0me-real-p4ssword",
				DBSSLMode:  "require",
				Env:        "production",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.False(t, (&Config{Env: ""}).IsProduction())
}
