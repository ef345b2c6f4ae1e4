package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseConfig() *Config {
	return &Config{
		Port:       "8080",
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "filmorate",
		DBPassword: "filmorate",
		DBName:     "filmorate",
		DBSSLMode:  "disable",
		Env:        "development",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		expectErr bool
	}{
		{
			name:   "valid development config",
			mutate: func(c *Config) {},
		},
		{
			name:      "missing port",
			mutate:    func(c *Config) { c.Port = "" },
			expectErr: true,
		},
		{
			name:      "missing db name",
			mutate:    func(c *Config) { c.DBName = "" },
			expectErr: true,
		},
		{
			name:      "default password rejected in production",
			mutate:    func(c *Config) { c.Env = "production" },
			expectErr: true,
		},
		{
			name: "production with real password",
			mutate: func(c *Config) {
				c.Env = "production"
				c.DBPassword = "s3cr3t-pass"
				c.DBSSLMode = "require"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := baseConfig()
	assert.Equal(t,
		"host=localhost port=5432 user=filmorate password=filmorate dbname=filmorate sslmode=disable",
		cfg.DSN())

	cfg.DBSSLMode = ""
	assert.Contains(t, cfg.DSN(), "sslmode=disable")
}
