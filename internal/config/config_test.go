package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Passphrase: "secret",
		Parallel:   4,
		Files:      []string{"a.txt"},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateHexKey(t *testing.T) {
	cfg := validConfig()
	cfg.Passphrase = ""
	cfg.Key = "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4"

	assert.NoError(t, cfg.Validate())
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"key and passphrase together", func(c *Config) {
			c.Key = "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4"
		}},
		{"key and key file together", func(c *Config) {
			c.Passphrase = ""
			c.Key = "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4"
			c.KeyFile = "key.hex"
		}},
		{"key file and passphrase together", func(c *Config) {
			c.KeyFile = "key.hex"
		}},
		{"key too short", func(c *Config) {
			c.Passphrase = ""
			c.Key = "abcd"
		}},
		{"key not hex", func(c *Config) {
			c.Passphrase = ""
			c.Key = "zz3deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4"
		}},
		{"zero workers", func(c *Config) {
			c.Parallel = 0
		}},
		{"no files", func(c *Config) {
			c.Files = nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			assert.Error(t, cfg.Validate())
		})
	}
}
