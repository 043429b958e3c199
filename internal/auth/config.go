package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// MaxLeeway caps the clock skew tolerated between this service and the identity service
const MaxLeeway = 5 * time.Minute

// AuthConfig holds the bearer token settings shared with the identity service
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret" mapstructure:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer" mapstructure:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl" mapstructure:"token_ttl"`
	// Leeway is applied to exp, nbf and iat checks
	Leeway time.Duration `yaml:"leeway" json:"leeway" mapstructure:"leeway"`
}

// LoadAuthConfig reads config/auth.yaml (or configPath) and lets JWT_* environment
// variables override it. The secret has no default.
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("issuer", "shift-identity")
	v.SetDefault("token_ttl", time.Hour)
	v.SetDefault("leeway", 30*time.Second)

	for key, env := range map[string]string{
		"jwt_secret": "JWT_SECRET",
		"issuer":     "JWT_ISSUER",
		"token_ttl":  "JWT_TOKEN_TTL",
		"leeway":     "JWT_LEEWAY",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}
	return &config, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	switch {
	case c.JWTSecret == "":
		return errors.New("JWT secret is required")
	case c.Issuer == "":
		return errors.New("issuer is required")
	case c.TokenTTL <= 0:
		return errors.New("token ttl must be positive")
	case c.Leeway < 0 || c.Leeway > MaxLeeway:
		return fmt.Errorf("leeway must be between 0 and %s", MaxLeeway)
	}
	return nil
}
