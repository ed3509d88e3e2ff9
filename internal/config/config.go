package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Server   ServerConfig   `env:",prefix=SERVER_"`
	Mongo    MongoConfig    `env:",prefix=MONGO_"`
	JWT      JWTConfig      `env:",prefix=JWT_"`
	Security SecurityConfig `env:",prefix="`
	SMTP     SMTPConfig     `env:",prefix=SMTP_"`
	Groq     GroqConfig     `env:",prefix=GROQ_"`
	CORS     CORSConfig     `env:",prefix=CORS_"`
	Env      string         `env:"ENV,default=development"`
}

type ServerConfig struct {
	Port         string   `env:"PORT,default=8080"`
	Host         string   `env:"HOST,default=0.0.0.0"`
	ReadTimeout  Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout Duration `env:"WRITE_TIMEOUT,default=15s"`
}

type MongoConfig struct {
	URI      string `env:"URI,default=mongodb://localhost:27017"`
	Database string `env:"DATABASE,default=codehire"`
}

type JWTConfig struct {
	Secret        string   `env:"SECRET,required"`
	SessionExpiry Duration `env:"SESSION_EXPIRY,default=7d"`
}

type SecurityConfig struct {
	BCryptCost int      `env:"BCRYPT_COST,default=12"`
	OTPExpiry  Duration `env:"OTP_EXPIRY,default=5m"`
}

type SMTPConfig struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT,default=587"`
	User     string `env:"USER"`
	Password string `env:"PASS"`
	From     string `env:"FROM,default=CodeHire AI <noreply@codehire.ai>"`
}

type GroqConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL,default=llama-3.3-70b-versatile"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,default=http://localhost:3000"`
	AllowedMethods []string `env:"ALLOWED_METHODS,default=GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders []string `env:"ALLOWED_HEADERS,default=Content-Type,Authorization"`
}

// Address returns the SMTP relay address
func (s SMTPConfig) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// Configured reports whether outbound email delivery is set up
func (s SMTPConfig) Configured() bool {
	return s.Host != "" && s.User != "" && s.Password != ""
}

// IsProduction reports whether the service runs in production mode
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var config Config

	if err := envconfig.Process(ctx, &config); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// A missing or weak signing secret must stop the process in every
	// environment; there is no development fallback.
	if len(config.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	return &config, nil
}

// LoadWithDefaults loads configuration with default context
func LoadWithDefaults() (*Config, error) {
	return Load(context.Background())
}
