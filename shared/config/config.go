package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Environment variables that override private.yaml, so secrets can stay out of files.
const (
	EnvPgPassword = "KANBAN_PG_PASSWORD"
	EnvJwtKey     = "KANBAN_JWT_KEY"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpPort      int           `yaml:"http_port" validate:"required,min=1,max=65535"`
	JwtTTL        time.Duration `yaml:"jwt_ttl" validate:"required"`
	SecureCookies bool          `yaml:"secure_cookies"`
	CorsOrigins   []string      `yaml:"cors_origins"`
	LogLevel      string        `yaml:"log_level"`
	LogJSON       bool          `yaml:"log_json"`
	// requests per second allowed for one authenticated user on mutating routes
	UserRps float64 `yaml:"user_rps" validate:"required,gt=0"`
	// login/signup attempts allowed for one IP per minute
	AuthAttemptsPerMinute float64 `yaml:"auth_attempts_per_minute" validate:"required,gt=0"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password" validate:"required"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key" validate:"required,min=16"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

// applyEnv loads an optional .env next to the yaml files and lets the environment override secrets.
func applyEnv(configFolder string, private *Private) {
	envPath := path.Join(configFolder, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			panic("can't load " + envPath + ": " + err.Error())
		}
	}
	if v := os.Getenv(EnvPgPassword); v != "" {
		private.Pg.Password = v
	}
	if v := os.Getenv(EnvJwtKey); v != "" {
		private.JwtKey = v
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)
	applyEnv(configFolder, &private)

	cfg := &Config{public, private}
	if err := validator.New().Struct(cfg); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return cfg
}
