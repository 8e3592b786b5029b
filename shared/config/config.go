package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HTTP            HTTP          `yaml:"http"`
	Log             Log           `yaml:"log"`
	Storage         Storage       `yaml:"storage"`
	JwtTTL          time.Duration `yaml:"jwt_ttl"`
	SecureCookies   bool          `yaml:"secure_cookies"`
	CreateRateLimit float64       `yaml:"create_rate_limit"` // messages per second per identity
	CreateRateBurst float64       `yaml:"create_rate_burst"`
}

type HTTP struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type Storage struct {
	Driver     string `yaml:"driver"` // memory | postgres | sqlite
	SqlitePath string `yaml:"sqlite_path"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.UnmarshalStrict(configFile, output); err != nil {
		panic("can't unmarshal config file " + configPath + ": " + err.Error())
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder.
// Secrets can be overridden with JWT_SECRET and PG_PASSWORD.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		panic(err.Error())
	}
	return cfg
}

func (s *Config) applyEnv() {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		s.Private.JwtKey = v
	}
	if v := os.Getenv("PG_PASSWORD"); v != "" {
		s.Private.Pg.Password = v
	}
}

func (s *Config) applyDefaults() {
	if s.Public.HTTP.Port == 0 {
		s.Public.HTTP.Port = 8080
	}
	if s.Public.Log.Level == "" {
		s.Public.Log.Level = "info"
	}
	if s.Public.Storage.Driver == "" {
		s.Public.Storage.Driver = DriverMemory
	}
	if s.Public.Storage.Driver == DriverSqlite && s.Public.Storage.SqlitePath == "" {
		s.Public.Storage.SqlitePath = "data/msgboard.db"
	}
	if s.Public.JwtTTL == 0 {
		s.Public.JwtTTL = 24 * time.Hour
	}
	if s.Public.CreateRateLimit == 0 {
		s.Public.CreateRateLimit = 1
	}
	if s.Public.CreateRateBurst == 0 {
		s.Public.CreateRateBurst = 1
	}
}

type configError string

func (e configError) Error() string { return string(e) }

func (s *Config) validate() error {
	switch s.Public.Storage.Driver {
	case DriverMemory, DriverPostgres, DriverSqlite:
	default:
		return configError("unknown storage driver: " + s.Public.Storage.Driver)
	}
	if s.Private.JwtKey == "" {
		return configError("jwt_key is required (private.yaml or JWT_SECRET)")
	}
	return nil
}
