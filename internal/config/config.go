// AngelaMos | 2026
// config.go

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Redis     RedisConfig     `koanf:"redis"`
	JWT       JWTConfig       `koanf:"jwt"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	CORS      CORSConfig      `koanf:"cors"`
	Log       LogConfig       `koanf:"log"`
	Otel      OtelConfig      `koanf:"otel"`
	Mail      MailConfig      `koanf:"mail"`
	Demo      DemoConfig      `koanf:"demo"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
	FrontendURL string `koanf:"frontend_url"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	StaticDir       string        `koanf:"static_dir"`
}

// DatabaseConfig configures the persistent store. An empty URL runs the
// service in demo mode on the in-memory stores.
type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	MonitorInterval time.Duration `koanf:"monitor_interval"`
}

type RedisConfig struct {
	URL          string `koanf:"url"`
	PoolSize     int    `koanf:"pool_size"`
	MinIdleConns int    `koanf:"min_idle_conns"`
}

type JWTConfig struct {
	PrivateKeyPath     string        `koanf:"private_key_path"`
	PublicKeyPath      string        `koanf:"public_key_path"`
	AccessTokenExpire  time.Duration `koanf:"access_token_expire"`
	RefreshTokenExpire time.Duration `koanf:"refresh_token_expire"`
	Issuer             string        `koanf:"issuer"`
	Audience           string        `koanf:"audience"`
}

type RateLimitConfig struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
	Burst    int           `koanf:"burst"`
}

type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"`
	AllowedMethods   []string `koanf:"allowed_methods"`
	AllowedHeaders   []string `koanf:"allowed_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           int      `koanf:"max_age"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type OtelConfig struct {
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	Enabled     bool    `koanf:"enabled"`
	Insecure    bool    `koanf:"insecure"`
	SampleRate  float64 `koanf:"sample_rate"`
}

// MailConfig holds SMTP credentials. Without a host and username every
// message is logged instead of sent.
type MailConfig struct {
	Host     string        `koanf:"host"`
	Port     int           `koanf:"port"`
	Username string        `koanf:"username"`
	Password string        `koanf:"password"`
	From     string        `koanf:"from"`
	Timeout  time.Duration `koanf:"timeout"`
}

func (m MailConfig) Configured() bool {
	return m.Host != "" && m.Username != ""
}

type DemoConfig struct {
	SeedData      bool   `koanf:"seed_data"`
	AdminEmail    string `koanf:"admin_email"`
	AdminPassword string `koanf:"admin_password"`
}

//go:embed defaults.yaml
var defaultsYAML []byte

// embedded feeds a byte slice to koanf as a provider.
type embedded []byte

func (e embedded) ReadBytes() ([]byte, error) { return e, nil }

func (e embedded) Read() (map[string]any, error) {
	return nil, errors.New("embedded provider requires a parser")
}

// Load layers, lowest precedence first: the built-in defaults, the YAML
// file at configPath, a .env file, then the process environment. Missing
// files are skipped.
func Load(configPath string) (*Config, error) {
	return load(configPath, ".env")
}

func load(configPath, dotenvPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(embedded(defaultsYAML), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		err := k.Load(file.Provider(configPath), yaml.Parser())
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", configPath, err)
		}
	}

	if dotenvPath != "" {
		err := godotenv.Load(dotenvPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKeyReplacer), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validate(&c); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}

// envKeyMap is the complete list of recognised environment variables.
// Anything else in the environment is ignored.
var envKeyMap = map[string]string{
	"ENVIRONMENT":  "app.environment",
	"FRONTEND_URL": "app.frontend_url",

	"HOST":       "server.host",
	"PORT":       "server.port",
	"STATIC_DIR": "server.static_dir",

	"DATABASE_URL":              "database.url",
	"DATABASE_MONITOR_INTERVAL": "database.monitor_interval",
	"REDIS_URL":                 "redis.url",

	"JWT_PRIVATE_KEY_PATH":     "jwt.private_key_path",
	"JWT_PUBLIC_KEY_PATH":      "jwt.public_key_path",
	"JWT_ACCESS_TOKEN_EXPIRE":  "jwt.access_token_expire",
	"JWT_REFRESH_TOKEN_EXPIRE": "jwt.refresh_token_expire",
	"JWT_ISSUER":               "jwt.issuer",
	"JWT_AUDIENCE":             "jwt.audience",

	"RATE_LIMIT_REQUESTS": "rate_limit.requests",
	"RATE_LIMIT_WINDOW":   "rate_limit.window",
	"RATE_LIMIT_BURST":    "rate_limit.burst",

	"LOG_LEVEL":  "log.level",
	"LOG_FORMAT": "log.format",

	"OTEL_ENABLED":                "otel.enabled",
	"OTEL_ENDPOINT":               "otel.endpoint",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "otel.endpoint",
	"OTEL_SERVICE_NAME":           "otel.service_name",
	"OTEL_INSECURE":               "otel.insecure",
	"OTEL_SAMPLE_RATE":            "otel.sample_rate",

	"SMTP_HOST": "mail.host",
	"SMTP_PORT": "mail.port",
	"SMTP_USER": "mail.username",
	"SMTP_PASS": "mail.password",
	"MAIL_FROM": "mail.from",

	"DEMO_SEED_DATA":      "demo.seed_data",
	"DEMO_ADMIN_EMAIL":    "demo.admin_email",
	"DEMO_ADMIN_PASSWORD": "demo.admin_password",
}

// envKeyReplacer returns "" for unknown variables, which koanf skips.
func envKeyReplacer(name string) string {
	return envKeyMap[name]
}

// validate reports every problem at once. It also fills a zero burst from
// the request budget.
func validate(c *Config) error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	check(!c.CORS.AllowCredentials || !slices.Contains(c.CORS.AllowedOrigins, "*"),
		"cors: wildcard origin cannot be combined with credentials")
	check(c.Server.ReadTimeout > 0 && c.Server.WriteTimeout > 0,
		"server: read and write timeouts must be positive")
	check(c.JWT.AccessTokenExpire > 0 && c.JWT.RefreshTokenExpire > 0,
		"jwt: token lifetimes must be positive")
	check(c.RateLimit.Requests > 0 && c.RateLimit.Window > 0,
		"rate_limit: requests and window must be positive")
	check(c.Database.MonitorInterval > 0,
		"database: monitor_interval must be positive")

	if c.IsProduction() {
		check(!c.Otel.Enabled || !c.Otel.Insecure,
			"otel: insecure export is not allowed in production")
		check(c.JWT.PrivateKeyPath != "" && c.JWT.PublicKeyPath != "",
			"jwt: key paths are required in production")
	}

	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = c.RateLimit.Requests
	}

	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// DemoMode is true when no database is configured; every repository then
// serves from memory.
func (c *Config) DemoMode() bool {
	return c.Database.URL == ""
}

func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
