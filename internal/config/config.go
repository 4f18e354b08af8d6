package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, storage backends,
// registration rules, pricing, uploads and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default minimum log level
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS. Empty allows any origin.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"registrar" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis configures the session store. An empty URL keeps sessions in memory.
	Redis struct {
		URL          string        `env:"REDIS_URL" env-default:"" yaml:"url"`
		PoolSize     int           `env:"REDIS_POOL_SIZE" env-default:"10" yaml:"poolSize"`
		DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s" yaml:"dialTimeout"`
		ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" env-default:"3s" yaml:"readTimeout"`
		WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" env-default:"3s" yaml:"writeTimeout"`
	} `yaml:"redis"`

	// Session configures registrant login sessions
	Session struct {
		// TTL is how long a session stays valid after login
		TTL time.Duration `env:"SESSION_TTL" env-default:"168h" yaml:"ttl"`
		// CookieName is the name of the session cookie
		CookieName string `env:"SESSION_COOKIE_NAME" env-default:"mterms.sid" yaml:"cookieName"`
		// Secure marks the session cookie as HTTPS only
		Secure bool `env:"SESSION_COOKIE_SECURE" env-default:"false" yaml:"secure"`
		// KeyPrefix namespaces session keys in Redis
		KeyPrefix string `env:"SESSION_KEY_PREFIX" env-default:"registrar:session:" yaml:"keyPrefix"`
	} `yaml:"session"`

	// JWT holds the RS256 key pair used for operator tokens
	JWT struct {
		// PublicKey verifies operator tokens on admin routes
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs operator tokens in the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Registration controls code issuance and registrant credentials
	Registration struct {
		// EventCode prefixes every registration code
		EventCode string `env:"REGISTRATION_EVENT_CODE" env-default:"MTERM2026" yaml:"eventCode"`
		// CounterKey names the sequence counter that numbers registrations
		CounterKey string `env:"REGISTRATION_COUNTER_KEY" env-default:"reg2026" yaml:"counterKey"`
		// CodeWidth is the zero-padded width of the numeric part of a code
		CodeWidth int `env:"REGISTRATION_CODE_WIDTH" env-default:"6" yaml:"codeWidth"`
		// BcryptCost is the work factor for password hashes. Zero uses the library default.
		BcryptCost int `env:"REGISTRATION_BCRYPT_COST" env-default:"0" yaml:"bcryptCost"`
		// SearchDefaultLimit is the admin search page size when none is requested
		SearchDefaultLimit int `env:"REGISTRATION_SEARCH_DEFAULT_LIMIT" env-default:"20" yaml:"searchDefaultLimit"`
		// SearchMaxLimit bounds the admin search page size
		SearchMaxLimit int `env:"REGISTRATION_SEARCH_MAX_LIMIT" env-default:"100" yaml:"searchMaxLimit"`
	} `yaml:"registration"`

	// Pricing selects the active pricing policy and the values used to seed it
	Pricing struct {
		// PolicyKey identifies the active pricing policy
		PolicyKey string `env:"PRICING_POLICY_KEY" env-default:"pricing-2026" yaml:"policyKey"`
		// Location is the time zone whose calendar dates drive phase selection
		Location string `env:"PRICING_LOCATION" env-default:"Asia/Kuala_Lumpur" yaml:"location"`

		// Seed holds the values written by the seed-pricing command
		Seed struct {
			Currency       string `env:"PRICING_SEED_CURRENCY" env-default:"MYR" yaml:"currency"`
			EventStartDate string `env:"PRICING_SEED_EVENT_START_DATE" env-default:"2026-08-01" yaml:"eventStartDate"`
			BaseStudent    int64  `env:"PRICING_SEED_BASE_STUDENT" env-default:"250" yaml:"baseStudent"`
			BaseAcademia   int64  `env:"PRICING_SEED_BASE_ACADEMIA" env-default:"350" yaml:"baseAcademia"`
			BaseIndustry   int64  `env:"PRICING_SEED_BASE_INDUSTRY" env-default:"500" yaml:"baseIndustry"`
			EarlyStudent   int64  `env:"PRICING_SEED_EARLY_STUDENT" env-default:"-50" yaml:"earlyStudent"`
			EarlyAcademia  int64  `env:"PRICING_SEED_EARLY_ACADEMIA" env-default:"-50" yaml:"earlyAcademia"`
			EarlyIndustry  int64  `env:"PRICING_SEED_EARLY_INDUSTRY" env-default:"-50" yaml:"earlyIndustry"`
			LateStudent    int64  `env:"PRICING_SEED_LATE_STUDENT" env-default:"50" yaml:"lateStudent"`
			LateAcademia   int64  `env:"PRICING_SEED_LATE_ACADEMIA" env-default:"50" yaml:"lateAcademia"`
			LateIndustry   int64  `env:"PRICING_SEED_LATE_INDUSTRY" env-default:"100" yaml:"lateIndustry"`
			DinnerAddon    int64  `env:"PRICING_SEED_DINNER_ADDON" env-default:"150" yaml:"dinnerAddon"`
		} `yaml:"seed"`
	} `yaml:"pricing"`

	// Uploads controls attachment intake and orphan blob reclamation
	Uploads struct {
		// MaxSize is the largest accepted attachment in bytes
		MaxSize int64 `env:"UPLOADS_MAX_SIZE" env-default:"10485760" yaml:"maxSize"`
		// BlobWriteTimeout bounds a single blob write
		BlobWriteTimeout time.Duration `env:"UPLOADS_BLOB_WRITE_TIMEOUT" env-default:"15s" yaml:"blobWriteTimeout"`
		// OrphanGracePeriod is how old an unreferenced blob must be before the sweep removes it
		OrphanGracePeriod time.Duration `env:"UPLOADS_ORPHAN_GRACE_PERIOD" env-default:"1h" yaml:"orphanGracePeriod"`
		// SweepInterval is how often the orphan blob sweep runs
		SweepInterval time.Duration `env:"UPLOADS_SWEEP_INTERVAL" env-default:"30m" yaml:"sweepInterval"`
		// CleanupMaxAttempts bounds retries of a single orphan blob cleanup job
		CleanupMaxAttempts int `env:"UPLOADS_CLEANUP_MAX_ATTEMPTS" env-default:"10" yaml:"cleanupMaxAttempts"`
	} `yaml:"uploads"`

	// Worker configures the background job runner
	Worker struct {
		// MaxWorkers is the concurrency of the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv fills a Config from environment variables and defaults only.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read env: %w", err)
	}

	return &cfg, nil
}
