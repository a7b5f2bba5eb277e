package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Gateway     GatewayConfig    `mapstructure:"gateway"`
	Balance     BalanceConfig    `mapstructure:"balance"`
	Reconciler  ReconcilerConfig `mapstructure:"reconciler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// GatewayConfig contains external payment gateway settings
type GatewayConfig struct {
	BaseURL      string        `mapstructure:"baseUrl"`
	InitiatePath string        `mapstructure:"initiatePath"`
	CallbackURL  string        `mapstructure:"callbackUrl"`
	SharedSecret string        `mapstructure:"sharedSecret"`
	Timeout      time.Duration `mapstructure:"timeout"` // seconds
}

// BalanceConfig contains balance engine settings
type BalanceConfig struct {
	MaxRetryAttempts int   `mapstructure:"maxRetryAttempts"`
	RetryBaseDelayMs int64 `mapstructure:"retryBaseDelayMs"`
}

// ReconcilerConfig contains reconciliation sweep settings
type ReconcilerConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Interval   time.Duration `mapstructure:"interval"`   // seconds
	StaleAfter time.Duration `mapstructure:"staleAfter"` // seconds
}
