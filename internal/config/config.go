package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Nutrition  NutritionConfig  `yaml:"nutrition"`
	Dealership DealershipConfig `yaml:"dealership"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// NutritionConfig holds value resolver and report settings.
type NutritionConfig struct {
	AllowOverConsumption bool          `yaml:"allow_over_consumption" env:"NUTRITION_ALLOW_OVER_CONSUMPTION" env-default:"false"`
	ReportTimezone       string        `yaml:"report_timezone"        env:"NUTRITION_REPORT_TIMEZONE"        env-default:"UTC"`
	BatchWait            time.Duration `yaml:"batch_wait"             env:"NUTRITION_BATCH_WAIT"             env-default:"2ms"`
	BatchCapacity        int           `yaml:"batch_capacity"         env:"NUTRITION_BATCH_CAPACITY"         env-default:"100"`
}

// DealershipConfig holds composite write settings.
type DealershipConfig struct {
	DefaultCarStatus   string `yaml:"default_car_status"   env:"DEALERSHIP_DEFAULT_CAR_STATUS"   env-default:"In stock"`
	MinCarYear         int    `yaml:"min_car_year"         env:"DEALERSHIP_MIN_CAR_YEAR"         env-default:"1900"`
	AuditRetentionDays int    `yaml:"audit_retention_days" env:"DEALERSHIP_AUDIT_RETENTION_DAYS" env-default:"90"`
}
