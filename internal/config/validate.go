package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	// env-required accepts a variable that is set but empty.
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}

	if err := c.Nutrition.validate(); err != nil {
		return fmt.Errorf("nutrition: %w", err)
	}

	if err := c.Dealership.validate(); err != nil {
		return fmt.Errorf("dealership: %w", err)
	}

	return nil
}

func (n *NutritionConfig) validate() error {
	if n.ReportTimezone != "" {
		if _, err := time.LoadLocation(n.ReportTimezone); err != nil {
			return fmt.Errorf("report_timezone %q: %w", n.ReportTimezone, err)
		}
	}
	if n.BatchWait < 0 {
		return fmt.Errorf("batch_wait must be >= 0 (got %v)", n.BatchWait)
	}
	if n.BatchCapacity <= 0 {
		return fmt.Errorf("batch_capacity must be > 0 (got %d)", n.BatchCapacity)
	}
	return nil
}

func (d *DealershipConfig) validate() error {
	if !d.CarStatus().IsValid() {
		return fmt.Errorf("default_car_status %q is not a car status", d.DefaultCarStatus)
	}
	if d.MinCarYear < 1886 {
		return fmt.Errorf("min_car_year must be >= 1886 (got %d)", d.MinCarYear)
	}
	if d.AuditRetentionDays < 1 {
		return fmt.Errorf("audit_retention_days must be >= 1 (got %d)", d.AuditRetentionDays)
	}
	return nil
}

// CarStatus returns DefaultCarStatus as a domain value.
func (d DealershipConfig) CarStatus() domain.CarStatus {
	return domain.CarStatus(d.DefaultCarStatus)
}
