// internal/config/database.go
package config

import (
	"fmt"
)

func (d *DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}

func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}
