// internal/database/connection.go
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/unihub-backend/internal/config"
	"github.com/javajoker/unihub-backend/internal/models"
	"github.com/javajoker/unihub-backend/internal/utils"
)

// Initialize opens the relational database that holds admin accounts and the audit trail.
func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN())
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// one writer avoids SQLITE_BUSY and keeps :memory: databases on a single connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithField("driver", cfg.Driver).Info("Database connection established")
	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations")

	if err := db.AutoMigrate(&models.AdminUser{}, &models.AuditLog{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	createIndexes(db)

	logrus.Info("Database migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_admin_action ON audit_logs(admin_id, action)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource_type, resource_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created ON audit_logs(created_at DESC)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).WithField("index", index).Warn("Failed to create index")
		}
	}
}

// EnsureAdmin creates the configured admin account when it does not exist yet.
// It returns true when an account was created.
func EnsureAdmin(ctx context.Context, db *gorm.DB, cfg config.AdminConfig) (bool, error) {
	if cfg.Email == "" {
		return false, nil
	}
	email := strings.ToLower(strings.TrimSpace(cfg.Email))

	var existing models.AdminUser
	err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}

	password := cfg.Password
	if password == "" {
		password, err = utils.GenerateAdminPassword(20)
		if err != nil {
			return false, fmt.Errorf("failed to generate admin password: %w", err)
		}
		logrus.WithField("email", email).Warnf("No ADMIN_PASSWORD set, generated one: %s", password)
	}

	admin := &models.AdminUser{Email: email, Name: cfg.Name, IsActive: true}
	if err := admin.SetPassword(password); err != nil {
		return false, fmt.Errorf("failed to set admin password: %w", err)
	}
	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		return false, fmt.Errorf("failed to create admin user: %w", err)
	}

	logrus.WithField("email", email).Info("Admin user created")
	return true, nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
