// internal/logger/logger.go
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/unihub-backend/internal/config"
)

// Setup configures the global logrus logger. Production defaults to JSON output.
func Setup(cfg *config.Config) {
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	format := strings.ToLower(cfg.Log.Format)
	if format == "" && cfg.IsProduction() {
		format = "json"
	}

	if format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
