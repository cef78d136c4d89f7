package config

import (
	"github.com/sirupsen/logrus"
)

// SetupLogging configures the global logrus logger from the loaded
// configuration. Lambda deployments log JSON for CloudWatch; local runs keep
// the text formatter. An unparseable level falls back to info.
func SetupLogging(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if IsServerlessMode() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}
