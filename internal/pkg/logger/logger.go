package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates the application logger. Development gets human-readable
// output; everything else logs JSON for aggregation.
func New(appName, env string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if env == "development" {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.WithFields(logrus.Fields{"app": appName, "env": env}).Info("logger initialized")
	return log
}
