package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging(level logrus.Level) *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Level: level,
	}

	// Bootstrap code logs through the package-level logger; keep it in step.
	logrus.SetFormatter(logger.Formatter)
	logrus.SetLevel(level)

	return &logger
}
