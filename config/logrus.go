package config

import (
	"net/http"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logrusInstance *logrus.Logger
	logrusOnce     sync.Once
)

func GetLogrusInstance() *logrus.Logger {
	logrusOnce.Do(func() {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
		logrusInstance.SetOutput(os.Stdout)

		level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
		if err != nil {
			level = logrus.InfoLevel
		}
		logrusInstance.SetLevel(level)
	})
	return logrusInstance
}

// PrintLogInfo records the outcome of a handler. 4xx goes to warn, 5xx to error.
func PrintLogInfo(username *string, statusCode int, functionName string) {
	user := "Unknown"
	if username != nil && *username != "" {
		user = *username
	}

	entry := GetLogrusInstance().WithFields(logrus.Fields{
		"user":   user,
		"func":   functionName,
		"status": statusCode,
	})
	msg := http.StatusText(statusCode)

	switch {
	case statusCode >= http.StatusInternalServerError:
		entry.Error(msg)
	case statusCode >= http.StatusBadRequest:
		entry.Warn(msg)
	default:
		entry.Info(msg)
	}
}
