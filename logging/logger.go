package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Bootstrap must run before anything uses it.
var Log *logrus.Logger

func Bootstrap() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if os.Getenv("APP_ENV") == "local" {
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetLevel(logrus.InfoLevel)
	}
}
