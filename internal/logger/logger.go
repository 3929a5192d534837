package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the package-level logger. It is usable before Init is called and
// writes to stdout only; Init adds the log file and the configured level.
var Log = logrus.New()

// Init configures the package logger to write to stdout and the given file.
func Init(logFile string, debug bool) error {
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	Log.SetOutput(io.MultiWriter(os.Stdout, file))
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if debug {
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetLevel(logrus.InfoLevel)
	}

	return nil
}
