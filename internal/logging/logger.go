package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

func Init() {
	Log = logrus.New()

	// Set formatter to JSON
	Log.SetFormatter(&logrus.JSONFormatter{})

	// Set output to stdout (default)
	Log.SetOutput(os.Stdout)

	Log.SetLevel(logrus.InfoLevel)
}

func init() {
	// Tests and packages that log before main wires things up still get a logger.
	Init()
}
