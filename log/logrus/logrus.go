// Package logrus adapts a *logrus.Entry to twire.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/twire/twire"
)

type Logger struct{ E *logrus.Entry }

func (l Logger) Debug(msg string, f twire.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}

func (l Logger) Warn(msg string, f twire.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}

var _ twire.Logger = Logger{}
