// Package logger настраивает logrus под окружение: структурированный JSON в
// релизе, читаемый текст с debug-уровнем везде остальном.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New возвращает логгер приложения, пишущий в output. Окружение определяется
// по GIN_MODE, так же как это делает сам gin.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)

	if os.Getenv("GIN_MODE") == "release" {
		l.SetFormatter(new(logrus.JSONFormatter))
		l.SetLevel(logrus.InfoLevel)
		return l
	}

	l.SetFormatter(new(logrus.TextFormatter))
	l.SetLevel(logrus.DebugLevel)
	return l
}
