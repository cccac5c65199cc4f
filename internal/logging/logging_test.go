package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name  string
		level string
		env   string
		want  logrus.Level
	}{
		{name: "explicit level", level: "debug", want: logrus.DebugLevel},
		{name: "explicit level wins over env", level: "error", env: "debug", want: logrus.ErrorLevel},
		{name: "env fallback", env: "warn", want: logrus.WarnLevel},
		{name: "info by default", want: logrus.InfoLevel},
		{name: "unknown level is info", level: "chatty", want: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLogLevel, tt.env)

			logger := Setup(tt.level, &bytes.Buffer{})
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestSetup_Output(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	var buf bytes.Buffer
	logger := Setup("info", &buf)
	logger.WithField("table", "victims").Info("loaded")
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "msg=loaded")
	assert.Contains(t, out, "table=victims")
	assert.Contains(t, out, "time=")
	assert.NotContains(t, out, "hidden")
}
