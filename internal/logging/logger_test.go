package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerIsCachedPerComponent(t *testing.T) {
	a := NewLogger("catalog")
	b := NewLogger("catalog")

	require.NotNil(t, a)
	assert.Same(t, a, b)
	assert.Equal(t, "catalog", a.Data["component"])
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{DisableTimestamp: true})

	logger.WithField("component", "config").WithField("path", "/x").WithField("attempt", 2).Warn("could not save")

	assert.Equal(t, "[WARN] [config] could not save attempt=2 path=/x\n", buf.String())
}

func TestTextFormatterTimestamp(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "hello",
		Data:    logrus.Fields{},
	}

	out, err := (&TextFormatter{}).Format(entry)

	require.NoError(t, err)
	assert.Equal(t, "2024-05-01 12:30:00 [INFO] hello\n", string(out))
}

func TestHoldReplaysAfterRelease(t *testing.T) {
	var sink bytes.Buffer
	prev := SetGlobalOutput(&sink)
	t.Cleanup(func() { SetGlobalOutput(prev) })

	require.NoError(t, SetLevel("warn"))
	logger := NewLogger("hold-test")

	release := Hold()
	logger.Warn("while raw")
	assert.Empty(t, sink.String(), "output must be held while the terminal is owned")

	release()
	assert.Contains(t, sink.String(), "while raw")

	release()
	assert.Equal(t, 1, bytes.Count(sink.Bytes(), []byte("while raw")), "release must be idempotent")
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	assert.Error(t, SetLevel("loud"))
}
