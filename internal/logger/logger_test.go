package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("info"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
}

func TestWithContext_RequestID(t *testing.T) {
	var buf bytes.Buffer
	std := logrus.StandardLogger()
	prevOut, prevFormatter := std.Out, std.Formatter
	std.SetOutput(&buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
	})

	ctx := ContextWithRequestID(context.Background(), "req-42")
	WithContext(ctx).WithField("entity", "dish").Info("created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "dish", entry["entity"])
	assert.Equal(t, "created", entry["msg"])
}

func TestWithContext_NoRequestID(t *testing.T) {
	l := WithContext(context.Background())
	_, ok := l.Data["request_id"]
	assert.False(t, ok)
}
