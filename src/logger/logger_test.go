package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		_ = Setup("info", "text")
		SetOutput(os.Stderr)
	})

	require.NoError(t, Setup("debug", "json"))
	With(logrus.Fields{"formId": "abc"}).Debug("form loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "form loaded", entry["msg"])
	assert.Equal(t, "abc", entry["formId"])
	assert.Equal(t, "debug", entry["level"])
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Setup("chatty", "text"))
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetLevel(InfoLevel)
		SetOutput(os.Stderr)
	})

	SetLevel(WarnLevel)
	Infof("hidden %d", 1)
	assert.Empty(t, buf.String())
	Warnf("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
}
