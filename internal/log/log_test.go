// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"", log.ErrorLevel},
		{"trace", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"bogus", log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestCustomHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{W: &buf}

	err := h.HandleLog(&log.Entry{Level: log.WarnLevel, Message: "scan slow"})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), " W scan slow\n")

	buf.Reset()
	_ = h.HandleLog(&log.Entry{Level: log.DebugLevel, Message: "TRACE: walking"})
	assert.Contains(t, buf.String(), " T walking\n")

	buf.Reset()
	_ = h.HandleLog(&log.Entry{
		Level:   log.ErrorLevel,
		Message: "read failed",
		Fields:  log.Fields{"error": errors.New("boom")},
	})
	assert.Contains(t, buf.String(), " E read failed error=boom\n")
}

func TestInitLoggerFromEnv(t *testing.T) {
	t.Setenv("DIRDIFF_LOG", "trace")
	InitLogger()
	assert.True(t, traceEnabled)

	t.Setenv("DIRDIFF_LOG", "info")
	InitLogger()
	assert.False(t, traceEnabled)
}
