package log

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLog_WritesCategoryAndFields(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	Info(CatAPI, "request", "method", "POST", "path", "/register")
	require.Contains(t, buf.String(), "[INFO] [api] request method=POST path=/register\n")
}

func TestLog_OddFieldCount(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	Warn(CatSave, "odd", "orphan")
	require.Contains(t, buf.String(), "orphan=<missing>")
}

func TestLog_ErrorErr(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	ErrorErr(CatLedger, "insert failed", errors.New("disk full"), "kind", "registered")
	require.Contains(t, buf.String(), `[ERROR] [ledger] insert failed kind=registered error="disk full"`)

	ErrorErr(CatLedger, "no error", nil)
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestLog_MinLevelAndDisable(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	SetMinLevel(LevelWarn)
	Debug(CatCache, "hidden")
	Info(CatCache, "hidden")
	require.Empty(t, buf.String())

	Error(CatCache, "shown")
	require.Contains(t, buf.String(), "shown")

	buf.Reset()
	SetEnabled(false)
	Error(CatCache, "muted")
	require.Empty(t, buf.String())
}

func TestLog_NoLoggerIsSilent(t *testing.T) {
	require.NotPanics(t, func() {
		Info(CatConfig, "nobody listening")
		SetEnabled(true)
	})
	require.Nil(t, NewListener(context.Background()))
}

func TestLog_ListenerReceivesEntries(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	listener := NewListener(ctx)
	require.NotNil(t, listener)

	Info(CatTrace, "provider started")
	require.Eventually(t, func() bool {
		for _, entry := range listener.Drain() {
			if strings.Contains(entry.Payload, "provider started") {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func TestLog_RedactsCredentials(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	Debug(CatAPI, "request", "Authorization", "Bearer eyJhbGciOi", "token", "eyJhbGciOi", "path", "/my/agent")
	require.NotContains(t, buf.String(), "eyJhbGciOi")
	require.Contains(t, buf.String(), "Authorization=[redacted] token=[redacted] path=/my/agent")
}

func TestFormatEntry(t *testing.T) {
	ts := time.Date(2026, 3, 1, 10, 45, 0, 0, time.UTC)
	tests := []struct {
		name   string
		fields []any
		want   string
	}{
		{"no fields", nil, "2026-03-01T10:45:00 [WARN] [save] msg\n"},
		{"plain", []any{"ship", "TESTER-1", "units", 15}, "2026-03-01T10:45:00 [WARN] [save] msg ship=TESTER-1 units=15\n"},
		{"quoted", []any{"message", `say "hi"`}, `2026-03-01T10:45:00 [WARN] [save] msg message="say \"hi\""` + "\n"},
		{"orphan", []any{"path"}, "2026-03-01T10:45:00 [WARN] [save] msg path=<missing>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, formatEntry(ts, LevelWarn, CatSave, "msg", tt.fields))
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"debug": LevelDebug, "Info": LevelInfo, "WARN": LevelWarn, "error": LevelError} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseLevel("verbose")
	require.ErrorContains(t, err, "unknown log level")
	require.Equal(t, "UNKNOWN", Level(42).String())
}
