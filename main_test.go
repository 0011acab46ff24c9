package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogOutputStandardStreams(t *testing.T) {
	w, closeFn, err := logOutput("stdout")
	require.NoError(t, err)
	require.Same(t, os.Stdout, w)
	closeFn()

	w, closeFn, err = logOutput("")
	require.NoError(t, err)
	require.Same(t, os.Stderr, w)
	closeFn()
}

func TestLogOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.log")
	w, closeFn, err := logOutput(path)
	require.NoError(t, err)

	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(data))
}

func TestLogOutputBadPath(t *testing.T) {
	_, _, err := logOutput(filepath.Join(t.TempDir(), "missing", "wheel.log"))
	require.ErrorContains(t, err, "open log file")
}

func TestReportErrorReachesLogFileBeforeClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.log")
	w, closeFn, err := logOutput(path)
	require.NoError(t, err)

	cause := errors.New("no window")
	logger := slog.New(slog.NewTextHandler(w, nil))
	err = reportError(logger, cause)
	closeFn()

	require.ErrorIs(t, err, errReported)
	require.ErrorIs(t, err, cause)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `msg="application error"`)
	require.Contains(t, string(data), `error="no window"`)
}
