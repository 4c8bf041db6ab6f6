package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"EnronClassifier/internal/backend"
	"EnronClassifier/internal/config"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	t.Helper()
	color.NoColor = true
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvResourceDir, "")
	t.Setenv(config.EnvBackendMode, "")
	t.Setenv(config.EnvLogLevel, "error")
}

func crashConfig(t *testing.T) string {
	path, _ := crashConfigDir(t)
	return path
}

func crashConfigDir(t *testing.T) (string, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "enron.toml")
	dir := filepath.Join(t.TempDir(), "crash")
	body := "[crash]\ndir = \"" + filepath.ToSlash(dir) + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path, dir
}

func TestRunLaunches(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell-script backends are unix only")
	}
	setup(t)
	dir := t.TempDir()
	bin := filepath.Join(dir, "bin", "flask-backend")
	require.NoError(t, os.MkdirAll(filepath.Dir(bin), 0o755))
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", crashConfig(t), "-resource-dir", dir, "-mode", "packaged"}, &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "[+] Backend bin/flask-backend launched (packaged mode)")
}

func TestRunMissingBackend(t *testing.T) {
	setup(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", crashConfig(t), "-resource-dir", t.TempDir(), "-mode", "dev"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "[x] Failed to launch backend")
	assert.Contains(t, stderr.String(), "Crash report written to")
	assert.Empty(t, stdout.String())
}

func TestRunBadMode(t *testing.T) {
	setup(t)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-mode", "staging"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "backend.mode")
}

func TestRunBadFlag(t *testing.T) {
	setup(t)
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
}

func TestRunPanicWritesCrashReport(t *testing.T) {
	setup(t)
	startup = func(config.Config, *logrus.Logger) (*backend.Bootstrapper, error) {
		panic("resolver exploded")
	}
	t.Cleanup(func() { startup = backend.Startup })

	path, dir := crashConfigDir(t)
	var stdout, stderr bytes.Buffer
	assert.Panics(t, func() { run([]string{"-config", path}, &stdout, &stderr) })

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "launcher")
}
