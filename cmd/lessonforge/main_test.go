package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main wired to a throwaway database.
func newTestMain(t *testing.T) *Main {
	t.Helper()

	m := NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	return m
}

func TestMain_NoArgs(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), nil, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Help(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "serve")
	assert.Contains(t, stdout.String(), "generate")
}

func TestMain_Types(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"types", "Math", "1st Grade"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "matching")
	assert.Contains(t, stdout.String(), "math-practice")
	assert.Contains(t, stdout.String(), "All types:")
}

func TestMain_Generate(t *testing.T) {
	t.Parallel()

	t.Run("writes worksheet JSON to stdout", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{
			"generate", "vocabulary",
			"--child", "Ada",
			"--grade", "3rd Grade",
			"--title", "Plant Biology",
			"--subject", "Science",
		}, &stdout, &stderr)

		require.NoError(t, err)

		var ws map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &ws))
		assert.Equal(t, "Plant Biology - Activity Worksheet", ws["title"])
		assert.Equal(t, "Ada", ws["childName"])
		assert.Equal(t, "vocabulary", ws["type"])
	})

	t.Run("rejects unknown worksheet type", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{
			"generate", "crossword",
			"--child", "Ada",
			"--grade", "3rd Grade",
		}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "crossword")
	})

	t.Run("writes a PDF when out is set", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		var stdout, stderr bytes.Buffer
		out := filepath.Join(t.TempDir(), "worksheet.pdf")

		err := m.Run(context.Background(), []string{
			"generate", "matching",
			"--child", "Ada",
			"--grade", "3rd Grade",
			"--title", "Plant Biology",
			"--out", out,
			"--answer-key",
		}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "worksheet.pdf")
		assert.Contains(t, stdout.String(), "worksheet-key.pdf")
		assert.FileExists(t, out)
		assert.FileExists(t, filepath.Join(filepath.Dir(out), "worksheet-key.pdf"))
	})
}
