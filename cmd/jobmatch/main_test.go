package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "jobmatch")
	t.Setenv("DB_USER", "jobmatch")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRecommend_RequiresCandidate(t *testing.T) {
	_, err := execute(t, "recommend")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidate")
}

func TestRecommend_RejectsMalformedCandidate(t *testing.T) {
	_, err := execute(t, "recommend", "--candidate", "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --candidate")
}

func TestRoot_ConfigErrorsSurface(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	_, err := execute(t, "recommend", "--candidate", "8f2d6f0e-2b5c-4a11-9a43-0d3c9b7a5e10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestRoot_ListsCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["recommend"])
	assert.True(t, names["seed"])
}
