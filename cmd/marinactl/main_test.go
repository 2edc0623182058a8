package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) (string, error) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run("version")
	require.NoError(t, err)
	assert.Equal(t, "marinactl version dev\n", out)
}

func TestArgumentErrors(t *testing.T) {
	t.Run("Non-numeric rollback steps", func(t *testing.T) {
		_, err := run("migrate", "down", "two")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "steps must be a number")
	})

	t.Run("Too many rollback args", func(t *testing.T) {
		_, err := run("migrate", "down", "1", "2")
		assert.Error(t, err)
	})

	t.Run("Missing seed file", func(t *testing.T) {
		_, err := run("seed", "--file", t.TempDir()+"/nope.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open seed file")
	})

	t.Run("Unknown flag", func(t *testing.T) {
		_, err := run("expand", "--horizn", "7")
		assert.Error(t, err)
	})
}
