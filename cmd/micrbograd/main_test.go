package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_Version tests the version command.
func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out))
	assert.Equal(t, "micrbograd "+version+"\n", out.String())
}

// TestRun_Usage tests usage output and unknown commands.
func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out))
	assert.Contains(t, out.String(), "Commands:")

	out.Reset()
	err := run([]string{"serve"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "serve"`)
}

// TestRun_Train tests a short training run.
func TestRun_Train(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"train", "-steps", "20", "-lr", "0.1", "-seed", "3"}, &out))

	s := out.String()
	assert.Contains(t, s, "41 parameters")
	assert.Contains(t, s, "step    0")
	assert.Contains(t, s, "step   19")
	assert.Contains(t, s, "pred=")
}

// TestRun_TrainBadFlags tests flag validation.
func TestRun_TrainBadFlags(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"train", "-steps", "-1"}, &out))
	assert.Error(t, run([]string{"train", "-lr", "-0.5"}, &out))
	assert.Error(t, run([]string{"train", "-bogus"}, &out))
}
