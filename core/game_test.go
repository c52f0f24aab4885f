package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleVersionOutput = `Version: 1.1.110 (build 348, linux64, headless)
Binary version: 64
Map input version: 0.16.0-0
Map output version: 1.1.110-0
`

func TestParseGameVersion(t *testing.T) {
	version, err := parseGameVersion(sampleVersionOutput)
	require.NoError(t, err)
	assert.Equal(t, HostVersion{Major: 1, Minor: 1}, version)
}

func TestParseGameVersionLegacy(t *testing.T) {
	version, err := parseGameVersion("Version: 0.18.47 (build 54412, linux64, headless)\n")
	require.NoError(t, err)
	assert.Equal(t, "0.18", version.String())
}

func TestParseGameVersionNoMatch(t *testing.T) {
	_, err := parseGameVersion("some unrelated output")
	assert.Error(t, err)
}
