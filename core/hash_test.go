package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mod.zip")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0644))

	digest, err := HashFile(path, "sha1")
	require.NoError(t, err)
	assert.Equal(t, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", digest)
}

func TestGetHashImplUnknown(t *testing.T) {
	_, err := GetHashImpl("murmur2")
	assert.Error(t, err)
}

func TestFileMatchesHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mod.zip")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0644))

	match, err := FileMatchesHash(path, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed")
	require.NoError(t, err)
	assert.True(t, match)

	// Digest case must not matter
	match, err = FileMatchesHash(path, "2AAE6C35C94FCFB415DBE95F408B9CE91EE846ED")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = FileMatchesHash(path, "da39a3ee5e6b4b0d3255bfef95601890afd80709")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestFileMatchesHashMissingFile(t *testing.T) {
	match, err := FileMatchesHash(filepath.Join(t.TempDir(), "nope.zip"), "da39a3ee5e6b4b0d3255bfef95601890afd80709")
	require.NoError(t, err)
	assert.False(t, match)
}
