package core

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zipResponder(body string) httpmock.Responder {
	return func(req *http.Request) (*http.Response, error) {
		resp := httpmock.NewStringResponse(200, body)
		resp.Header.Set("Content-Type", "application/zip")
		return resp, nil
	}
}

func TestDownloadFile(t *testing.T) {
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)

	httpmock.RegisterResponder("GET", "https://mods.example.com/download/mod/1", zipResponder("zip content"))

	destPath := filepath.Join(t.TempDir(), "mod_1.0.0.zip")
	err := DownloadFile(destPath, "https://mods.example.com/download/mod/1", "player", "secret")
	require.NoError(t, err)

	data, err := os.ReadFile(destPath)
	require.NoError(t, err)
	assert.Equal(t, "zip content", string(data))

	// Credentials travel as query parameters
	info := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, info["GET https://mods.example.com/download/mod/1"])
}

func TestDownloadFileWrongContentType(t *testing.T) {
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)

	// The portal serves an HTML login page when credentials are rejected
	httpmock.RegisterResponder("GET", "https://mods.example.com/download/mod/1",
		httpmock.NewStringResponder(200, "<html>login</html>"))

	destPath := filepath.Join(t.TempDir(), "mod_1.0.0.zip")
	err := DownloadFile(destPath, "https://mods.example.com/download/mod/1", "player", "badtoken")
	assert.ErrorIs(t, err, ErrNotArchive)
}

func TestDownloadFileBadStatus(t *testing.T) {
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)

	httpmock.RegisterResponder("GET", "https://mods.example.com/download/mod/1",
		httpmock.NewStringResponder(503, "unavailable"))

	destPath := filepath.Join(t.TempDir(), "mod_1.0.0.zip")
	err := DownloadFile(destPath, "https://mods.example.com/download/mod/1", "player", "secret")
	assert.Error(t, err)
	assert.NoFileExists(t, destPath)
}
