package portal

import (
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleModResponse = `{
	"name": "even-distribution",
	"title": "Even Distribution",
	"releases": [
		{
			"file_name": "even-distribution_1.0.0.zip",
			"download_url": "/download/even-distribution/5e4f",
			"sha1": "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed",
			"version": "1.0.0",
			"released_at": "2020-08-01T12:00:00.000000Z",
			"info_json": {"factorio_version": "0.18"}
		},
		{
			"file_name": "even-distribution_2.0.0.zip",
			"download_url": "/download/even-distribution/6a1b",
			"sha1": "da39a3ee5e6b4b0d3255bfef95601890afd80709",
			"version": "2.0.0",
			"released_at": "2020-09-15T08:30:00.000000Z",
			"info_json": {"factorio_version": "1.0"}
		}
	]
}`

const malformedVersionResponse = `{
	"name": "weird-mod",
	"releases": [
		{
			"file_name": "weird-mod_ok.zip",
			"download_url": "/download/weird-mod/1",
			"sha1": "da39a3ee5e6b4b0d3255bfef95601890afd80709",
			"version": "1.2.3",
			"released_at": "2021-01-01T00:00:00.000000Z",
			"info_json": {"factorio_version": "1.1"}
		},
		{
			"file_name": "weird-mod_bad.zip",
			"download_url": "/download/weird-mod/2",
			"sha1": "da39a3ee5e6b4b0d3255bfef95601890afd80709",
			"version": "not-a-version",
			"released_at": "2021-02-01T00:00:00.000000Z",
			"info_json": {"factorio_version": "1.1"}
		},
		{
			"file_name": "weird-mod_badhost.zip",
			"download_url": "/download/weird-mod/3",
			"sha1": "da39a3ee5e6b4b0d3255bfef95601890afd80709",
			"version": "1.2.4",
			"released_at": "2021-03-01T00:00:00.000000Z",
			"info_json": {"factorio_version": "any"}
		}
	]
}`

func newMockedClient(t *testing.T) *Client {
	t.Helper()
	client := NewClient()
	httpmock.ActivateNonDefault(client.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func TestFetchMod(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/api/mods/even-distribution",
		httpmock.NewStringResponder(200, sampleModResponse))

	releases, err := client.FetchMod("even-distribution")
	require.NoError(t, err)
	require.Len(t, releases, 2)

	first := releases[0]
	assert.Equal(t, "even-distribution_1.0.0.zip", first.FileName)
	assert.Equal(t, DefaultBaseURL+"/download/even-distribution/5e4f", first.DownloadURL)
	assert.Equal(t, "1.0.0", first.Version.String())
	assert.Equal(t, "0.18", first.RequiredHostVersion.String())
	assert.Equal(t, 2020, first.ReleasedAt.Year())

	assert.Equal(t, "1.0", releases[1].RequiredHostVersion.String())
}

func TestFetchModDropsUnparseableVersions(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/api/mods/weird-mod",
		httpmock.NewStringResponder(200, malformedVersionResponse))

	releases, err := client.FetchMod("weird-mod")
	require.NoError(t, err)
	require.Len(t, releases, 1)
	assert.Equal(t, "weird-mod_ok.zip", releases[0].FileName)
}

func TestFetchModNotFound(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/api/mods/missing",
		httpmock.NewStringResponder(404, `{"message": "Mod not found"}`))

	_, err := client.FetchMod("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchModServerError(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/api/mods/broken",
		httpmock.NewStringResponder(500, "oops"))

	_, err := client.FetchMod("broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFetchModNoReleases(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/api/mods/empty",
		httpmock.NewStringResponder(200, `{"name": "empty", "releases": []}`))

	releases, err := client.FetchMod("empty")
	require.NoError(t, err)
	assert.Empty(t, releases)
}
