// Package portal is a client for the Factorio mod portal API.
package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/sirupsen/logrus"

	"github.com/factoman/factoman/core"
)

const DefaultBaseURL = "https://mods.factorio.com"

// ErrNotFound is returned when the portal has no mod with the given name.
var ErrNotFound = errors.New("mod not found on the portal")

type Client struct {
	BaseURL    string
	UserAgent  string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		UserAgent:  core.UserAgent,
		httpClient: &http.Client{},
	}
}

// modInfo is a subset of the deserialised JSON response for a mod
type modInfo struct {
	Name     string        `json:"name"`
	Title    string        `json:"title"`
	Releases []releaseInfo `json:"releases"`
}

type releaseInfo struct {
	FileName    string    `json:"file_name"`
	DownloadURL string    `json:"download_url"`
	SHA1        string    `json:"sha1"`
	Version     string    `json:"version"`
	ReleasedAt  time.Time `json:"released_at"`
	InfoJSON    struct {
		FactorioVersion string `json:"factorio_version"`
	} `json:"info_json"`
}

func (c *Client) makeGet(endpoint string) (*http.Response, error) {
	req, err := http.NewRequest("GET", c.BaseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("invalid response status: %v", resp.Status)
	}
	return resp, nil
}

// FetchMod retrieves the known releases of a mod, as an unordered collection.
// Releases with version strings the portal published in an unparseable form
// are dropped, so they can never be selected. Download URLs are resolved
// against the portal base URL.
func (c *Client) FetchMod(name string) ([]core.Release, error) {
	resp, err := c.makeGet("/api/mods/" + name)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info modInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to parse mod info for %s: %w", name, err)
	}

	releases := make([]core.Release, 0, len(info.Releases))
	for _, release := range info.Releases {
		version, err := semver.NewVersion(release.Version)
		if err != nil {
			logrus.Debugf("dropping release %s of %s: bad version %q", release.FileName, name, release.Version)
			continue
		}
		hostVersion, err := core.ParseHostVersion(release.InfoJSON.FactorioVersion)
		if err != nil {
			logrus.Debugf("dropping release %s of %s: bad game version %q", release.FileName, name, release.InfoJSON.FactorioVersion)
			continue
		}
		releases = append(releases, core.Release{
			FileName:            release.FileName,
			DownloadURL:         c.BaseURL + release.DownloadURL,
			SHA1:                release.SHA1,
			Version:             version,
			RequiredHostVersion: hostVersion,
			ReleasedAt:          release.ReleasedAt,
		})
	}
	return releases, nil
}
