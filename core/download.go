package core

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"
)

// Size of the copy buffer used when streaming downloads to disk
const downloadBlockSize = 8192

// UserAgent is sent with every request to the portal.
const UserAgent = "factoman"

// ErrNotArchive is returned when the download endpoint responds with
// something other than a zip archive. The portal serves an HTML login page in
// that case, so this means the credentials are wrong or deactivated. It is
// fatal for the whole run.
var ErrNotArchive = errors.New("response is not a zip archive; your username and/or token may be wrong or deactivated")

// DownloadFile streams the artifact at url to destPath, authenticating with
// the given portal credentials. When the response declares its length, a
// progress bar is drawn. The written file is made world-readable, for the
// case where this tool runs as a different user than the game server.
func DownloadFile(destPath string, url string, username string, token string) error {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", UserAgent)
	query := req.URL.Query()
	query.Set("username", username)
	query.Set("token", token)
	req.URL.RawQuery = query.Encode()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("invalid response status for %s: %v", url, resp.Status)
	}
	if resp.Header.Get("Content-Type") != "application/zip" {
		return ErrNotArchive
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	var src io.Reader = resp.Body
	var progress *mpb.Progress
	if resp.ContentLength > 0 {
		progress = mpb.New(mpb.WithWidth(64))
		bar := progress.AddBar(resp.ContentLength,
			mpb.PrependDecorators(decor.CountersKibiByte("% .1f / % .1f")),
			mpb.AppendDecorators(decor.Percentage()),
		)
		src = bar.ProxyReader(resp.Body)
	}

	buf := make([]byte, downloadBlockSize)
	_, err = io.CopyBuffer(f, src, buf)
	if progress != nil {
		progress.Wait()
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Chmod(destPath, 0644)
}
