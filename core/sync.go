package core

import (
	"fmt"
	"path/filepath"
)

// SyncRelease brings the local artifact for a mod in line with the resolved
// release: deletes superseded release files, skips the download when the
// existing file already carries the published digest, and downloads
// otherwise. Reports whether the installed artifact changed (or would have,
// under dry-run); an up-to-date skip changes nothing and leaves the restart
// flag alone.
func (c *Config) SyncRelease(name string, releases []Release, selected Release) (bool, error) {
	for _, fileName := range SupersededFiles(releases, selected.FileName) {
		if err := c.RemoveFile(filepath.Join(c.ModsDir, fileName)); err != nil {
			return false, err
		}
	}

	destPath := filepath.Join(c.ModsDir, selected.FileName)
	upToDate, err := FileMatchesHash(destPath, selected.SHA1)
	if err != nil {
		return false, err
	}
	if upToDate {
		fmt.Printf("%s is already up to date (%s), skipping\n", name, selected.FileName)
		return false, nil
	}

	if c.DryRun {
		fmt.Printf("Dry run: would have downloaded %s\n", selected.FileName)
		return true, nil
	}

	fmt.Printf("Downloading %s %s...\n", name, selected.Version)
	if err := DownloadFile(destPath, selected.DownloadURL, c.Username, c.Token); err != nil {
		return false, err
	}

	c.FlagRestart()
	return true, nil
}
