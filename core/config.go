package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Config carries the resolved configuration and run state for one invocation.
// It replaces ambient globals: every operation receives it explicitly.
type Config struct {
	GameDir      string
	ModsDir      string
	ManifestPath string
	Username     string
	Token        string
	DryRun       bool
	Downgrade    bool
	Restart      bool
	ServiceName  string

	// GameVersion is populated by ProbeGameVersion before any resolution
	GameVersion HostVersion

	restartNeeded bool
}

// Validate checks the filesystem side of the configuration and resolves the
// derived paths. It must pass before any operation runs.
func (c *Config) Validate() error {
	if c.GameDir == "" {
		return errors.New("game directory not set; use --game-dir or the config file")
	}
	gameDir, err := filepath.Abs(c.GameDir)
	if err != nil {
		return fmt.Errorf("failed to resolve game directory: %w", err)
	}
	c.GameDir = gameDir
	c.ModsDir = filepath.Join(c.GameDir, "mods")
	if info, err := os.Stat(c.ModsDir); err != nil || !info.IsDir() {
		return fmt.Errorf("mods folder not found at %s", c.ModsDir)
	}
	c.ManifestPath = filepath.Join(c.ModsDir, "mod-list.json")
	if _, err := os.Stat(c.ManifestPath); err != nil {
		return fmt.Errorf("mod list file not found at %s", c.ManifestPath)
	}
	if c.Restart && c.ServiceName == "" {
		return errors.New("restart is enabled but no service name was given; set it in the config file or with --service-name")
	}
	return nil
}

// RequireCredentials verifies that the portal credentials needed for
// downloads are present. Only install and update call this; other operations
// never touch the download endpoint.
func (c *Config) RequireCredentials() error {
	if c.Username == "" || c.Token == "" {
		return errors.New("username and/or token not set; get them from player-data.json and set them in the config file or with --username/--token")
	}
	return nil
}

// FlagRestart records that a mutating operation happened. The flag is
// monotonic - it is set by any mutation and read once at the end of a run.
func (c *Config) FlagRestart() {
	c.restartNeeded = true
}

// RestartNeeded reports whether any mutating operation happened this run.
func (c *Config) RestartNeeded() bool {
	return c.restartNeeded
}

// RemoveFile deletes the file at path if it exists, honouring dry-run. A
// missing file only gets a debug note.
func (c *Config) RemoveFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logrus.Debugf("asked to delete %s but it does not exist", path)
			return nil
		}
		return err
	}
	if c.DryRun {
		fmt.Printf("Dry run: would have deleted %s\n", path)
		return nil
	}
	logrus.Debugf("removing file %s", path)
	return os.Remove(path)
}

// SaveModList writes the manifest back to disk, honouring dry-run.
func (c *Config) SaveModList(list *ModList) error {
	if c.DryRun {
		fmt.Printf("Dry run: would have written mod list with %d entries\n", len(list.Mods))
		return nil
	}
	logrus.Debugf("writing mod list %s", c.ManifestPath)
	return list.Write()
}
