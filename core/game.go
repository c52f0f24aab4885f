package core

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"

	"github.com/sirupsen/logrus"
)

// Mods only declare compatibility against major.minor: the portal rejects
// three-component versions in compatibility fields, so the patch component of
// the reported version is dropped here.
var gameVersionPattern = regexp.MustCompile(`Version: (\d+\.\d+)\.\d+ \(build \d+`)

// ProbeGameVersion runs the game binary with --version and stores the parsed
// major.minor version on the config.
func (c *Config) ProbeGameVersion() error {
	binary := filepath.Join(c.GameDir, "bin", "x64", "factorio")
	out, err := exec.Command(binary, "--version").Output()
	if err != nil {
		return fmt.Errorf("failed to run %s --version: %w", binary, err)
	}
	version, err := parseGameVersion(string(out))
	if err != nil {
		return err
	}
	c.GameVersion = version
	logrus.Debugf("auto-detected game version %s from binary", version)
	return nil
}

func parseGameVersion(output string) (HostVersion, error) {
	matches := gameVersionPattern.FindStringSubmatch(output)
	if matches == nil {
		return HostVersion{}, errors.New("could not find a version in the game's output")
	}
	return ParseHostVersion(matches[1])
}
