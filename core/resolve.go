package core

import (
	"sort"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Release is one published version of a mod on the portal, bound to the game
// version it requires.
type Release struct {
	FileName            string
	DownloadURL         string
	SHA1                string
	Version             *semver.Version
	RequiredHostVersion HostVersion
	ReleasedAt          time.Time
}

// ResolveRelease selects the release to install for the given game version:
// the most recently released one whose required game version matches the
// target exactly, or, when allowDowngrade is set, is at most the target.
// Recency is used as the ordering because the portal does not guarantee
// releases are listed in increasing version order. Returns false if no
// release is compatible.
func ResolveRelease(releases []Release, target HostVersion, allowDowngrade bool) (Release, bool) {
	sorted := make([]Release, len(releases))
	copy(sorted, releases)
	// Stable sort so releases sharing a timestamp keep their input order
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReleasedAt.After(sorted[j].ReleasedAt)
	})

	for _, release := range sorted {
		if allowDowngrade {
			if release.RequiredHostVersion.LessOrEqual(target) {
				return release, true
			}
		} else if release.RequiredHostVersion.Equal(target) {
			return release, true
		}
	}
	return Release{}, false
}

// SupersededFiles returns the file names of every known release except the
// one being kept. A mod has exactly one installed artifact at a time;
// membership is decided by exact file name, never by parsing versions out of
// file names.
func SupersededFiles(releases []Release, keepFileName string) []string {
	superseded := make([]string, 0, len(releases))
	for _, release := range releases {
		if release.FileName != keepFileName {
			superseded = append(superseded, release.FileName)
		}
	}
	return superseded
}
