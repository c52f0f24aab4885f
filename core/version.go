package core

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// HostVersion is the two-component (major.minor) version of the installed
// game that a mod release declares compatibility against. The patch component
// is discarded on purpose: the mod portal rejects or mishandles
// three-component versions in compatibility fields.
type HostVersion struct {
	Major uint64
	Minor uint64
}

// ParseHostVersion parses a version string and truncates it to major.minor.
func ParseHostVersion(s string) (HostVersion, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return HostVersion{}, fmt.Errorf("invalid game version %q: %w", s, err)
	}
	return HostVersion{Major: v.Major(), Minor: v.Minor()}, nil
}

// Compare returns -1, 0 or 1 if h is less than, equal to or greater than other.
func (h HostVersion) Compare(other HostVersion) int {
	if h.Major != other.Major {
		if h.Major < other.Major {
			return -1
		}
		return 1
	}
	if h.Minor != other.Minor {
		if h.Minor < other.Minor {
			return -1
		}
		return 1
	}
	return 0
}

func (h HostVersion) Equal(other HostVersion) bool {
	return h.Compare(other) == 0
}

func (h HostVersion) LessOrEqual(other HostVersion) bool {
	return h.Compare(other) <= 0
}

func (h HostVersion) String() string {
	return fmt.Sprintf("%d.%d", h.Major, h.Minor)
}
