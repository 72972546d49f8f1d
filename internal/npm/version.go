// Package npm probes and drives the npm package manager.
package npm

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a semantic version reported by npm.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Legacy reports whether this npm predates flat node_modules (npm 3).
func (v Version) Legacy() bool {
	return v.Major < 3
}

// ParseVersion parses the output of "npm --version". A leading "v" and any
// pre-release or build suffix are ignored; missing minor or patch parts are zero.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexAny(raw, "-+"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" {
		return Version{}, fmt.Errorf("parsing npm version %q: empty", s)
	}

	parts := strings.Split(raw, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("parsing npm version %q: too many components", s)
	}

	nums := [3]int{}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("parsing npm version %q: invalid component %q", s, p)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}
