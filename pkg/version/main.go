package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	cc "github.com/leodido/go-conventionalcommits"
)

var regexpVersion = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)`)

// Parse extracts a semantic version from a tag name. A single leading "v" is
// stripped and anything after the three dot-separated integers is ignored,
// so "v1.2.3" and "1.2.3-rc1" both yield 1.2.3.
func Parse(tag string) (semver.Version, error) {
	match := regexpVersion.FindStringSubmatch(strings.TrimPrefix(tag, "v"))
	if match == nil {
		return semver.Version{}, fmt.Errorf("%w: %q", ErrNotAVersion, tag)
	}

	parts := make([]uint64, 3)

	for i, digits := range match[1:] {
		part, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return semver.Version{}, fmt.Errorf("%w: %q: %w", ErrNotAVersion, tag, err)
		}

		parts[i] = part
	}

	return *semver.New(parts[0], parts[1], parts[2], "", ""), nil
}

// Bump returns the next version for the given bump kind. An unknown bump
// leaves the version unchanged.
func Bump(version semver.Version, bump cc.VersionBump) semver.Version {
	switch bump {
	case cc.MajorVersion:
		return version.IncMajor()
	case cc.MinorVersion:
		return version.IncMinor()
	case cc.PatchVersion:
		return version.IncPatch()
	case cc.UnknownVersion:
		fallthrough
	default:
		return version
	}
}

// FormatTag renders a version as a tag name, e.g. "v1.2.3".
func FormatTag(version semver.Version, prefix string) string {
	return prefix + version.String()
}

// ParseBump maps a bump name from the command line to a version bump.
func ParseBump(name string) (cc.VersionBump, error) {
	switch name {
	case "major":
		return cc.MajorVersion, nil
	case "minor":
		return cc.MinorVersion, nil
	case "patch":
		return cc.PatchVersion, nil
	default:
		return cc.UnknownVersion, fmt.Errorf("%w: %q", ErrUnknownBump, name)
	}
}
