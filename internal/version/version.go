// Package version compares the running build against the minimum version a
// site's config asks for.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b. A leading "v" is ignored.
func CompareVersions(a, b string) (int, error) {
	av, err := Parse(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := Parse(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// Parse strips a leading "v" and parses the version string.
func Parse(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(v), "v"))
}

// IsRelease reports whether v is a parseable semver (e.g. not "dev").
func IsRelease(v string) bool {
	_, err := Parse(v)
	return err == nil
}

// CheckMinimum returns an error when current is older than minimum. An empty
// minimum and non-release builds always pass; an unparseable minimum fails.
func CheckMinimum(current, minimum string) error {
	if strings.TrimSpace(minimum) == "" {
		return nil
	}
	if _, err := Parse(minimum); err != nil {
		return fmt.Errorf("invalid min_version %q: %w", minimum, err)
	}
	if !IsRelease(current) {
		return nil
	}
	cmp, err := CompareVersions(current, minimum)
	if err != nil {
		return err
	}
	if cmp < 0 {
		return fmt.Errorf("this site requires version %s or newer (running %s)", minimum, current)
	}
	return nil
}
