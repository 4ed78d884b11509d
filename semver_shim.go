package relcand

import (
	"strings"

	sv "github.com/woozymasta/semver"
)

// parseVersion validates s as a strict SemVer and parses it for comparison.
// The regexp rejects the lenient forms the parser accepts ("v1.2.3", "1", "1.2").
// Numeric components beyond the host int size are rejected by the parser.
// Build metadata is cut before parsing so equal versions compare equal
// regardless of their build suffix.
func parseVersion(s string) (sv.Semver, bool) {
	if !semverRe.MatchString(s) {
		return sv.Semver{}, false
	}

	core, _, _ := strings.Cut(s, "+")
	v, ok := sv.Parse(core)
	if !ok || !v.IsValid() {
		return sv.Semver{}, false
	}

	return v, true
}

// splitVersion cuts a validated version string into core, pre-release and build parts.
func splitVersion(s string) (base, pre, build string) {
	rest, build, _ := strings.Cut(s, "+")
	base, pre, _ = strings.Cut(rest, "-")

	return base, pre, build
}
