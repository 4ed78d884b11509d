package relcand

import (
	"errors"
	"fmt"
	"strings"

	"github.com/woozymasta/semver"
)

// PathSeparator separates tag path segments.
const PathSeparator = "/"

// TagPrefix is the leading segment of every tag path, as listed relative to refs/.
const TagPrefix = "tags"

// ErrMalformedTag is returned when a tag path has no version segment
// or the version segment is not a valid semantic version. Major, minor and
// patch must also fit into an int; larger components are reported as malformed.
var ErrMalformedTag = errors.New("malformed tag")

// TagRef is a tag path such as "tags/gateway/release/0.5.2-rc.15" whose final
// segment is a valid semantic version. The zero value is not a valid TagRef;
// construct one with ParseTagRef.
type TagRef struct {
	prefix  string
	version string
	ver     semver.Semver
}

// ParseTagRef splits path on its last separator and validates the version segment.
func ParseTagRef(path string) (TagRef, error) {
	i := strings.LastIndex(path, PathSeparator)
	if i <= 0 || i == len(path)-1 {
		return TagRef{}, fmt.Errorf("%w: %q has no version segment", ErrMalformedTag, path)
	}

	prefix, version := path[:i], path[i+1:]
	v, ok := parseVersion(version)
	if !ok {
		return TagRef{}, fmt.Errorf("%w: %q is not a semantic version", ErrMalformedTag, version)
	}

	return TagRef{prefix: prefix, version: version, ver: v}, nil
}

// MustParseTagRef is like ParseTagRef but panics on error.
func MustParseTagRef(path string) TagRef {
	t, err := ParseTagRef(path)
	if err != nil {
		panic(err)
	}

	return t
}

// Prefix returns everything before the version segment, e.g. "tags/gateway/release".
func (t TagRef) Prefix() string { return t.prefix }

// Version returns the version segment, e.g. "0.5.2-rc.15".
func (t TagRef) Version() string { return t.version }

// String returns the full tag path.
func (t TagRef) String() string {
	if t.version == "" {
		return ""
	}

	return t.prefix + PathSeparator + t.version
}

// IsZero reports whether t is the zero TagRef.
func (t TagRef) IsZero() bool { return t.version == "" }

// Base returns MAJOR.MINOR.PATCH.
func (t TagRef) Base() string {
	base, _, _ := splitVersion(t.version)
	return base
}

// Prerelease returns the pre-release part without the leading '-'.
func (t TagRef) Prerelease() string {
	_, pre, _ := splitVersion(t.version)
	return pre
}

// Build returns the build metadata without the leading '+'.
func (t TagRef) Build() string {
	_, _, build := splitVersion(t.version)
	return build
}

// IsFinal reports whether the version carries no pre-release.
func (t TagRef) IsFinal() bool { return t.Prerelease() == "" }

// Compare orders tags by semantic version precedence of their version segment.
// Build metadata is ignored. The result is -1, 0 or +1.
func (t TagRef) Compare(o TagRef) int {
	return t.ver.Compare(o.ver)
}

// segments splits the prefix into path segments.
func (t TagRef) segments() []string {
	return strings.Split(t.prefix, PathSeparator)
}

// MarshalText implements encoding.TextMarshaler.
func (t TagRef) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
