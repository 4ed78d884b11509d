package relcand

import (
	"errors"
	"slices"
	"strings"
)

// ErrEmptyBranch is returned for a blank release branch name.
var ErrEmptyBranch = errors.New("empty release branch")

// ReleaseBranch names a release line, e.g. "gateway/release/0.5.2".
// It is used only as a filter key for tag paths.
type ReleaseBranch string

// ParseReleaseBranch trims s, drops a leading "<remote>/" and surrounding
// separators. The remote part is only stripped when remote is non-empty.
func ParseReleaseBranch(s, remote string) (ReleaseBranch, error) {
	s = strings.TrimSpace(s)
	if remote != "" {
		s = strings.TrimPrefix(s, remote+PathSeparator)
	}

	s = strings.Trim(s, PathSeparator)
	if s == "" {
		return "", ErrEmptyBranch
	}

	return ReleaseBranch(s), nil
}

// String returns the branch name.
func (b ReleaseBranch) String() string { return string(b) }

// Matches reports whether t belongs to the release line b, comparing whole
// path segments. With b = "gateway/release/0.5":
//
//	tags/gateway/release/0.5.3        match
//	tags/gateway/release/0.5.0-rc.1   match
//	tags/gateway/release/0.50.0       no match
//	tags/gateway/release/0.5/1.0.0    match (branch names the directory)
func (b ReleaseBranch) Matches(t TagRef) bool {
	name := strings.Trim(strings.TrimSpace(string(b)), PathSeparator)
	if name == "" || t.IsZero() {
		return false
	}

	want := append([]string{TagPrefix}, strings.Split(name, PathSeparator)...)
	got := t.segments()

	// Branch names the directory holding the version segment.
	if slices.Equal(got, want) {
		return true
	}

	// Last branch segment is a version prefix of the tag's version segment.
	if !slices.Equal(got, want[:len(want)-1]) {
		return false
	}

	return versionHasPrefix(t.Version(), want[len(want)-1])
}

// versionHasPrefix reports whether version equals p or continues it at a
// component boundary ('.', '-' or '+').
func versionHasPrefix(version, p string) bool {
	if p == "" || !strings.HasPrefix(version, p) {
		return false
	}

	if len(version) == len(p) {
		return true
	}

	switch version[len(p)] {
	case '.', '-', '+':
		return true
	default:
		return false
	}
}
