/*
Package relcand resolves and advances release-candidate tags for release
branches named "<project>/release/<semver>", and formats commit logs between
two release points.

The package is network-agnostic: it operates on a slice of tag paths and on
commit records supplied by the caller. Typical flow:

 1. List tag paths elsewhere (e.g. remote refs without the "refs/" prefix).
 2. Call Resolve with the release branch to find the latest tag.
 3. Call Advance to compute the next pre-release, unless the line is final.
 4. Create and push the tag elsewhere.

Bump runs steps 1-4 against a TagStore.

Tag paths look like "tags/gateway/release/0.5.2-rc.15": the final segment is
the version, everything before it is the prefix. Branch matching compares whole
path segments and whole version components, so "gateway/release/0.5" matches
"tags/gateway/release/0.5.3" but not "tags/gateway/release/0.50.0".

SemVer notes:
  - Versions must be strict SemVer 2.0.0 (X.Y.Z[-PRERELEASE][+BUILD], no "v").
  - Precedence follows SemVer: numeric identifiers compare numerically and sort
    below alphanumeric ones; a release sorts above its pre-releases.
  - Build metadata never takes part in ordering.

Usage example:

	names := []string{
		"tags/gateway/release/0.5.2-rc.15",
		"tags/gateway/release/0.5.2-rc.9",
		"tags/other/release/9.9.9",
	}

	latest, ok := relcand.Resolve(names, "gateway/release/0.5.2")
	if !ok {
		return // no release line for this branch
	}

	res := relcand.Advance(latest)
	if res.Outcome == relcand.OutcomeBumped {
		fmt.Println(res.Tag) // tags/gateway/release/0.5.2-rc.16
	}
*/
package relcand
