package relcand

import "regexp"

var (
	// Strict SemVer 2.0.0: X.Y.Z[-PRERELEASE][+BUILD], no leading "v", no leading zeros.
	semverRe = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
		`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
		`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

	// Purely numeric pre-release identifier.
	numericIdentRe = regexp.MustCompile(`^\d+$`)
)
