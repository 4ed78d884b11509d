package relcand

import "strings"

// Outcome classifies the result of a bump attempt.
type Outcome uint8

const (
	// OutcomeNoCandidates means no valid tag belongs to the branch.
	OutcomeNoCandidates Outcome = iota
	// OutcomeAlreadyFinal means the latest tag is a release without pre-release.
	OutcomeAlreadyFinal
	// OutcomeBumped means a new pre-release tag was computed.
	OutcomeBumped
)

// String returns a stable textual representation for Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeBumped:
		return "bumped"
	case OutcomeAlreadyFinal:
		return "already-final"
	default:
		return "no-candidates"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Informational reports whether o is a normal terminal state with nothing to do.
func (o Outcome) Informational() bool {
	return o != OutcomeBumped
}

// AdvanceResult is the result of Advance. Tag is set only for OutcomeBumped.
type AdvanceResult struct {
	Outcome Outcome
	Tag     TagRef
}

// Advance computes the next pre-release tag after latest.
//
// A final release is never bumped: OutcomeAlreadyFinal is returned instead.
// The zero TagRef yields OutcomeNoCandidates.
// Otherwise the rightmost numeric pre-release identifier is incremented, or
// ".0" is appended when none is numeric. Everything else, build metadata
// included, is kept.
func Advance(latest TagRef) AdvanceResult {
	if latest.IsZero() {
		return AdvanceResult{Outcome: OutcomeNoCandidates}
	}

	base, pre, build := splitVersion(latest.Version())
	if pre == "" {
		return AdvanceResult{Outcome: OutcomeAlreadyFinal}
	}

	version := base + "-" + bumpPrerelease(pre)
	if build != "" {
		version += "+" + build
	}

	next, err := ParseTagRef(latest.Prefix() + PathSeparator + version)
	if err != nil {
		// unreachable for a valid latest: the bump keeps the SemVer shape
		panic(err)
	}

	return AdvanceResult{Outcome: OutcomeBumped, Tag: next}
}

// bumpPrerelease increments the rightmost numeric identifier of pre.
func bumpPrerelease(pre string) string {
	ids := strings.Split(pre, ".")
	for i := len(ids) - 1; i >= 0; i-- {
		if numericIdentRe.MatchString(ids[i]) {
			ids[i] = incDecimal(ids[i])
			return strings.Join(ids, ".")
		}
	}

	return pre + ".0"
}
