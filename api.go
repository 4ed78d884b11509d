package relcand

// Resolve returns the latest tag of the release line branch among names.
// names may hold arbitrary tag paths; anything that does not belong to branch
// or whose version segment is not a semantic version is ignored. The boolean
// is false when no candidate remains. Ties resolve to the first occurrence.
func Resolve(names []string, branch ReleaseBranch) (TagRef, bool) {
	best, ok := latest(collect(names, branch))
	if !ok {
		return TagRef{}, false
	}

	return best.tag, true
}

// Candidates returns every valid tag of branch, newest first.
// The first element, if any, is the one Resolve returns.
func Candidates(names []string, branch ReleaseBranch) []TagRef {
	rs := collect(names, branch)
	sortDesc(rs)

	return toTags(rs)
}

// CandidatesN is Candidates capped at n entries (n <= 0 means unlimited).
func CandidatesN(names []string, branch ReleaseBranch, n int) []TagRef {
	return capTags(Candidates(names, branch), n)
}
