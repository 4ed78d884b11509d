package relcand

// rec is an internal record carrying the parsed tag and its input position.
type rec struct {
	tag TagRef // parsed tag
	idx int    // position in the input
}

// collect parses every name and keeps the valid tags belonging to branch.
// Names that do not parse are dropped silently: remotes carry arbitrary tags.
func collect(names []string, branch ReleaseBranch) []rec {
	out := make([]rec, 0, len(names))
	for idx, name := range names {
		t, err := ParseTagRef(name)
		if err != nil {
			continue
		}

		if !branch.Matches(t) {
			continue
		}

		out = append(out, rec{tag: t, idx: idx})
	}

	return out
}

// latest returns the record with the highest precedence.
// Equal versions keep the earliest input position.
func latest(in []rec) (rec, bool) {
	if len(in) == 0 {
		return rec{}, false
	}

	best := in[0]
	for _, r := range in[1:] {
		c := r.tag.Compare(best.tag)
		if c > 0 || (c == 0 && r.idx < best.idx) {
			best = r
		}
	}

	return best, true
}
