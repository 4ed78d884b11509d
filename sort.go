package relcand

import "sort"

// sortDesc orders records by descending precedence; equal versions keep input order.
func sortDesc(in []rec) {
	if len(in) < 2 {
		return
	}

	sort.SliceStable(in, func(i, j int) bool {
		c := in[i].tag.Compare(in[j].tag)
		if c == 0 {
			return in[i].idx < in[j].idx
		}

		return c > 0
	})
}

// toTags projects records to their tags.
func toTags(in []rec) []TagRef {
	out := make([]TagRef, 0, len(in))
	for _, r := range in {
		out = append(out, r.tag)
	}

	return out
}
