package relcand

import (
	"reflect"
	"testing"
)

func TestResolve_NumericPrerelease(t *testing.T) {
	t.Parallel()

	in := []string{
		"tags/gateway/release/0.5.2-rc.15",
		"tags/gateway/release/0.5.2-rc.9",
		"tags/other/release/9.9.9",
	}

	got, ok := Resolve(in, "gateway/release/0.5.2")
	if !ok || got.String() != "tags/gateway/release/0.5.2-rc.15" {
		t.Fatalf("Resolve = %q, %v; want tags/gateway/release/0.5.2-rc.15", got, ok)
	}

	res := Advance(got)
	if res.Outcome != OutcomeBumped || res.Tag.String() != "tags/gateway/release/0.5.2-rc.16" {
		t.Fatalf("Advance = %v %q; want bumped tags/gateway/release/0.5.2-rc.16", res.Outcome, res.Tag)
	}
}

func TestResolve_FinalRelease(t *testing.T) {
	t.Parallel()

	got, ok := Resolve([]string{"tags/gateway/release/1.0.0"}, "gateway/release/1.0.0")
	if !ok || got.String() != "tags/gateway/release/1.0.0" {
		t.Fatalf("Resolve = %q, %v", got, ok)
	}

	res := Advance(got)
	if res.Outcome != OutcomeAlreadyFinal || !res.Tag.IsZero() {
		t.Fatalf("Advance = %v %q; want already-final without tag", res.Outcome, res.Tag)
	}
}

func TestResolve_Empty(t *testing.T) {
	t.Parallel()

	for _, in := range [][]string{nil, {}, {"v1.0.0", "latest", "tags/other/release/2.0.0"}} {
		if got, ok := Resolve(in, "gateway/release/2.0.0"); ok || !got.IsZero() {
			t.Fatalf("Resolve(%v) = %q, %v; want none", in, got, ok)
		}
	}
}

func TestResolve_SkipsMalformed(t *testing.T) {
	t.Parallel()

	in := []string{
		"tags/gateway/release/0.5.2-rc.3",
		"tags/gateway/release/0.5.2-rc.04", // leading zero
		"tags/gateway/release/0.5.2-rc.",   // empty identifier
		"tags/gateway/release/0.5.2.1",     // extra component
		"tags/gateway/release/",            // no version
		"tags/gateway/release/0.5.2-rc.2",
	}

	got, ok := Resolve(in, "gateway/release/0.5.2")
	if !ok || got.String() != "tags/gateway/release/0.5.2-rc.3" {
		t.Fatalf("Resolve = %q, %v; want rc.3", got, ok)
	}
}

func TestResolve_NoPartialSegmentMatch(t *testing.T) {
	t.Parallel()

	in := []string{
		"tags/gateway/release/0.50.0",
		"tags/gateway/release/0.5.1-rc.1",
		"tags/gateway/release/0.51.0-rc.7",
	}

	got, ok := Resolve(in, "gateway/release/0.5")
	if !ok || got.String() != "tags/gateway/release/0.5.1-rc.1" {
		t.Fatalf("Resolve = %q, %v; want tags/gateway/release/0.5.1-rc.1", got, ok)
	}
}

func TestResolve_TieKeepsFirst(t *testing.T) {
	t.Parallel()

	in := []string{
		"tags/gateway/release/1.0.0-rc.1",
		"tags/gateway/release/1.0.0-rc.2+build.b",
		"tags/gateway/release/1.0.0-rc.2+build.a",
		"tags/gateway/release/1.0.0-rc.2",
	}

	got, ok := Resolve(in, "gateway/release/1.0.0")
	if !ok || got.String() != "tags/gateway/release/1.0.0-rc.2+build.b" {
		t.Fatalf("Resolve = %q, %v; want first of the equal versions", got, ok)
	}
}

func TestResolve_ReleaseAbovePrerelease(t *testing.T) {
	t.Parallel()

	in := []string{
		"tags/gateway/release/1.0.0-rc.30",
		"tags/gateway/release/1.0.0",
		"tags/gateway/release/1.0.0-rc.31",
	}

	got, _ := Resolve(in, "gateway/release/1.0.0")
	if got.String() != "tags/gateway/release/1.0.0" {
		t.Fatalf("Resolve = %q; want final release", got)
	}

	if res := Advance(got); res.Outcome != OutcomeAlreadyFinal {
		t.Fatalf("Advance outcome = %v; want already-final", res.Outcome)
	}
}

func TestResolve_AlwaysValid(t *testing.T) {
	t.Parallel()

	in := makeTagPaths(2000)
	for _, b := range []ReleaseBranch{"gateway/release", "gateway/release/1", "gateway/release/1.2.3", "api/release/0.1"} {
		got, ok := Resolve(in, b)
		if !ok {
			continue
		}

		again, err := ParseTagRef(got.String())
		if err != nil {
			t.Fatalf("Resolve(%q) returned invalid tag %q: %v", b, got, err)
		}

		if !b.Matches(again) {
			t.Fatalf("Resolve(%q) returned foreign tag %q", b, got)
		}

		for _, c := range Candidates(in, b) {
			if c.Compare(got) > 0 {
				t.Fatalf("Resolve(%q) = %q but %q is newer", b, got, c)
			}
		}
	}
}

// A tag created but never pushed must be picked up on the next run.
func TestResolve_CrashRecovery(t *testing.T) {
	t.Parallel()

	in := []string{
		"tags/gateway/release/0.5.2-rc.9",
		"tags/gateway/release/0.5.2-rc.15",
	}
	branch := ReleaseBranch("gateway/release/0.5.2")

	prev, _ := Resolve(in, branch)
	next := Advance(prev).Tag

	got, ok := Resolve(append(in, next.String()), branch)
	if !ok || got.String() != next.String() {
		t.Fatalf("Resolve after create = %q; want %q", got, next)
	}

	if got.Compare(prev) <= 0 {
		t.Fatalf("%q not newer than %q", got, prev)
	}
}

func TestCandidates_Order(t *testing.T) {
	t.Parallel()

	in := []string{
		"tags/gateway/release/0.5.2-rc.9",
		"junk",
		"tags/gateway/release/0.5.2-rc.15",
		"tags/gateway/release/0.5.2-beta.1",
		"tags/gateway/release/0.5.2-rc.10",
		"tags/gateway/release/0.5.2-rc.15+b",
		"tags/api/release/0.5.2-rc.99",
	}

	got := Candidates(in, "gateway/release/0.5.2")
	want := []string{
		"tags/gateway/release/0.5.2-rc.15",
		"tags/gateway/release/0.5.2-rc.15+b",
		"tags/gateway/release/0.5.2-rc.10",
		"tags/gateway/release/0.5.2-rc.9",
		"tags/gateway/release/0.5.2-beta.1",
	}
	if !reflect.DeepEqual(paths(got), want) {
		t.Fatalf("Candidates = %v; want %v", paths(got), want)
	}

	if got := CandidatesN(in, "gateway/release/0.5.2", 2); !reflect.DeepEqual(paths(got), want[:2]) {
		t.Fatalf("CandidatesN(2) = %v; want %v", paths(got), want[:2])
	}

	if got := CandidatesN(in, "gateway/release/0.5.2", 0); len(got) != len(want) {
		t.Fatalf("CandidatesN(0) len = %d; want %d", len(got), len(want))
	}
}

func paths(in []TagRef) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		out = append(out, t.String())
	}

	return out
}
