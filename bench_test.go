package relcand

import (
	"math/rand"
	"strconv"
	"testing"
)

// Global sinks to avoid compiler eliminating results.
var (
	benchTag  TagRef
	benchTags []TagRef
)

// makeTagPaths generates a mixed dataset of remote tag paths: release tags of a
// few projects (with/without pre/build), malformed versions, and junk.
func makeTagPaths(n int) []string {
	r := rand.New(rand.NewSource(1)) // deterministic
	out := make([]string, n)

	projects := []string{"gateway", "api", "web"}
	for i := 0; i < n; i++ {
		prefix := "tags/" + projects[r.Intn(len(projects))] + "/release/"

		switch x := r.Intn(100); {
		case x < 70: // full SemVer X.Y.Z with optional pre/build
			s := strconv.Itoa(r.Intn(3)) + "." + strconv.Itoa(r.Intn(5)) + "." + strconv.Itoa(r.Intn(5))

			// ~60% prerelease; ~10% build
			if r.Intn(100) < 60 {
				kind := []string{"alpha", "beta", "rc"}[r.Intn(3)]

				// Sometimes numeric part without dot to exercise comparator behavior
				if r.Intn(2) == 0 {
					s += "-" + kind + "." + strconv.Itoa(r.Intn(30))
				} else {
					s += "-" + kind + strconv.Itoa(r.Intn(30))
				}
			}

			if r.Intn(100) < 10 {
				s += "+build." + strconv.Itoa(r.Intn(100))
			}
			out[i] = prefix + s

		case x < 85: // malformed versions under a release prefix
			bad := []string{"1.2", "v1.2.3", "01.2.3", "1.2.3-", "1.2.3-rc.01", "latest", ""}
			out[i] = prefix + bad[r.Intn(len(bad))]

		default: // junk
			junks := []string{
				"latest", "stable", "v1.0.0", "tags/nightly", "1.2.3",
				"tags/gateway/release", "tags//1.0.0",
			}
			out[i] = junks[r.Intn(len(junks))]
		}
	}

	return out
}

func BenchmarkResolve(b *testing.B) {
	b.ReportAllocs()
	tags := makeTagPaths(50000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchTag, _ = Resolve(tags, "gateway/release/1")
	}
}

func BenchmarkCandidates(b *testing.B) {
	b.ReportAllocs()
	tags := makeTagPaths(50000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchTags = Candidates(tags, "gateway/release")
	}
}

func BenchmarkAdvance(b *testing.B) {
	b.ReportAllocs()
	latest := MustParseTagRef("tags/gateway/release/0.5.2-rc.15+build.7")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchTag = Advance(latest).Tag
	}
}
