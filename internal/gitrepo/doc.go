// Package gitrepo is the version-control layer of relcand, built on go-git.
//
// It lists tag paths (remote first, then tags that exist only locally),
// creates annotated tags, pushes a single tag ref and walks the commits of a
// range with an optional path filter. Tag paths are ref names without the
// leading "refs/", e.g. "tags/gateway/release/0.5.2-rc.15".
//
// Every failure is returned as a *GitError; nothing is retried.
package gitrepo
