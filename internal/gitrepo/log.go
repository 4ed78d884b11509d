package gitrepo

import (
	"context"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/woozymasta/relcand"
)

// WalkCommits calls fn for every commit reachable from end but not from start
// (git's "start..end"), newest first in pre-order, each commit once. When paths
// is non-empty, only commits changing a file under one of them relative to their
// first parent are passed on. An error from fn stops the walk and is returned as is.
func (r *Repository) WalkCommits(ctx context.Context, start, end string, paths []string, fn func(relcand.Commit) error) error {
	from, err := r.commitAt(end)
	if err != nil {
		return err
	}

	base, err := r.commitAt(start)
	if err != nil {
		return err
	}

	// Everything reachable from start is excluded and prunes the walk.
	excluded := make(map[plumbing.Hash]bool)
	err = object.NewCommitPreorderIter(base, nil, nil).ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		excluded[c.Hash] = true
		return nil
	})
	if err != nil {
		return wrap("walk", start, err)
	}

	filter := pathFilter(paths)
	var fnErr error

	err = object.NewCommitPreorderIter(from, excluded, nil).ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if filter != nil {
			ok, err := touches(c, filter)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}

		if err := fn(toCommit(c)); err != nil {
			fnErr = err
			return storer.ErrStop
		}

		return nil
	})
	if fnErr != nil {
		return fnErr
	}

	return wrap("walk", start+".."+end, err)
}

func (r *Repository) commitAt(rev string) (*object.Commit, error) {
	h, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, wrap("walk", rev, err)
	}

	c, err := r.repo.CommitObject(*h)
	if err != nil {
		return nil, wrap("walk", rev, err)
	}

	return c, nil
}

func toCommit(c *object.Commit) relcand.Commit {
	return relcand.Commit{
		Hash:    c.Hash.String(),
		Author:  c.Author.Name,
		When:    c.Committer.When,
		Message: c.Message,
	}
}

// pathFilter returns a matcher for files equal to or below one of paths,
// or nil when paths holds nothing usable.
func pathFilter(paths []string) func(string) bool {
	var clean []string
	for _, p := range paths {
		p = strings.Trim(strings.TrimSpace(p), "/")
		if p == "" || p == "." {
			continue
		}
		clean = append(clean, p)
	}

	if len(clean) == 0 {
		return nil
	}

	return func(name string) bool {
		for _, p := range clean {
			if name == p || strings.HasPrefix(name, p+"/") {
				return true
			}
		}

		return false
	}
}

// touches reports whether c changes a file matching filter relative to its
// first parent. A root commit is compared with the empty tree.
func touches(c *object.Commit, filter func(string) bool) (bool, error) {
	tree, err := c.Tree()
	if err != nil {
		return false, err
	}

	var parentTree *object.Tree
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return false, err
		}

		if parentTree, err = parent.Tree(); err != nil {
			return false, err
		}
	}

	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return false, err
	}

	for _, ch := range changes {
		if filter(ch.From.Name) || filter(ch.To.Name) {
			return true, nil
		}
	}

	return false, nil
}
