package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
)

const refsPrefix = "refs/"

// tagPath turns a tag ref name into a tag path by dropping "refs/".
func tagPath(n plumbing.ReferenceName) string {
	return strings.TrimPrefix(n.String(), refsPrefix)
}

// tagRefName maps "tags/<name>" to "refs/tags/<name>" and returns <name>.
func tagRefName(path string) (plumbing.ReferenceName, string, error) {
	name, ok := strings.CutPrefix(path, "tags/")
	if !ok || strings.Trim(name, "/") == "" {
		return "", "", fmt.Errorf("%w: %q", ErrNotTagPath, path)
	}

	return plumbing.NewTagReferenceName(name), name, nil
}

// TagNames lists tag paths: the remote's tags in remote order, then tags that
// exist only locally. Local tags cover a tag created by a run that failed to push.
func (r *Repository) TagNames(ctx context.Context) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})

	add := func(n plumbing.ReferenceName) {
		p := tagPath(n)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	if r.opt.Remote != "" {
		remote, err := r.repo.Remote(r.opt.Remote)
		if err != nil {
			return nil, wrap("list-tags", r.opt.Remote, err)
		}

		refs, err := remote.ListContext(ctx, &git.ListOptions{Auth: r.opt.Auth})
		if err != nil {
			return nil, wrap("list-tags", r.opt.Remote, err)
		}

		for _, ref := range refs {
			if ref.Name().IsTag() {
				add(ref.Name())
			}
		}
		r.log.Debug("listed remote tags", "remote", r.opt.Remote, "count", len(out))
	}

	remoteCount := len(out)

	iter, err := r.repo.Tags()
	if err != nil {
		return nil, wrap("list-tags", "", err)
	}
	defer iter.Close()

	err = iter.ForEach(func(ref *plumbing.Reference) error {
		add(ref.Name())
		return nil
	})
	if err != nil {
		return nil, wrap("list-tags", "", err)
	}

	if r.opt.Remote != "" && len(out) > remoteCount {
		r.log.Warn("local tags missing on remote", "remote", r.opt.Remote, "tags", out[remoteCount:])
	}

	return out, nil
}

// CreateTag creates the annotated tag path ("tags/<name>") at the target revision.
func (r *Repository) CreateTag(_ context.Context, path, message string) error {
	_, name, err := tagRefName(path)
	if err != nil {
		return wrap("create-tag", path, err)
	}

	target, err := r.repo.ResolveRevision(plumbing.Revision(r.opt.TargetRef))
	if err != nil {
		return wrap("create-tag", r.opt.TargetRef, err)
	}

	_, err = r.repo.CreateTag(name, *target, &git.CreateTagOptions{
		Tagger:  r.tagger(),
		Message: message,
	})
	if err != nil {
		return wrap("create-tag", path, err)
	}

	r.log.Debug("created tag", "tag", path, "target", target.String())

	return nil
}

// PushTag pushes exactly the ref of tag path to the remote.
// An up-to-date remote is not an error.
func (r *Repository) PushTag(ctx context.Context, path string) error {
	ref, _, err := tagRefName(path)
	if err != nil {
		return wrap("push", path, err)
	}

	if r.opt.Remote == "" {
		r.log.Warn("no remote configured, tag not pushed", "tag", path)
		return nil
	}

	spec := config.RefSpec(ref.String() + ":" + ref.String())
	err = r.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: r.opt.Remote,
		RefSpecs:   []config.RefSpec{spec},
		Auth:       r.opt.Auth,
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		r.log.Debug("tag already on remote", "tag", path)
		return nil
	}
	if err != nil {
		return wrap("push", path, err)
	}

	r.log.Debug("pushed tag", "tag", path, "remote", r.opt.Remote)

	return nil
}
