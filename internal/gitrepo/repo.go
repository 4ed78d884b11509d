package gitrepo

import (
	"log/slog"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
)

// Default tagger identity, used when Options leaves it empty.
const (
	DefaultTaggerName  = "CI System User"
	DefaultTaggerEmail = "ci@localhost"
)

// Options configures a Repository.
type Options struct {
	// Remote is the remote to list and push tags. Empty means local only:
	// TagNames lists local tags and PushTag is a no-op.
	Remote string

	// Auth is passed to remote list and push. Nil uses the transport default.
	Auth transport.AuthMethod

	// TaggerName and TaggerEmail sign created tags.
	TaggerName  string
	TaggerEmail string

	// TargetRef is the revision new tags point at. Empty means HEAD.
	TargetRef string

	// Logger receives debug and warning records. Nil discards them.
	Logger *slog.Logger

	// Now returns the tag timestamp. Nil means time.Now.
	Now func() time.Time
}

// TokenAuth returns HTTP basic auth carrying token, or nil for an empty token.
func TokenAuth(user, token string) transport.AuthMethod {
	if token == "" {
		return nil
	}

	if user == "" {
		user = "git"
	}

	return &http.BasicAuth{Username: user, Password: token}
}

// Repository wraps a go-git repository.
type Repository struct {
	repo *git.Repository
	opt  Options
	log  *slog.Logger
}

// Open opens the repository containing path, searching parent directories.
func Open(path string, opt Options) (*Repository, error) {
	r, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, wrap("open", path, err)
	}

	return New(r, opt), nil
}

// New wraps an already opened go-git repository.
func New(r *git.Repository, opt Options) *Repository {
	if opt.TaggerName == "" {
		opt.TaggerName = DefaultTaggerName
	}

	if opt.TaggerEmail == "" {
		opt.TaggerEmail = DefaultTaggerEmail
	}

	if opt.TargetRef == "" {
		opt.TargetRef = "HEAD"
	}

	if opt.Now == nil {
		opt.Now = time.Now
	}

	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Repository{repo: r, opt: opt, log: log}
}

func (r *Repository) tagger() *object.Signature {
	return &object.Signature{
		Name:  r.opt.TaggerName,
		Email: r.opt.TaggerEmail,
		When:  r.opt.Now(),
	}
}
