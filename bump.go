package relcand

import (
	"context"
	"fmt"
)

// TagStore is the version-control layer Bump talks to.
// Tag names are full tag paths such as "tags/gateway/release/0.5.2-rc.16".
type TagStore interface {
	// TagNames lists every known tag path.
	TagNames(ctx context.Context) ([]string, error)
	// CreateTag creates an annotated tag.
	CreateTag(ctx context.Context, name, message string) error
	// PushTag pushes exactly one tag ref to the remote.
	PushTag(ctx context.Context, name string) error
}

// CollaboratorError reports a failure of the version-control layer.
type CollaboratorError struct {
	Op  string // list, create or push
	Err error
}

// Error implements the error interface.
func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s tags: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// BumpReport is the structured result of Bump. Calling automation reads the
// created tag from here instead of from process-wide state.
type BumpReport struct {
	Branch  ReleaseBranch `json:"branch"`
	Latest  TagRef        `json:"latest,omitzero"`
	Created TagRef        `json:"created,omitzero"`
	Outcome Outcome       `json:"outcome"`
	DryRun  bool          `json:"dry_run,omitempty"`
}

// Bump resolves the latest tag of branch and, when it is a pre-release,
// creates and pushes the next one. "No candidates" and "already final" are
// reported through BumpReport.Outcome with a nil error. Any store failure is
// returned as *CollaboratorError; nothing is retried.
//
// When pushing fails the report still carries Created: the tag exists locally
// and a re-run that lists local tags resolves it as the latest.
func Bump(ctx context.Context, store TagStore, branch ReleaseBranch, opt BumpOptions) (BumpReport, error) {
	rep := BumpReport{Branch: branch, DryRun: opt.DryRun}

	names, err := store.TagNames(ctx)
	if err != nil {
		return rep, &CollaboratorError{Op: "list", Err: err}
	}

	latest, ok := Resolve(names, branch)
	if !ok {
		rep.Outcome = OutcomeNoCandidates
		return rep, nil
	}
	rep.Latest = latest

	res := Advance(latest)
	if res.Outcome != OutcomeBumped {
		rep.Outcome = res.Outcome
		return rep, nil
	}
	rep.Outcome = OutcomeBumped
	rep.Created = res.Tag

	if opt.DryRun {
		return rep, nil
	}

	name := res.Tag.String()
	if err := store.CreateTag(ctx, name, opt.message(res.Tag)); err != nil {
		rep.Created = TagRef{}
		return rep, &CollaboratorError{Op: "create", Err: err}
	}

	if err := store.PushTag(ctx, name); err != nil {
		return rep, &CollaboratorError{Op: "push", Err: err}
	}

	return rep, nil
}
