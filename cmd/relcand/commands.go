package main

import (
	"encoding/json"
	"fmt"

	"github.com/woozymasta/relcand"
	"github.com/woozymasta/relcand/internal/gitrepo"
)

type tagBumpCommand struct {
	app *app

	Branch string `short:"b" long:"branch"   required:"true"         description:"Release branch, e.g. gateway/release/0.5.2 (a leading <remote>/ is dropped)"`
	Ref    string `long:"ref"                default:"HEAD"          description:"Revision the new tag points at"`
	DryRun bool   `short:"n" long:"dry-run"                          description:"Compute the next tag without creating or pushing it"`
	Strict bool   `long:"strict"                                     description:"Exit with status 3 when there is nothing to bump"`

	Message     string `short:"m" long:"message" default:"Release candidate %s" description:"Tag annotation (%s is replaced with the new tag)"`
	TaggerName  string `long:"tagger-name"  env:"RELCAND_TAGGER_NAME"  default:"CI System User" description:"Tagger name"`
	TaggerEmail string `long:"tagger-email" env:"RELCAND_TAGGER_EMAIL" default:"ci@localhost"  description:"Tagger email"`

	List   bool   `short:"l" long:"list"   description:"List the branch's tags newest first and exit"`
	Limit  int    `long:"limit"            description:"Max number of listed tags (<=0 = unlimited)" default:"0"`
	Output string `short:"o" long:"output" description:"Output format" choice:"text" choice:"json" default:"text"`
}

func (c *tagBumpCommand) Execute(_ []string) error {
	branch, err := relcand.ParseReleaseBranch(c.Branch, c.app.opt.OptionsRepo.Remote)
	if err != nil {
		return err
	}

	repo, err := c.app.repo(gitrepo.Options{
		TargetRef:   c.Ref,
		TaggerName:  c.TaggerName,
		TaggerEmail: c.TaggerEmail,
	})
	if err != nil {
		return err
	}

	if c.List {
		return c.list(repo, branch)
	}

	c.app.log.Debug("bumping", "branch", branch, "dry_run", c.DryRun)

	rep, err := relcand.Bump(c.app.ctx, repo, branch, relcand.BumpOptions{DryRun: c.DryRun, Message: c.Message})
	if err != nil {
		if !rep.Created.IsZero() {
			c.app.log.Warn("tag created locally but not pushed; re-run to continue", "tag", rep.Created)
		}
		return err
	}

	if err := c.print(rep); err != nil {
		return err
	}

	if c.Strict && rep.Outcome.Informational() {
		return &infoError{outcome: rep.Outcome}
	}

	return nil
}

func (c *tagBumpCommand) list(repo *gitrepo.Repository, branch relcand.ReleaseBranch) error {
	names, err := repo.TagNames(c.app.ctx)
	if err != nil {
		return err
	}

	tags := relcand.CandidatesN(names, branch, c.Limit)
	if relcand.ParseOutput(c.Output) == relcand.OutputJSON {
		return json.NewEncoder(c.app.out).Encode(tags)
	}

	for _, t := range tags {
		fmt.Fprintln(c.app.out, t)
	}

	return nil
}

func (c *tagBumpCommand) print(rep relcand.BumpReport) error {
	out := c.app.out

	if relcand.ParseOutput(c.Output) == relcand.OutputJSON {
		return json.NewEncoder(out).Encode(rep)
	}

	fmt.Fprintf(out, "branch: %s\n", rep.Branch)

	switch rep.Outcome {
	case relcand.OutcomeNoCandidates:
		fmt.Fprintf(out, "No tags found corresponding to the branch %s.\n", rep.Branch)
		fmt.Fprintln(out, "Release branches should be of the form `<project>/release/<SemVer>`")

	case relcand.OutcomeAlreadyFinal:
		fmt.Fprintf(out, "latest tag: %s\n", rep.Latest)
		fmt.Fprintf(out, "Latest tag is a final release, not bumping.\n")

	default:
		fmt.Fprintf(out, "latest tag: %s\n", rep.Latest)
		if rep.DryRun {
			fmt.Fprintf(out, "Next tag (dry run): %s\n", rep.Created)
		} else {
			fmt.Fprintf(out, "Created new tag: %s\n", rep.Created)
		}
	}

	return nil
}

type releaseNotesCommand struct {
	app *app

	Start string   `short:"s" long:"start" required:"true" description:"Start ref, e.g. origin/api/release/1.0.0 (excluded)"`
	End   string   `short:"e" long:"end"   required:"true" description:"End ref, e.g. origin/api/release/2.0.0"`
	Dirs  []string `short:"d" long:"dir"                   description:"Only commits touching this path (repeatable)"`
}

func (c *releaseNotesCommand) Execute(_ []string) error {
	repo, err := c.app.repo(gitrepo.Options{})
	if err != nil {
		return err
	}

	out := c.app.out
	fmt.Fprintf(out, "start branch: %s\n", c.Start)
	fmt.Fprintf(out, "end branch:   %s\n", c.End)
	fmt.Fprintln(out)

	return repo.WalkCommits(c.app.ctx, c.Start, c.End, c.Dirs, func(cm relcand.Commit) error {
		_, err := fmt.Fprintln(out, relcand.FormatCommit(cm))
		return err
	})
}
