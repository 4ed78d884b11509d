/*
Package main is the relcand cli tool (Release CANDidates).
It bumps release-candidate tags on release branches and prints commit logs
between two release points.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/relcand"
	"github.com/woozymasta/relcand/internal/gitrepo"
)

// Exit statuses.
const (
	exitOK    = 0
	exitFail  = 1 // version-control failure
	exitUsage = 2 // bad flags or arguments
	exitInfo  = 3 // nothing to do, reported only with --strict
)

type Options struct {
	// betteralign:ignore

	// Repository access
	OptionsRepo OptionsRepo `group:"Repository"`
	// Logging
	Verbose bool `short:"v" long:"verbose" description:"Debug logging on stderr"`
}

type OptionsRepo struct {
	Path   string `short:"C" long:"repo"   env:"RELCAND_REPO"   default:"."      description:"Path inside the git repository"`
	Remote string `short:"r" long:"remote" env:"RELCAND_REMOTE" default:"origin" description:"Remote to list and push tags"`
	Local  bool   `short:"L" long:"local"                                         description:"Use local tags only and never push"`
	User   string `long:"user"             env:"RELCAND_USER"                     description:"Username for token auth over HTTPS"`
	Token  string `long:"token"            env:"RELCAND_TOKEN"                    description:"Token for auth over HTTPS"`
}

// app carries what every command needs.
type app struct {
	opt *Options
	out io.Writer
	log *slog.Logger
	ctx context.Context
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args, executes the selected command and maps the outcome to an exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opt Options
	a := &app{opt: &opt, out: stdout, ctx: ctx}

	parser := flags.NewParser(&opt, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "relcand"
	parser.LongDescription = `relcand bumps release-candidate tags while a project is in the release flow
and prints commit logs between release points.
Release branches are named <project>/release/<SemVer>; tags are tags/<project>/release/<SemVer>.`
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		level := slog.LevelInfo
		if opt.Verbose {
			level = slog.LevelDebug
		}
		a.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

		if cmd == nil {
			return nil
		}

		return cmd.Execute(args)
	}

	if _, err := parser.AddCommand("tag-bump", "Bump the release-candidate tag of a release branch",
		"Resolves the latest tag of the branch and, if it is a pre-release, creates and pushes the next one.",
		&tagBumpCommand{app: a}); err != nil {
		panic(err)
	}
	if _, err := parser.AddCommand("release-notes", "Print the commit log between two refs",
		"Prints one line per commit reachable from --end and not from --start: <hash> <date> <author> <summary>.",
		&releaseNotesCommand{app: a}); err != nil {
		panic(err)
	}

	_, err := parser.ParseArgs(args)
	if err == nil {
		return exitOK
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagErr.Message)
			return exitOK
		}

		fmt.Fprintln(stderr, flagErr.Message)
		return exitUsage
	}

	var info *infoError
	if errors.As(err, &info) {
		return exitInfo
	}

	if errors.Is(err, relcand.ErrEmptyBranch) || errors.Is(err, gitrepo.ErrNotTagPath) {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	fmt.Fprintf(stderr, "relcand: %v\n", err)

	return exitFail
}

// repo opens the repository configured by the global options.
func (a *app) repo(opt gitrepo.Options) (*gitrepo.Repository, error) {
	ro := a.opt.OptionsRepo

	opt.Remote = ro.Remote
	if ro.Local {
		opt.Remote = ""
	}
	opt.Auth = gitrepo.TokenAuth(ro.User, ro.Token)
	opt.Logger = a.log

	return gitrepo.Open(ro.Path, opt)
}

// infoError marks an informational outcome turned into a non-zero exit by --strict.
type infoError struct {
	outcome relcand.Outcome
}

func (e *infoError) Error() string {
	return "nothing to do: " + e.outcome.String()
}
