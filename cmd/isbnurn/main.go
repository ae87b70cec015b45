package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/mds/mapset"
	"github.com/danderson/isbnurn"
)

var globalArgs struct {
	Format string `flag:"format,default=text,Output format for parse: text, json, yaml or go"`
}

var formats = mapset.New("text", "json", "yaml", "go")

var fieldArgs struct {
	NID       string `flag:"nid,Namespace identifier, defaults to isbn when --namespace is given"`
	Namespace string `flag:"namespace,Namespace, usually an ISBN-13"`
	Toc       string `flag:"toc,Table of contents item, like 3.3.3"`
	Segment   string `flag:"segment,Segment number"`
	Offset    string `flag:"offset,Character offset as start[,length]"`
	Text      string `flag:"text,Text fragment anchored at the offset"`
}

func main() {
	root := &command.C{
		Name:     "isbnurn",
		Usage:    "command args...",
		SetFlags: command.Flags(flax.MustBind, &globalArgs),
		Commands: []*command.C{
			{
				Name:  "parse",
				Usage: "parse urn...",
				Help: `Parse URNs and print their fields.

Fields that are not present in a URN are omitted from the output. Use
--format to select text, json, yaml or go output.`,
				Run: command.Adapt(runParse),
			},
			{
				Name:     "build",
				Usage:    "build [flags]",
				Help:     "Build a URN from flags.",
				SetFlags: command.Flags(flax.MustBind, &fieldArgs),
				Run:      command.Adapt(runBuild),
			},
			{
				Name:  "edit",
				Usage: "edit urn [flags]",
				Help: `Change fields of an existing URN.

Only the fields given as flags are changed, all others keep the value
parsed from urn.`,
				SetFlags: command.Flags(flax.MustBind, &fieldArgs),
				Run:      command.Adapt(runEdit),
			},
			{
				Name:  "check",
				Usage: "check urn...",
				Help: `Check that URNs are canonical.

A URN is canonical if parsing it and rendering it again produces the
same string. Check also reports fields that parse but would be left
out when rendering. Exits non-zero if any URN fails.`,
				Run: command.Adapt(runCheck),
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	env := root.NewEnv(nil).SetContext(ctx)
	command.RunOrFail(env, os.Args[1:])
}

func runParse(env *command.Env, urns ...string) error {
	if len(urns) == 0 {
		return env.Usagef("parse requires at least one URN.")
	}
	if !formats.Has(globalArgs.Format) {
		return env.Usagef("unknown format %q, want text, json, yaml or go", globalArgs.Format)
	}
	for i, u := range urns {
		if i > 0 && globalArgs.Format == "text" {
			fmt.Println()
		}
		if err := printRecord(os.Stdout, globalArgs.Format, isbnurn.Parse(u)); err != nil {
			return fmt.Errorf("printing %q: %w", u, err)
		}
	}
	return nil
}

func runBuild(env *command.Env) error {
	r := isbnurn.New()
	if err := applyFieldArgs(r); err != nil {
		return env.Usagef("%v", err)
	}
	return finish(r)
}

func runEdit(env *command.Env, urn string) error {
	r := isbnurn.Parse(urn)
	if err := applyFieldArgs(r); err != nil {
		return env.Usagef("%v", err)
	}
	return finish(r)
}

// finish prints r's URN, and warns about any fields the URN could
// not carry.
func finish(r *isbnurn.Record) error {
	fmt.Println(r)
	if err := r.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return nil
}

func runCheck(env *command.Env, urns ...string) error {
	if len(urns) == 0 {
		return env.Usagef("check requires at least one URN.")
	}
	seen := mapset.New[string]()
	failed := 0
	for _, u := range urns {
		if seen.Has(u) {
			continue
		}
		seen.Add(u)
		if err := checkURN(u); err != nil {
			fmt.Printf("FAIL %s\n  %v\n", u, err)
			failed++
		} else {
			fmt.Printf("ok   %s\n", u)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d URNs failed", failed, len(seen))
	}
	return nil
}

var errNotCanonical = errors.New("not canonical")

func checkURN(u string) error {
	var errs []error
	if got, ok := isbnurn.Canonical(u); !ok {
		errs = append(errs, fmt.Errorf("%w, renders as %s", errNotCanonical, got))
	}
	if err := isbnurn.Parse(u).Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
