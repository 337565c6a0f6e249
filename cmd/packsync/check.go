package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/tie/packsync/archive"
	"github.com/tie/packsync/sync"
)

type CheckCommand struct {
	Pack string
	Dir  string
	Side string
}

func (*CheckCommand) Name() string     { return "check" }
func (*CheckCommand) Synopsis() string { return "report local state without modifying it" }
func (*CheckCommand) Usage() string {
	return `Usage: packsync check [-f pack.mrpack] [-dir path] [-side client|server]

	Prints the status of every applicable declared file: ok when the
	local file matches both digests, missing when absent, stale when
	present with different content. Exits with failure when anything
	needs repair. Performs no writes.

Flags:
`
}

func (cmd *CheckCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.Pack, "f", defaultPack, "pack archive path")
	f.StringVar(&cmd.Dir, "dir", ".", "target directory")
	f.StringVar(&cmd.Side, "side", "server", "target side")
}

func (cmd *CheckCommand) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	side, ok := parseSide(cmd.Side)
	if !ok {
		log.Errorf("unknown side: %q", cmd.Side)
		return subcommands.ExitUsageError
	}

	p, err := archive.Open(cmd.Pack)
	if err != nil {
		log.WithError(err).Errorf("open pack %q", cmd.Pack)
		return subcommands.ExitFailure
	}

	root := osfs.New(cmd.Dir)
	clean := true
	for _, mf := range sync.Applicable(p.Index.Files, side) {
		status := "ok"
		data, err := util.ReadFile(root, mf.Path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			status = "missing"
		case err != nil:
			log.WithError(err).Errorf("read %q", mf.Path)
			return subcommands.ExitFailure
		case !sync.Valid(data, mf.Hashes):
			status = "stale"
		}
		if status != "ok" {
			clean = false
		}
		fmt.Printf("%-8s %s\n", status, mf.Path)
	}

	if !clean {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
