package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/tie/packsync/archive"
	"github.com/tie/packsync/sync"
)

type SyncCommand struct {
	ConfigPath string
	Pack       string
	Dir        string
	Side       string
	Prune      bool
	KeepGoing  bool
	Lenient    bool
}

func (*SyncCommand) Name() string     { return "sync" }
func (*SyncCommand) Synopsis() string { return "reconcile a directory against a pack" }
func (*SyncCommand) Usage() string {
	return `Usage: packsync sync [-f pack.mrpack] [-dir path] [-side client|server] [-prune] [-keep-going] [-lenient] [-c packsync.hcl [profile name]]

	Brings the target directory into conformance with the pack:
	declared files are validated against their digests and refetched
	from mirror URLs when missing or stale, override content is
	written verbatim, and -prune removes untracked files from managed
	directories.

	With -c, options are read from the named profile (default
	"server") in the configuration file; explicit flags override it.

Flags:
`
}

func (cmd *SyncCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.ConfigPath, "c", "", "profile configuration path")
	f.StringVar(&cmd.Pack, "f", defaultPack, "pack archive path")
	f.StringVar(&cmd.Dir, "dir", ".", "target directory")
	f.StringVar(&cmd.Side, "side", "server", "target side")
	f.BoolVar(&cmd.Prune, "prune", false, "delete untracked files from managed directories")
	f.BoolVar(&cmd.KeepGoing, "keep-going", false, "collect download failures instead of aborting")
	f.BoolVar(&cmd.Lenient, "lenient", false, "tolerate download failures for optional files")
}

func (cmd *SyncCommand) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	prof, ok := cmd.profile(f)
	if !ok {
		return subcommands.ExitUsageError
	}

	side, ok := parseSide(prof.Side)
	if !ok {
		log.Errorf("unknown side: %q", prof.Side)
		return subcommands.ExitUsageError
	}

	p, err := archive.Open(prof.Pack)
	if err != nil {
		log.WithError(err).Errorf("open pack %q", prof.Pack)
		return subcommands.ExitFailure
	}

	s := sync.New(osfs.New(prof.Dir), p.Index, p.Overrides, side)
	s.Prune = prof.Prune
	s.KeepGoing = prof.KeepGoing
	s.Lenient = prof.Lenient
	s.ManagedDirs = prof.Managed
	s.OverrideDirs = prof.OverrideDirs
	s.Observer = progressObserver{}

	if err := s.Sync(); err != nil {
		log.WithError(err).Error("Sync failed.")
		return subcommands.ExitFailure
	}
	log.Info("Sync completed successfully.")
	return subcommands.ExitSuccess
}

// profile resolves the effective options: configuration profile first,
// then explicit flags on top.
func (cmd *SyncCommand) profile(f *flag.FlagSet) (Profile, bool) {
	var prof Profile
	if cmd.ConfigPath != "" {
		c, ok := parseConfig(cmd.ConfigPath)
		if !ok {
			return prof, false
		}
		name := "server"
		if args := f.Args(); len(args) > 0 {
			name = args[0]
		}
		prof, ok = c.Lookup(name)
		if !ok {
			log.Errorf("no profile %q in %q", name, cmd.ConfigPath)
			return prof, false
		}
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "f":
			prof.Pack = cmd.Pack
		case "dir":
			prof.Dir = cmd.Dir
		case "side":
			prof.Side = cmd.Side
		case "prune":
			prof.Prune = cmd.Prune
		case "keep-going":
			prof.KeepGoing = cmd.KeepGoing
		case "lenient":
			prof.Lenient = cmd.Lenient
		}
	})
	return prof.fill(), true
}

type progressObserver struct{}

func (progressObserver) Start(fpath string) {}

func (progressObserver) Fetch(fpath, rawurl string) {
	log.WithField("url", rawurl).Infof("Downloading %s", fpath)
}

func (progressObserver) Done(fpath string, action sync.Action) {
	log.Debugf("%s: %s", fpath, action)
}
