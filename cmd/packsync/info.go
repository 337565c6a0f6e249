package main

import (
	"context"
	"flag"
	"fmt"
	"sort"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"

	"github.com/tie/packsync/archive"
	"github.com/tie/packsync/mrpack"
)

type InfoCommand struct {
	Pack string
}

func (*InfoCommand) Name() string     { return "info" }
func (*InfoCommand) Synopsis() string { return "print pack metadata" }
func (*InfoCommand) Usage() string {
	return `Usage: packsync info [-f pack.mrpack]

	Prints pack name, version, file counts and dependency versions.

Flags:
`
}

func (cmd *InfoCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.Pack, "f", defaultPack, "pack archive path")
}

func (cmd *InfoCommand) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	p, err := archive.Open(cmd.Pack)
	if err != nil {
		log.WithError(err).Errorf("open pack %q", cmd.Pack)
		return subcommands.ExitFailure
	}

	index := p.Index
	fmt.Printf("Name:      %s\n", index.Name)
	fmt.Printf("Version:   %s\n", index.VersionID)
	fmt.Printf("Game:      %s\n", index.Game)
	fmt.Printf("Files:     %d\n", len(index.Files))
	fmt.Printf("Overrides: %d\n", len(p.Overrides))

	ids := make([]mrpack.DependencyID, 0, len(index.Dependencies))
	for id := range index.Dependencies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fmt.Printf("%s %s\n", id, index.Dependencies[id])
	}

	return subcommands.ExitSuccess
}
