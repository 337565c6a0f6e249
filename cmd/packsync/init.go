package main

import (
	"context"
	"flag"
	"path"
	"sort"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/tie/internal/renameio"

	"github.com/tie/packsync/archive"
	"github.com/tie/packsync/mrpack"
)

type InitCommand struct {
	Pack        string
	OutputPath  string
	ProfileName string
}

func (*InitCommand) Name() string     { return "init" }
func (*InitCommand) Synopsis() string { return "generate a profile from a pack" }
func (*InitCommand) Usage() string {
	return `Usage: packsync init [-f pack.mrpack] [-o packsync.hcl] [-name server]

	Generates a profile configuration for an existing pack. The
	managed directories are inferred from the declared file paths.

Flags:
`
}

func (cmd *InitCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.Pack, "f", defaultPack, "pack archive path")
	f.StringVar(&cmd.OutputPath, "o", defaultProfile, "configuration output path")
	f.StringVar(&cmd.ProfileName, "name", "server", "profile name")
}

func (cmd *InitCommand) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	p, err := archive.Open(cmd.Pack)
	if err != nil {
		log.WithError(err).Errorf("open pack %q", cmd.Pack)
		return subcommands.ExitFailure
	}

	conf := hclwrite.NewEmptyFile()
	body := conf.Body()

	block := body.AppendNewBlock("profile", []string{cmd.ProfileName})
	pb := block.Body()
	pb.SetAttributeValue("pack", cty.StringVal(cmd.Pack))
	pb.SetAttributeValue("dir", cty.StringVal("."))
	side := string(mrpack.SideServer)
	if s, ok := parseSide(cmd.ProfileName); ok {
		side = string(s)
	}
	pb.SetAttributeValue("side", cty.StringVal(side))
	pb.SetAttributeValue("prune", cty.BoolVal(false))

	if dirs := managedDirs(p.Index.Files); len(dirs) > 0 {
		vals := make([]cty.Value, len(dirs))
		for i, dir := range dirs {
			vals[i] = cty.StringVal(dir)
		}
		pb.SetAttributeValue("managed", cty.ListVal(vals))
	}

	data := conf.Bytes()
	if err := renameio.WriteFile(cmd.OutputPath, data, 0644); err != nil {
		log.WithError(err).Errorf("write %q", cmd.OutputPath)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// managedDirs returns the sorted set of top-level directories that
// contain declared files.
func managedDirs(files []mrpack.File) []string {
	seen := make(map[string]struct{})
	for _, f := range files {
		dir := f.Path
		for {
			parent := path.Dir(dir)
			if parent == "." || parent == "/" {
				break
			}
			dir = parent
		}
		if dir == f.Path {
			// Top-level file, no directory to manage.
			continue
		}
		seen[dir] = struct{}{}
	}
	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}
