package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/diff"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/tie/internal/renameio"
	"github.com/tie/internal/robustio"
)

type FormatCommand struct {
	DisableCheck bool
	Overwrite    bool
	ContextSize  int
}

func (*FormatCommand) Name() string     { return "fmt" }
func (*FormatCommand) Synopsis() string { return "format profile configurations" }
func (*FormatCommand) Usage() string {
	return `Usage: packsync fmt [-c int] [-w] [-nocheck] [configuration paths]

	Formats profile configuration files using standard syntax. It can
	either write files in-place or generate unified diff with
	specified context size.

Flags:
`
}

func (cmd *FormatCommand) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.DisableCheck, "nocheck", false, "disable diagnostics")
	f.BoolVar(&cmd.Overwrite, "w", false, "write result to (source) file instead of stdout")
	f.IntVar(&cmd.ContextSize, "c", 3, "output n lines of diff context")
}

func (cmd *FormatCommand) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	var color bool
	var parser *hclparse.Parser
	var diagWr hcl.DiagnosticWriter
	if !cmd.DisableCheck {
		parser = hclparse.NewParser()
		diagWr, color = newDiagWr(parser)
	}

	paths := f.Args()
	if len(paths) <= 0 {
		paths = []string{defaultProfile}
	} else {
		sort.Strings(paths)
	}

	seen := make(map[string]bool, len(paths))
	for _, fpath := range paths {
		if seen[fpath] {
			continue
		}
		seen[fpath] = true
		if !cmd.formatFile(ctx, fpath, parser, diagWr, color) {
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}

func (cmd *FormatCommand) formatFile(ctx context.Context, fpath string, parser *hclparse.Parser, diagWr hcl.DiagnosticWriter, color bool) bool {
	src, err := robustio.ReadFile(fpath)
	if err != nil {
		log.WithError(err).Errorf("read %q", fpath)
		return false
	}

	if parser != nil {
		file, diags := parser.ParseHCL(src, fpath)
		if diags.HasErrors() {
			if err := diagWr.WriteDiagnostics(diags); err != nil {
				log.WithError(err).Error("write diags")
			}
			return false
		}
		decodeDiags := gohcl.DecodeBody(file.Body, nil, &Config{})
		diags = append(diags, decodeDiags...)
		if err := diagWr.WriteDiagnostics(diags); err != nil {
			log.WithError(err).Error("write diags")
			return false
		}
		if diags.HasErrors() {
			return false
		}
	}

	outSrc := hclwrite.Format(src)
	if bytes.Equal(src, outSrc) {
		return true
	}

	if cmd.Overwrite {
		if err := renameio.WriteFile(fpath, outSrc, 0644); err != nil {
			log.WithError(err).Errorf("write %q", fpath)
			return false
		}
		return true
	}

	fpath = filepath.ToSlash(fpath)
	names := diff.Names(fmt.Sprintf("a/%s", fpath), fmt.Sprintf("b/%s", fpath))
	opts := []diff.WriteOpt{names}
	if color {
		opts = append(opts, diff.TerminalColor())
	}
	a, b := splitLines(src), splitLines(outSrc)
	pair := diff.Bytes(a, b)
	edit := diff.Myers(ctx, pair)
	if cmd.ContextSize >= 0 {
		edit = edit.WithContextSize(cmd.ContextSize)
	}
	if _, err := edit.WriteUnified(os.Stdout, pair, opts...); err != nil {
		log.WithError(err).Error("write diff")
		return false
	}
	return true
}

func splitLines(b []byte) [][]byte {
	return bytes.Split(b, []byte("\n"))
}
