package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/tie/internal/robustio"
)

func newDiagWr(p *hclparse.Parser) (diagWr hcl.DiagnosticWriter, color bool) {
	files := p.Files()
	stderr := os.Stderr
	fd := int(stderr.Fd())
	istty, color := fdinfo(fd)
	if !istty {
		return hcl.NewDiagnosticTextWriter(stderr, files, 80, color), color
	}
	var width uint = 80
	if w, _, err := term.GetSize(fd); err != nil {
		log.WithError(err).Warn("get term size")
	} else if w > 0 {
		width = uint(w)
	}
	return hcl.NewDiagnosticTextWriter(stderr, files, width, color), color
}

func fdinfo(fd int) (istty, color bool) {
	istty = term.IsTerminal(fd)
	if istty {
		color = true
	}
	// See https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		color = false
	}
	return
}

// parseConfig reads and decodes a profile configuration file,
// printing HCL diagnostics to stderr.
func parseConfig(fpath string) (Config, bool) {
	var c Config

	parser := hclparse.NewParser()
	diagWr, _ := newDiagWr(parser)

	src, err := robustio.ReadFile(fpath)
	if err != nil {
		log.WithError(err).Errorf("read %q", fpath)
		return c, false
	}

	file, diags := parser.ParseHCL(src, fpath)
	if diags.HasErrors() {
		if err := diagWr.WriteDiagnostics(diags); err != nil {
			log.WithError(err).Error("write diags")
		}
		return c, false
	}

	decodeDiags := gohcl.DecodeBody(file.Body, nil, &c)
	diags = append(diags, decodeDiags...)
	if err := diagWr.WriteDiagnostics(diags); err != nil {
		log.WithError(err).Error("write diags")
		return c, false
	}

	return c, !diags.HasErrors()
}
