// Package sync reconciles a local directory tree against a pack index:
// it validates declared files by digest, repairs them from mirror URLs,
// materializes override content, and optionally prunes untracked files.
package sync

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	log "github.com/sirupsen/logrus"

	"github.com/tie/packsync/mrpack"
)

// Syncer reconciles a sync root against a filtered set of declared
// files and an override map. Entries not applicable to the target side
// are dropped at construction and invisible afterwards.
type Syncer struct {
	// Root is the directory tree being reconciled.
	Root billy.Filesystem

	// Fetcher performs single-URL downloads. Replaceable for tests.
	Fetcher *Fetcher

	// Overrides maps relative paths to verbatim content written
	// after reconciliation, unconditionally.
	Overrides map[string][]byte

	// Prune removes untracked files from managed directories after
	// overrides are written.
	Prune bool

	// KeepGoing collects per-entry download failures and reports
	// them in aggregate instead of aborting on the first one.
	KeepGoing bool

	// Lenient downgrades download exhaustion to a warning for
	// entries whose side requirement is optional.
	Lenient bool

	// ManagedDirs are directory roots holding declared files;
	// OverrideDirs hold override content. Both are prune scopes.
	ManagedDirs  []string
	OverrideDirs []string

	Observer Observer

	side  mrpack.Side
	files []mrpack.File
}

// New builds a Syncer for the given side. The environment filter is
// applied here, exactly once.
func New(root billy.Filesystem, index *mrpack.Index, overrides map[string][]byte, side mrpack.Side) *Syncer {
	return &Syncer{
		Root:         root,
		Fetcher:      &Fetcher{Client: &http.Client{}},
		Overrides:    overrides,
		ManagedDirs:  []string{"mods"},
		OverrideDirs: []string{"config"},
		side:         side,
		files:        Applicable(index.Files, side),
	}
}

// Sync runs the full reconciliation: declared files first, then
// overrides, then an optional prune pass. Declared entries are
// independent; within one entry validate, delete and fetch are a
// strict sequence.
func (s *Syncer) Sync() error {
	var failed []error
	for _, f := range s.files {
		err := s.syncFile(f)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrAllDownloadsFailed) {
			// Filesystem trouble, not mirror trouble.
			return err
		}
		if s.Lenient && f.Env.For(s.side) == mrpack.Optional {
			log.WithField("path", f.Path).Warn("Skipping optional file, all downloads failed.")
			s.observeDone(f.Path, ActionSkipped)
			continue
		}
		if !s.KeepGoing {
			return err
		}
		log.WithError(err).WithField("path", f.Path).Error("File failed, continuing.")
		failed = append(failed, err)
	}

	if err := s.writeOverrides(); err != nil {
		return err
	}
	if len(failed) > 0 {
		// Skip pruning on a partial sync; report what broke.
		return errors.Join(failed...)
	}
	if s.Prune {
		return s.prune()
	}
	return nil
}

func (s *Syncer) syncFile(f mrpack.File) error {
	fpath := f.Path
	s.observeStart(fpath)

	data, err := util.ReadFile(s.Root, fpath)
	switch {
	case err == nil:
		if Valid(data, f.Hashes) {
			s.observeDone(fpath, ActionKept)
			return nil
		}
		log.WithField("path", fpath).Info("Local file does not match, refetching.")
		if err := s.Root.Remove(fpath); err != nil {
			return fmt.Errorf("remove %q: %v: %w", fpath, err, ErrDeleteFailed)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return fmt.Errorf("read %q: %w", fpath, err)
	}

	return s.fetchFile(f)
}

func (s *Syncer) fetchFile(f mrpack.File) error {
	fpath := f.Path
	if dir := path.Dir(fpath); dir != "." {
		if err := s.Root.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("mkdir %q: %w", dir, err)
		}
	}
	for _, rawurl := range f.Downloads {
		s.observeFetch(fpath, rawurl)
		err := s.Fetcher.Fetch(s.Root, rawurl, fpath)
		if err == nil {
			s.observeDone(fpath, ActionFetched)
			return nil
		}
		log.WithError(err).WithField("path", fpath).Warn("Mirror failed, trying next.")
	}
	return fmt.Errorf("fetch %q: %w", fpath, ErrAllDownloadsFailed)
}

func (s *Syncer) writeOverrides() error {
	for fpath, data := range s.Overrides {
		if dir := path.Dir(fpath); dir != "." {
			if err := s.Root.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("mkdir %q: %w", dir, err)
			}
		}
		if err := util.WriteFile(s.Root, fpath, data, 0644); err != nil {
			return fmt.Errorf("write override %q: %w", fpath, err)
		}
	}
	return nil
}
