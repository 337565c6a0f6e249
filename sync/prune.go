package sync

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/go-git/go-billy/v5/util"
	log "github.com/sirupsen/logrus"
)

// prune removes files under the managed and override directory roots
// that are neither declared nor overridden. Membership is a path test,
// not a content test, so a declared file under an override root is
// still safe. Empty directories are left in place. Delete failures are
// collected so the pass still visits everything.
func (s *Syncer) prune() error {
	keep := make(map[string]struct{}, len(s.files)+len(s.Overrides))
	for _, f := range s.files {
		keep[path.Clean(f.Path)] = struct{}{}
	}
	for fpath := range s.Overrides {
		keep[path.Clean(fpath)] = struct{}{}
	}

	var errs []error
	errs = append(errs, s.pruneDirs(s.ManagedDirs, keep)...)
	errs = append(errs, s.pruneDirs(s.OverrideDirs, keep)...)
	return errors.Join(errs...)
}

func (s *Syncer) pruneDirs(dirs []string, keep map[string]struct{}) []error {
	var errs []error
	for _, dir := range dirs {
		if _, err := s.Root.Stat(dir); errors.Is(err, os.ErrNotExist) {
			continue
		}
		err := util.Walk(s.Root, dir, func(fpath string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return nil
			}
			if _, ok := keep[path.Clean(fpath)]; ok {
				return nil
			}
			log.WithField("path", fpath).Info("Pruning untracked file.")
			if err := s.Root.Remove(fpath); err != nil {
				errs = append(errs, fmt.Errorf("prune %q: %v: %w", fpath, err, ErrDeleteFailed))
				return nil
			}
			s.observeDone(fpath, ActionPruned)
			return nil
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("walk %q: %w", dir, err))
		}
	}
	return errs
}
