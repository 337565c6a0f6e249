package sync

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-git/go-billy/v5"
	log "github.com/sirupsen/logrus"
)

// Fetcher retrieves a single URL into a file. It does no retries of
// its own; fallback across mirrors belongs to the Syncer.
type Fetcher struct {
	Client *http.Client
}

// Fetch downloads rawurl to fpath, creating or truncating the file.
// Partial output is removed on failure. Parent directories must
// already exist.
func (dl *Fetcher) Fetch(files billy.Basic, rawurl, fpath string) error {
	resp, err := dl.Client.Get(rawurl)
	if err != nil {
		return fmt.Errorf("get %q: %v: %w", rawurl, err, ErrDownloadFailed)
	}
	defer func() {
		err := resp.Body.Close()
		if err != nil {
			log.WithError(err).Warnf("close %q", rawurl)
		}
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("get %q: %s: %w", rawurl, resp.Status, ErrDownloadFailed)
	}

	f, err := files.Create(fpath)
	if err != nil {
		return fmt.Errorf("create %q: %w", fpath, err)
	}
	_, err = io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if rerr := files.Remove(fpath); rerr != nil {
			log.WithError(rerr).Warnf("discard partial %q", fpath)
		}
		return fmt.Errorf("write %q: %v: %w", fpath, err, ErrDownloadFailed)
	}
	return nil
}
