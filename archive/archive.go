// Package archive reads .mrpack archives: the pack index plus bundled
// override files.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/tie/packsync/mrpack"
)

var ErrNoIndex = errors.New("pack index not found in archive")

// Override prefixes in precedence order: entries read later win, so
// server-overrides shadow plain overrides for the same path.
var overridePrefixes = []string{
	"overrides/",
	"server-overrides/",
}

// Pack is the extracted content of a .mrpack archive.
type Pack struct {
	Index     *mrpack.Index
	Overrides map[string][]byte
}

// Open reads the archive at the given path.
func Open(fpath string) (*Pack, error) {
	z, err := zip.OpenReader(fpath)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", fpath, err)
	}
	defer func() {
		err := z.Close()
		if err != nil {
			log.WithError(err).Warnf("close %q", fpath)
		}
	}()
	return Read(&z.Reader)
}

// Read extracts the pack index and override blobs from an archive.
func Read(z *zip.Reader) (*Pack, error) {
	data, err := readIndex(z)
	if err != nil {
		return nil, err
	}
	index, err := mrpack.ParseIndex(data)
	if err != nil {
		return nil, err
	}
	overrides, err := readOverrides(z)
	if err != nil {
		return nil, err
	}
	return &Pack{
		Index:     index,
		Overrides: overrides,
	}, nil
}

func readIndex(z *zip.Reader) ([]byte, error) {
	for _, f := range z.File {
		if f.Name != mrpack.IndexName {
			continue
		}
		return readAll(f)
	}
	return nil, ErrNoIndex
}

func readOverrides(z *zip.Reader) (map[string][]byte, error) {
	overrides := make(map[string][]byte)
	for _, prefix := range overridePrefixes {
		for _, f := range z.File {
			if !strings.HasPrefix(f.Name, prefix) {
				continue
			}
			rpath := strings.TrimPrefix(f.Name, prefix)
			if rpath == "" || strings.HasSuffix(rpath, "/") {
				continue
			}
			data, err := readAll(f)
			if err != nil {
				return nil, err
			}
			overrides[rpath] = data
		}
	}
	return overrides, nil
}

func readAll(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", f.Name, err)
	}
	defer func() {
		err := r.Close()
		if err != nil {
			log.WithError(err).Warnf("close %q", f.Name)
		}
	}()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", f.Name, err)
	}
	return data, nil
}
