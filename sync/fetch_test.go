package sync_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/tie/packsync/sync"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	files := memfs.New()
	dl := sync.Fetcher{Client: srv.Client()}

	require.NoError(t, dl.Fetch(files, srv.URL+"/hello", "hello.jar"))

	data, err := util.ReadFile(files, "hello.jar")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	files := memfs.New()
	dl := sync.Fetcher{Client: srv.Client()}

	err := dl.Fetch(files, srv.URL+"/missing", "missing.jar")
	assert.ErrorIs(t, err, sync.ErrDownloadFailed)

	_, err = files.Stat("missing.jar")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	rawurl := srv.URL + "/gone"
	srv.Close()

	files := memfs.New()
	dl := sync.Fetcher{Client: &http.Client{}}

	err := dl.Fetch(files, rawurl, "gone.jar")
	assert.ErrorIs(t, err, sync.ErrDownloadFailed)

	_, err = files.Stat("gone.jar")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
