package archive_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tie/packsync/archive"
)

const indexDoc = `{
	"game": "minecraft",
	"formatVersion": 1,
	"versionId": "1.0.0",
	"name": "Test Pack",
	"files": [{
		"path": "mods/hello.jar",
		"hashes": {
			"sha1": "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d",
			"sha512": "9b71d224bd62f3785d96d46ad3ea3d73319bfbc2890caadae2dff72519673ca72323c3d99ba5c11d7c7acc6e14b8c5da0c4663475c2e5c3adef46f73bcdec043"
		},
		"downloads": ["https://example.com/hello"],
		"fileSize": 5
	}],
	"dependencies": {"minecraft": "1.20.1"}
}`

func makeArchive(t *testing.T, entries map[string]string) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	z, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return z
}

func TestRead(t *testing.T) {
	z := makeArchive(t, map[string]string{
		"modrinth.index.json":           indexDoc,
		"overrides/config/a.cfg":        "generic",
		"overrides/config/b.cfg":        "generic only",
		"server-overrides/config/a.cfg": "server",
		"extra/readme.txt":              "not an override",
	})

	p, err := archive.Read(z)
	require.NoError(t, err)

	assert.Equal(t, "Test Pack", p.Index.Name)
	require.Len(t, p.Index.Files, 1)
	assert.Equal(t, "mods/hello.jar", p.Index.Files[0].Path)

	// Server overrides shadow generic ones for the same path.
	assert.Equal(t, map[string][]byte{
		"config/a.cfg": []byte("server"),
		"config/b.cfg": []byte("generic only"),
	}, p.Overrides)
}

func TestReadNoIndex(t *testing.T) {
	z := makeArchive(t, map[string]string{
		"overrides/config/a.cfg": "generic",
	})

	_, err := archive.Read(z)
	assert.ErrorIs(t, err, archive.ErrNoIndex)
}
