package sync_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tie/packsync/mrpack"
	"github.com/tie/packsync/sync"
)

func TestApplicable(t *testing.T) {
	files := []mrpack.File{
		{Path: "mods/everywhere.jar"},
		{Path: "mods/client-only.jar", Env: &mrpack.Environment{
			Client: mrpack.Required,
			Server: mrpack.Unsupported,
		}},
		{Path: "mods/server-optional.jar", Env: &mrpack.Environment{
			Client: mrpack.Unsupported,
			Server: mrpack.Optional,
		}},
	}

	var paths []string
	for _, f := range sync.Applicable(files, mrpack.SideServer) {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"mods/everywhere.jar", "mods/server-optional.jar"}, paths)

	paths = nil
	for _, f := range sync.Applicable(files, mrpack.SideClient) {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"mods/everywhere.jar", "mods/client-only.jar"}, paths)
}
