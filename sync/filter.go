package sync

import "github.com/tie/packsync/mrpack"

// Applicable returns the declared files that are supported on the
// given side. Excluded entries are invisible to the whole run: they
// are neither validated, fetched, nor counted during pruning.
func Applicable(files []mrpack.File, side mrpack.Side) []mrpack.File {
	out := make([]mrpack.File, 0, len(files))
	for _, f := range files {
		if f.Env.For(side) == mrpack.Unsupported {
			continue
		}
		out = append(out, f)
	}
	return out
}
