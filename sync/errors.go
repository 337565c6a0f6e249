package sync

import "errors"

var (
	// ErrDownloadFailed marks a single failed mirror attempt. It is
	// never returned from Sync directly; exhausting every mirror for
	// an entry escalates to ErrAllDownloadsFailed.
	ErrDownloadFailed = errors.New("download failed")

	ErrAllDownloadsFailed = errors.New("all downloads failed")

	ErrDeleteFailed = errors.New("delete failed")
)
