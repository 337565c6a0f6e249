// Package mrpack models the Modrinth modpack index format.
package mrpack

import (
	version "github.com/hashicorp/go-version"
)

// IndexName is the name of the index document inside a .mrpack archive.
const IndexName = "modrinth.index.json"

// Index is the parsed pack index. It is constructed once by ParseIndex
// and read-only afterwards.
type Index struct {
	Game          string
	FormatVersion int
	VersionID     string
	Name          string
	Summary       string
	Files         []File
	Dependencies  map[DependencyID]*version.Version
}

// File is a single declared file in the pack index.
type File struct {
	// Path is the slash-separated path relative to the sync root.
	// Unique within an index.
	Path string `json:"path"`

	Hashes Hashes `json:"hashes"`

	// Env is nil when the file applies to all sides.
	Env *Environment `json:"env,omitempty"`

	// Downloads are candidate source URLs, tried in order.
	Downloads []string `json:"downloads"`

	// Size is the declared byte length. Informational only.
	Size int64 `json:"fileSize"`
}

// Side is the installation target of a sync run.
type Side string

const (
	SideClient Side = "client"
	SideServer Side = "server"
)

// Requirement describes whether a file is needed on a given side.
type Requirement string

const (
	Required    Requirement = "required"
	Optional    Requirement = "optional"
	Unsupported Requirement = "unsupported"
)

func (r Requirement) valid() bool {
	switch r {
	case Required, Optional, Unsupported:
		return true
	}
	return false
}

// Environment holds per-side requirements for a file.
type Environment struct {
	Client Requirement `json:"client"`
	Server Requirement `json:"server"`
}

// For returns the requirement for the given side. A nil environment
// means the file is required everywhere.
func (e *Environment) For(side Side) Requirement {
	if e == nil {
		return Required
	}
	if side == SideClient {
		return e.Client
	}
	return e.Server
}
