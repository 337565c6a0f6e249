package main

import "github.com/tie/packsync/mrpack"

// Config is the profile configuration file schema.
type Config struct {
	Profiles []Profile `hcl:"profile,block"`
}

// Profile is a named set of sync options.
type Profile struct {
	Name         string   `hcl:"name,label"`
	Pack         string   `hcl:"pack,optional"`
	Dir          string   `hcl:"dir,optional"`
	Side         string   `hcl:"side,optional"`
	Prune        bool     `hcl:"prune,optional"`
	KeepGoing    bool     `hcl:"keep_going,optional"`
	Lenient      bool     `hcl:"lenient,optional"`
	Managed      []string `hcl:"managed,optional"`
	OverrideDirs []string `hcl:"override_dirs,optional"`
}

func (c *Config) Lookup(name string) (Profile, bool) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// fill replaces unset options with defaults.
func (p Profile) fill() Profile {
	if p.Pack == "" {
		p.Pack = defaultPack
	}
	if p.Dir == "" {
		p.Dir = "."
	}
	if p.Side == "" {
		p.Side = string(mrpack.SideServer)
	}
	if p.Managed == nil {
		p.Managed = []string{"mods"}
	}
	if p.OverrideDirs == nil {
		p.OverrideDirs = []string{"config"}
	}
	return p
}

func parseSide(s string) (mrpack.Side, bool) {
	switch side := mrpack.Side(s); side {
	case mrpack.SideClient, mrpack.SideServer:
		return side, true
	}
	return "", false
}
