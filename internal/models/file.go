// Package models defines the domain types for seqren.
package models

import "time"

// EntryKind is the type of a directory child as seen by Lstat.
type EntryKind string

const (
	KindRegular EntryKind = "regular"
	KindDir     EntryKind = "dir"
	KindSymlink EntryKind = "symlink"
	KindOther   EntryKind = "other"
)

// Entry is a direct child of the target directory.
type Entry struct {
	Name string    `json:"name"`
	Kind EntryKind `json:"kind"`
	// TargetRegular is set for symlinks whose target is a regular file.
	TargetRegular bool      `json:"target_regular,omitempty"`
	Size          int64     `json:"size"`
	ModTime       time.Time `json:"mod_time"`
}

// Move is one file's path through a batch.
type Move struct {
	Position      int    `json:"position"`
	Original      string `json:"original"`
	Temporary     string `json:"temporary"`
	Final         string `json:"final"`
	Disambiguated bool   `json:"disambiguated,omitempty"`
}

// Result is what a rename (or plan) run returns.
type Result struct {
	ID        string   `json:"id"`
	Directory string   `json:"directory"`
	DryRun    bool     `json:"dry_run,omitempty"`
	Renamed   int      `json:"renamed"`
	Moves     []Move   `json:"moves"`
	Foreign   []string `json:"foreign,omitempty"`
	Verified  bool     `json:"verified,omitempty"`
}
