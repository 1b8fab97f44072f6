// Package model defines the data structures used throughout giteabak.
//
// # Repository
//
// The [Repository] struct is a repository hosted on the forge, identified by
// its full name and clone URL:
//
//	type Repository struct {
//	    Name string // Full name, e.g. "org/project"
//	    URL  string // SSH clone URL
//	}
//
// [RepositorySet] deduplicates repositories by name and URL while keeping the
// order in which they were first seen.
//
// # Issue
//
// The [Issue] struct holds one issue with its labels and [Comment] list. Its
// [Issue.Render] method produces the plain text file written to disk.
//
// # Config
//
// The [Config] struct holds the forge URL, repository exceptions and [Auth].
// [DefaultConfig] builds the configuration written on first run.
package model
