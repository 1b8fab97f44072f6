// Package core runs a backup of a Gitea instance.
//
// A run resolves the repositories of the configured user, drops the configured
// exceptions and then either lists the remaining repositories or clones each
// one into the backup folder and writes its issues next to it:
//
//	<folder>/<owner>/<repo>/                         git clone
//	<folder>/issues/<owner>/<repo>/<state>/<title>   one file per issue
//
// # Design Principles
//
//   - Functions return errors instead of exiting; the cmd package maps them to exit codes
//   - The forge, git and the terminal prompt are interfaces so runs can be tested offline
//   - Clone failures are reported and the run continues with the next repository
package core
