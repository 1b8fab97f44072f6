package core

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/inovacc/giteabak/internal/cli"
	"github.com/inovacc/giteabak/internal/common"
	"github.com/inovacc/giteabak/internal/git"
	"github.com/inovacc/giteabak/internal/model"
)

// ClonePath returns the directory repo is cloned into
func ClonePath(folder string, repo model.Repository) string {
	return filepath.Join(folder, repo.Name)
}

// clone clones repo and prints a status glyph. Failures are reported, not returned.
func (b *Backup) clone(ctx context.Context, repo model.Repository) bool {
	b.printf("working on %s ", cli.Name(repo.Name))

	target := ClonePath(b.opts.Folder, repo)

	if !within(b.opts.Folder, target) || target == filepath.Clean(b.opts.Folder) {
		b.printf("%s\n", cli.Failure())
		b.logger.Warn("skipping repository outside the backup folder",
			slog.String("repo", repo.Name),
			slog.String("path", target),
		)

		return false
	}

	if err := b.Cloner.Clone(ctx, repo.URL, target); err != nil {
		b.printf("%s\n", cli.Failure())

		b.logger.Debug("clone failed",
			slog.String("repo", repo.Name),
			slog.String("url", common.SanitizeURL(repo.URL)),
			slog.String("reason", git.Reason(err)),
			slog.Int("exit_code", git.GetExitCode(err)),
			slog.String("error", err.Error()),
		)

		return false
	}

	b.printf("%s\n", cli.Success())

	return true
}
