package core

import (
	"log/slog"

	"github.com/inovacc/giteabak/internal/model"
)

// FilterExceptions returns repos without every repository whose name exactly
// matches one of exceptions. The input slice is not modified.
func FilterExceptions(repos []model.Repository, exceptions []string, logger *slog.Logger) []model.Repository {
	if logger == nil {
		logger = slog.Default()
	}

	excluded := make(map[string]struct{}, len(exceptions))
	for _, e := range exceptions {
		excluded[e] = struct{}{}
	}

	kept := make([]model.Repository, 0, len(repos))

	for _, repo := range repos {
		if _, ok := excluded[repo.Name]; ok {
			logger.Debug("removing repository", slog.String("repo", repo.Name))
			continue
		}

		kept = append(kept, repo)
	}

	return kept
}

func (b *Backup) filterExceptions(repos []model.Repository) []model.Repository {
	if b.opts.Verbose {
		for _, exception := range b.Config.Exceptions {
			for _, repo := range repos {
				if repo.IsName(exception) {
					b.printf("removing %s due to %s\n", repo, exception)
				}
			}
		}
	}

	return FilterExceptions(repos, b.Config.Exceptions, b.logger)
}
