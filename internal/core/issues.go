package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/inovacc/giteabak/internal/model"
)

// IssuesDir is the folder below the backup folder that holds issue files
const IssuesDir = "issues"

// ErrInvalidTitle is returned for issue titles that cannot be used as a file name
var ErrInvalidTitle = errors.New("issue title is not a valid file name")

// ErrOutsideFolder is returned when a repository name resolves outside the backup folder
var ErrOutsideFolder = errors.New("issue folder is outside the backup folder")

// IssuePath returns the file an issue of repo is written to
func IssuePath(folder string, repo model.Repository, issue model.Issue) string {
	return filepath.Join(folder, IssuesDir, repo.Name, issue.State.String(), issue.Title)
}

func (b *Backup) workOnIssues(ctx context.Context, repo model.Repository) error {
	if b.opts.Verbose {
		b.printf("saving issues to file\n")
	}

	issues, err := b.Forge.Issues(ctx, repo)
	if err != nil {
		return fmt.Errorf("failed to fetch issues for %s: %w", repo.Name, err)
	}

	if b.opts.AlwaysAsk && !b.Asker.Ask("save issues for "+repo.Name) {
		return nil
	}

	var verbose io.Writer
	if b.opts.Verbose {
		verbose = b.out
	}

	if err := SaveIssues(b.opts.Folder, repo, issues, verbose, b.logger); err != nil {
		b.logger.Warn("some issues were not saved",
			slog.String("repo", repo.Name),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// SaveIssues writes every issue of repo to its own file below folder. Issues
// sharing a title and state overwrite each other. A file that cannot be written
// is logged and skipped; the joined errors are returned. When verbose is not nil,
// every state folder that has to be created is announced on it.
func SaveIssues(folder string, repo model.Repository, issues []model.Issue, verbose io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	var errs []error

	for _, issue := range issues {
		path := IssuePath(folder, repo, issue)
		stateDir := filepath.Join(folder, IssuesDir, repo.Name, issue.State.String())

		if err := checkPath(folder, stateDir, path, issue.Title); err != nil {
			logger.Warn("skipping issue",
				slog.String("repo", repo.Name),
				slog.String("issue", issue.Title),
				slog.String("error", err.Error()),
			)

			errs = append(errs, err)

			continue
		}

		if _, err := os.Stat(stateDir); err != nil && verbose != nil {
			_, _ = fmt.Fprintf(verbose, "%s does not exists. Will create it\n", stateDir)
		}

		if err := os.MkdirAll(stateDir, 0o755); err != nil {
			errs = append(errs, fmt.Errorf("failed to create %s: %w", stateDir, err))
			continue
		}

		if err := os.WriteFile(path, []byte(issue.Render()), 0o644); err != nil {
			logger.Warn("failed to save issue",
				slog.String("repo", repo.Name),
				slog.String("issue", issue.Title),
				slog.String("error", err.Error()),
			)

			errs = append(errs, fmt.Errorf("failed to write %s: %w", path, err))

			continue
		}

		logger.Debug("saved issue",
			slog.String("repo", repo.Name),
			slog.String("state", issue.State.String()),
			slog.String("path", path),
		)
	}

	return errors.Join(errs...)
}

// checkPath rejects titles that would not name a file directly inside stateDir,
// and state folders that resolve outside the backup folder.
func checkPath(folder, stateDir, path, title string) error {
	if title == "" || title == "." || title == ".." || strings.ContainsAny(title, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidTitle, title)
	}

	if rel, err := filepath.Rel(stateDir, path); err != nil || rel != title {
		return fmt.Errorf("%w: %q", ErrInvalidTitle, title)
	}

	if !within(folder, stateDir) {
		return fmt.Errorf("%w: %s", ErrOutsideFolder, stateDir)
	}

	return nil
}

// within reports whether path is folder or lies below it
func within(folder, path string) bool {
	rel, err := filepath.Rel(folder, path)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
