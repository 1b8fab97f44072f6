package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/inovacc/giteabak/internal/application"
	"github.com/inovacc/giteabak/internal/cli"
	"github.com/inovacc/giteabak/internal/git"
	"github.com/inovacc/giteabak/internal/gitea"
	"github.com/inovacc/giteabak/internal/model"
)

const installGitMessage = "\nYou need to install git https://git-scm.com/downloads"

// Forge is the part of the forge API a backup needs
type Forge interface {
	Version(ctx context.Context) (string, error)
	Repos(ctx context.Context) ([]model.Repository, error)
	Issues(ctx context.Context, repo model.Repository) ([]model.Issue, error)
}

// Cloner clones repositories
type Cloner interface {
	LookGit() (string, error)
	Clone(ctx context.Context, cloneURL, targetPath string) error
}

// Asker asks the user a yes/no question
type Asker interface {
	Ask(question string) bool
}

// Options configures a backup run
type Options struct {
	Folder    string // Destination folder for clones and issues
	List      bool   // Only list repositories
	NoIssues  bool   // Skip issues
	AlwaysAsk bool   // Confirm every repository
	Verbose   bool

	Stdout io.Writer
	Stdin  io.Reader
	Logger *slog.Logger
}

// Backup runs one backup of a forge
type Backup struct {
	Config *model.Config
	Forge  Forge
	Cloner Cloner
	Asker  Asker

	opts   Options
	out    io.Writer
	logger *slog.Logger
}

// NewBackup creates a backup wired to the real forge client, git and terminal
func NewBackup(cfg *model.Config, opts Options) *Backup {
	b := newBackup(cfg, opts)

	b.Forge = gitea.NewClient(cfg, gitea.WithLogger(b.logger))
	b.Cloner = git.NewClient()
	b.Asker = cli.NewPrompter(opts.Stdin, b.out)

	return b
}

func newBackup(cfg *model.Config, opts Options) *Backup {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}

	if opts.Folder == "" {
		opts.Folder = application.DefaultFolder
	}

	return &Backup{
		Config: cfg,
		opts:   opts,
		out:    out,
		logger: logger,
	}
}

// Run executes the backup
func (b *Backup) Run(ctx context.Context) error {
	if b.opts.Verbose {
		b.Config.Print(b.out)

		version, err := b.version(ctx)
		if err != nil {
			return err
		}

		b.printf("detected gitea version %s\n", version)
	}

	repos, err := b.Forge.Repos(ctx)
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}

	repos = b.filterExceptions(repos)

	slices.SortFunc(repos, func(a, c model.Repository) int {
		return strings.Compare(a.Name, c.Name)
	})

	if b.opts.List {
		b.list(repos)
		return nil
	}

	if err := b.createFolder(b.opts.Folder); err != nil {
		return err
	}

	if b.opts.Verbose {
		b.printf("downloading to %s\n", b.opts.Folder)
	}

	if _, err := b.Cloner.LookGit(); err != nil {
		return application.Fatal(err, installGitMessage)
	}

	b.logger.Info("starting backup",
		slog.String("folder", b.opts.Folder),
		slog.Int("repos", len(repos)),
	)

	var cloned, failed int

	count := func(ok bool) {
		if ok {
			cloned++
		} else {
			failed++
		}
	}

	defer func() {
		b.logger.Info("backup finished",
			slog.Int("cloned", cloned),
			slog.Int("failed", failed),
		)
	}()

	for _, repo := range repos {
		if err := ctx.Err(); err != nil {
			return err
		}

		if b.opts.AlwaysAsk {
			// A confirmed clone does not process issues in the same pass.
			if b.Asker.Ask("download " + repo.Name) {
				count(b.clone(ctx, repo))
			}

			continue
		}

		count(b.clone(ctx, repo))

		if b.opts.NoIssues {
			continue
		}

		if err := b.workOnIssues(ctx, repo); err != nil {
			return err
		}
	}

	return nil
}

// version returns the forge version, or "unknown" when it cannot be read.
// Fatal errors such as a forbidden response are returned.
func (b *Backup) version(ctx context.Context) (string, error) {
	v, err := b.Forge.Version(ctx)
	if err != nil {
		if application.ExitCode(err) == application.ExitFatal {
			return "", err
		}

		b.logger.Warn("failed to detect gitea version", slog.String("error", err.Error()))

		return "unknown", nil
	}

	return v, nil
}

func (b *Backup) list(repos []model.Repository) {
	b.printf("Repos:\n")

	for _, repo := range repos {
		b.printf("\t- %s\n", repo.Name)
	}
}

func (b *Backup) createFolder(folder string) error {
	if _, err := os.Stat(folder); err == nil {
		return nil
	}

	if b.opts.Verbose {
		b.printf("%s does not exists. Will create it\n", folder)
	}

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", folder, err)
	}

	b.logger.Debug("created folder", slog.String("path", folder))

	return nil
}

func (b *Backup) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(b.out, format, args...)
}
