package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/inovacc/giteabak/internal/model"
)

type fakeForge struct {
	version     string
	versionErr  error
	repos       []model.Repository
	reposErr    error
	issues      map[string][]model.Issue
	issueCalls  []string
	issuesError error
}

func (f *fakeForge) Version(context.Context) (string, error) {
	return f.version, f.versionErr
}

func (f *fakeForge) Repos(context.Context) ([]model.Repository, error) {
	return f.repos, f.reposErr
}

func (f *fakeForge) Issues(_ context.Context, repo model.Repository) ([]model.Issue, error) {
	f.issueCalls = append(f.issueCalls, repo.Name)
	return f.issues[repo.Name], f.issuesError
}

type cloneCall struct {
	URL    string
	Target string
}

type fakeCloner struct {
	missing bool
	fail    map[string]bool
	calls   []cloneCall
	lookups int
}

var errFakeClone = errors.New("exit status 128")

func (c *fakeCloner) LookGit() (string, error) {
	c.lookups++
	if c.missing {
		return "", errors.New("git executable not found")
	}

	return "/usr/bin/git", nil
}

func (c *fakeCloner) Clone(_ context.Context, cloneURL, targetPath string) error {
	c.calls = append(c.calls, cloneCall{URL: cloneURL, Target: targetPath})

	if c.fail[cloneURL] {
		return errFakeClone
	}

	return os.MkdirAll(filepath.Join(targetPath, ".git"), 0o755)
}

type fakeAsker struct {
	answers   map[string]bool
	questions []string
}

func (a *fakeAsker) Ask(question string) bool {
	a.questions = append(a.questions, question)
	return a.answers[question]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
