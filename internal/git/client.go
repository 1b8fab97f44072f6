// Package git runs the git executable for cloning repositories.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGitNotFound is returned when no git executable is on PATH
var ErrGitNotFound = errors.New("git executable not found")

// Client wraps git invocations
type Client struct {
	GitPath string   // Path to git executable
	Env     []string // Extra environment for git, appended to the process environment
}

// NewClient creates a client using the git found on PATH. GitPath is empty
// when git is missing; LookGit reports that case. Clone output is captured, so
// git is told not to prompt for credentials on the terminal.
func NewClient() *Client {
	gitPath, _ := exec.LookPath("git")

	return &Client{
		GitPath: gitPath,
		Env:     []string{"GIT_TERMINAL_PROMPT=0"},
	}
}

// LookGit returns the path of the git executable or ErrGitNotFound
func (c *Client) LookGit() (string, error) {
	if c.GitPath != "" {
		return c.GitPath, nil
	}

	path, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGitNotFound, err)
	}

	c.GitPath = path

	return path, nil
}

// Command creates a git command. Output is not attached.
func (c *Client) Command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.GitPath, args...)

	if len(c.Env) > 0 {
		cmd.Env = append(cmd.Environ(), c.Env...)
	}

	return cmd
}

// Clone runs git clone of cloneURL into targetPath. Output is captured and only
// surfaced through the returned *GitError.
func (c *Client) Clone(ctx context.Context, cloneURL, targetPath string) error {
	if _, err := c.LookGit(); err != nil {
		return err
	}

	args := []string{"clone", cloneURL, targetPath}

	output, err := c.Command(ctx, args...).CombinedOutput()
	if err != nil {
		return NewGitError(args, string(output), err)
	}

	return nil
}

// GitError represents a failed git command
type GitError struct {
	ExitCode int
	Stderr   string
	Args     []string
	err      error
}

func (e *GitError) Error() string {
	if e.Stderr == "" {
		return fmt.Errorf("git %s failed: %w", strings.Join(e.Args, " "), e.err).Error()
	}

	return fmt.Sprintf("git %s failed: %s", strings.Join(e.Args, " "), strings.TrimSpace(e.Stderr))
}

func (e *GitError) Unwrap() error {
	return e.err
}
