package git

import (
	"errors"
	"os/exec"
	"strings"
)

// Common error messages from git clone
const (
	errMsgAuthFailed       = "Authentication failed"
	errMsgPermissionDenied = "Permission denied"
	errMsgAlreadyExists    = "already exists and is not an empty directory"
	errMsgNotFound         = "not found"
	errMsgHostKey          = "Host key verification failed"
)

// IsAuthRequired checks if the error indicates authentication is required
func IsAuthRequired(err error) bool {
	return containsError(err, errMsgAuthFailed) ||
		containsError(err, errMsgPermissionDenied) ||
		containsError(err, errMsgHostKey)
}

// IsAlreadyExists checks if the clone target is already populated
func IsAlreadyExists(err error) bool {
	return containsError(err, errMsgAlreadyExists)
}

// IsNotFound checks if the remote repository does not exist
func IsNotFound(err error) bool {
	return containsError(err, errMsgNotFound)
}

// Reason returns a short classification of a clone error for logging
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case IsAlreadyExists(err):
		return "target exists"
	case IsAuthRequired(err):
		return "authentication failed"
	case IsNotFound(err):
		return "not found"
	default:
		return "git error"
	}
}

// containsError checks if the error contains a specific message
func containsError(err error, msg string) bool {
	if err == nil {
		return false
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return strings.Contains(strings.ToLower(gitErr.Stderr), strings.ToLower(msg))
	}

	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(msg))
}

// GetExitCode returns the exit code from a git error, or -1 if not available
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return gitErr.ExitCode
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}

// NewGitError creates a GitError from command output and error
func NewGitError(args []string, stderr string, err error) *GitError {
	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &GitError{
		ExitCode: exitCode,
		Stderr:   stderr,
		Args:     args,
		err:      err,
	}
}
