// Package gitea is a small REST client for the Gitea API (v1).
//
// It covers the endpoints needed for a backup run: the instance version, the
// authenticated user, the repository search and the issue and comment lists of
// a repository. Every non-200 response and every network failure is reported as
// [ErrTransport], except 403 which is [ErrForbidden] and aborts the run.
package gitea
