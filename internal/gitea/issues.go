package gitea

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/inovacc/giteabak/internal/model"
)

// Issues returns the open and then the closed issues of repo, each with its
// labels and comments. Each state is paged until an empty page or a failed
// request.
func (c *Client) Issues(ctx context.Context, repo model.Repository) ([]model.Issue, error) {
	var issues []model.Issue

	for _, state := range IssueStates {
		for page := 1; ; page++ {
			req, err := c.request(ctx, true)
			if err != nil {
				return nil, err
			}

			req.SetRawPathParam("repo", repo.Name).
				SetQueryParams(map[string]string{
					"page":  strconv.Itoa(page),
					"state": state,
				})

			var body []issueResponse
			if err := c.get(req, issuesURL, &body); err != nil {
				if !errors.Is(err, ErrTransport) {
					return nil, err
				}

				c.logger.Debug("issue listing stopped",
					slog.String("repo", repo.Name),
					slog.String("state", state),
					slog.Int("page", page),
					slog.String("error", err.Error()),
				)

				break
			}

			if len(body) == 0 {
				break
			}

			for _, ir := range body {
				issue := model.NewIssue(ir.User.FullName, ir.Title, ir.Body, ir.State)

				for _, label := range ir.Labels {
					issue.AddLabel(label.Name)
				}

				comments, err := c.Comments(ctx, repo, ir.Number)
				if err != nil {
					return nil, err
				}

				issue.Comments = comments
				issues = append(issues, issue)
			}
		}
	}

	return issues, nil
}

// Comments returns the comments of issue index in repo. A failed request
// yields no comments rather than an error so the issue itself is kept.
func (c *Client) Comments(ctx context.Context, repo model.Repository, index int64) ([]model.Comment, error) {
	req, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}

	req.SetRawPathParams(map[string]string{
		"repo":  repo.Name,
		"index": strconv.FormatInt(index, 10),
	})

	var body []commentResponse
	if err := c.get(req, commentsURL, &body); err != nil {
		if !errors.Is(err, ErrTransport) {
			return nil, err
		}

		c.logger.Warn("failed to fetch comments",
			slog.String("repo", repo.Name),
			slog.Int64("issue", index),
			slog.String("error", err.Error()),
		)

		return []model.Comment{}, nil
	}

	comments := make([]model.Comment, 0, len(body))
	for _, cr := range body {
		comments = append(comments, model.Comment{Author: cr.User.FullName, Body: cr.Body})
	}

	return comments, nil
}
