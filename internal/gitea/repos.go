package gitea

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/inovacc/giteabak/internal/model"
)

// Repos returns every repository the configured user owns or has access to.
// Pages are requested until one comes back empty; a failed page ends the
// listing and the repositories collected so far are returned.
func (c *Client) Repos(ctx context.Context) ([]model.Repository, error) {
	uid, err := c.UserID(ctx)
	if err != nil {
		return nil, err
	}

	repos := model.NewRepositorySet()

	for page := 1; ; page++ {
		req, err := c.request(ctx, true)
		if err != nil {
			return nil, err
		}

		req.SetQueryParams(map[string]string{
			"uid":   strconv.FormatInt(uid, 10),
			"page":  strconv.Itoa(page),
			"limit": strconv.Itoa(PageSize),
		})

		var body repoSearchResponse
		if err := c.get(req, reposURL, &body); err != nil {
			if !errors.Is(err, ErrTransport) {
				return nil, err
			}

			c.logger.Debug("repository listing stopped",
				slog.Int("page", page),
				slog.String("error", err.Error()),
			)

			break
		}

		if len(body.Data) == 0 {
			break
		}

		for _, r := range body.Data {
			repos.Add(model.Repository{Name: r.FullName, URL: r.SSHURL})
		}
	}

	c.logger.Debug("listed repositories",
		slog.Int64("uid", uid),
		slog.Int("count", repos.Len()),
	)

	return repos.Items(), nil
}
