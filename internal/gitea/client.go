package gitea

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/inovacc/giteabak/internal/application"
	"github.com/inovacc/giteabak/internal/model"
)

const (
	apiURL      = "/api/v1"
	versionURL  = apiURL + "/version"
	userURL     = apiURL + "/user"
	reposURL    = apiURL + "/repos/search"
	issuesURL   = apiURL + "/repos/{repo}/issues"
	commentsURL = apiURL + "/repos/{repo}/issues/{index}/comments"

	// PageSize is the number of repositories requested per search page
	PageSize = 50

	defaultTimeout = 30 * time.Second
)

// IssueStates are fetched in this order
var IssueStates = []string{"open", "closed"}

// Client talks to a single Gitea instance
type Client struct {
	http   *resty.Client
	auth   model.Auth
	logger *slog.Logger
}

// Option configures a Client
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

// NewClient creates a client for the instance and credentials in cfg
func NewClient(cfg *model.Config, opts ...Option) *Client {
	o := clientOptions{
		timeout: defaultTimeout,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	var rc *resty.Client
	if o.httpClient != nil {
		rc = resty.NewWithClient(o.httpClient)
	} else {
		rc = resty.New()
	}

	rc.SetBaseURL(strings.TrimSuffix(cfg.URL, "/")).
		SetTimeout(o.timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", application.AppName+"/"+application.Version).
		SetLogger(restyLogger{o.logger})

	return &Client{
		http:   rc,
		auth:   cfg.Auth,
		logger: o.logger,
	}
}

// request builds a GET request, attaching credentials when authenticated is set
func (c *Client) request(ctx context.Context, authenticated bool) (*resty.Request, error) {
	req := c.http.R().SetContext(ctx)

	if !authenticated {
		return req, nil
	}

	switch c.auth.Mode {
	case model.AuthModePassword:
		req.SetBasicAuth(c.auth.User, c.auth.Password)
	case model.AuthModeToken:
		req.SetAuthScheme("token").SetAuthToken(c.auth.Token)
	default:
		return nil, application.Fatal(ErrNoAuthMode, noAuthMessage)
	}

	return req, nil
}

// get performs the request and decodes a 200 response into out
func (c *Client) get(req *resty.Request, path string, out any) error {
	resp, err := req.Get(path)
	if err != nil {
		return &RequestError{Path: path, Err: err}
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusForbidden:
		return application.Fatal(ErrForbidden, forbiddenMessage)
	default:
		return &RequestError{Path: path, StatusCode: resp.StatusCode()}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &RequestError{Path: path, StatusCode: resp.StatusCode(), Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}

// Version returns the version of the Gitea instance. The request is unauthenticated.
func (c *Client) Version(ctx context.Context) (string, error) {
	req, err := c.request(ctx, false)
	if err != nil {
		return "", err
	}

	var body versionResponse
	if err := c.get(req, versionURL, &body); err != nil {
		return "", err
	}

	return body.Version, nil
}

// UserID returns the id of the configured user
func (c *Client) UserID(ctx context.Context) (int64, error) {
	req, err := c.request(ctx, true)
	if err != nil {
		return 0, err
	}

	var body userResponse
	if err := c.get(req, userURL, &body); err != nil {
		return 0, err
	}

	return body.ID, nil
}
