package restclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	restclienterrors "go-hris-admin/internal/restclient/errors"

	"go.uber.org/zap"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultRetryDelay  = 300 * time.Millisecond
	defaultReadRetries = 2
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	// ReadRetries is the number of extra attempts for list reads. Zero selects
	// the default, a negative value disables retries.
	ReadRetries int
	RetryDelay  time.Duration
	HTTPClient  *http.Client
}

// Client is shared by every Collection talking to the same backend.
type Client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	readRetries int
	retryDelay  time.Duration
	logger      *zap.Logger
}

func NewClient(cfg Config, logger ...*zap.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, restclienterrors.ErrInvalidBaseURL.WithCause(fmt.Errorf("parse %q: %v", cfg.BaseURL, err))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	retries := cfg.ReadRetries
	switch {
	case retries < 0:
		retries = 0
	case retries == 0:
		retries = defaultReadRetries
	}

	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	l := zap.L().Named("restclient")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("restclient")
	}

	return &Client{
		baseURL:     base,
		httpClient:  httpClient,
		readRetries: retries,
		retryDelay:  delay,
		logger:      l,
	}, nil
}

func (c *Client) resourceURL(path string, id ...int64) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.Trim(path, "/")
	if len(id) > 0 {
		u.Path += fmt.Sprintf("/%d", id[0])
	}
	return u.String()
}

// wait sleeps for the retry delay unless ctx ends first.
func (c *Client) wait(ctx context.Context) error {
	t := time.NewTimer(c.retryDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
