package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go-hris-admin/internal/domain"
	restclienterrors "go-hris-admin/internal/restclient/errors"
	"go-hris-admin/internal/shared/apperror"
	"go-hris-admin/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StatusError is a non-2xx reply from the backend.
type StatusError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Status, e.Body)
}

// Collection performs CRUD against one REST resource. It keeps no state
// beyond the response of each call.
type Collection[T domain.Record] struct {
	client *Client
	kind   domain.Kind
	logger *zap.Logger
}

func NewCollection[T domain.Record](client *Client, kind domain.Kind) *Collection[T] {
	return &Collection[T]{
		client: client,
		kind:   kind,
		logger: client.logger.With(zap.String("resource", string(kind))),
	}
}

func (c *Collection[T]) Kind() domain.Kind {
	return c.kind
}

// Fetch lists the collection and reports failures. Transport errors and 5xx
// replies are retried up to the client's read retry budget.
func (c *Collection[T]) Fetch(ctx context.Context) ([]T, error) {
	var lastErr error
	for attempt := 0; attempt <= c.client.readRetries; attempt++ {
		if attempt > 0 {
			if err := c.client.wait(ctx); err != nil {
				return nil, apperror.ErrBackendUnavailable.WithCause(err)
			}
		}

		var items []T
		err := c.do(ctx, http.MethodGet, c.client.resourceURL(string(c.kind)), nil, &items)
		if err == nil {
			if items == nil {
				items = []T{}
			}
			return items, nil
		}
		lastErr = err
		if !retryable(err) {
			break
		}
		c.logger.Debug("list attempt failed", zap.Int("attempt", attempt+1), zap.Error(err))
	}
	return nil, lastErr
}

// List never fails: any error is logged and an empty collection is returned
// so callers stay usable against an unreliable backend.
func (c *Collection[T]) List(ctx context.Context) []T {
	items, err := c.Fetch(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, c.logger).Warn("list failed, using empty collection",
			zap.String("resource", string(c.kind)),
			zap.Error(err),
		)
		return []T{}
	}
	return items
}

func (c *Collection[T]) Get(ctx context.Context, id int64) (T, error) {
	var item T
	if id == 0 {
		return item, restclienterrors.ErrMissingID
	}
	err := c.do(ctx, http.MethodGet, c.client.resourceURL(string(c.kind), id), nil, &item)
	return item, err
}

// Create posts item without its id; the backend assigns one.
func (c *Collection[T]) Create(ctx context.Context, item T) (T, error) {
	body, err := encodeWithoutID(item)
	if err != nil {
		var zero T
		return zero, apperror.ErrInvalidInput.WithCause(err)
	}

	var created T
	if err := c.do(ctx, http.MethodPost, c.client.resourceURL(string(c.kind)), body, &created); err != nil {
		return created, err
	}
	return created, nil
}

// Update replaces the record addressed by item's id. A reply without a body
// yields item itself.
func (c *Collection[T]) Update(ctx context.Context, item T) (T, error) {
	if item.Key() == 0 {
		return item, restclienterrors.ErrMissingID
	}

	body, err := json.Marshal(item)
	if err != nil {
		return item, apperror.ErrInvalidInput.WithCause(err)
	}

	saved := item
	if err := c.do(ctx, http.MethodPut, c.client.resourceURL(string(c.kind), item.Key()), body, &saved); err != nil {
		return item, err
	}
	return saved, nil
}

// Delete is idempotent: a missing record is not an error.
func (c *Collection[T]) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return restclienterrors.ErrMissingID
	}
	err := c.do(ctx, http.MethodDelete, c.client.resourceURL(string(c.kind), id), nil, nil)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil
	}
	return err
}

func (c *Collection[T]) do(ctx context.Context, method, url string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return apperror.ErrInternal.WithCause(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set(contextutil.RequestIDHeader, rid)
	}

	resp, err := c.client.httpClient.Do(req)
	if err != nil {
		return apperror.ErrBackendUnavailable.WithCause(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return mapStatusError(&StatusError{
			Method: method,
			URL:    url,
			Status: resp.StatusCode,
			Body:   string(bytes.TrimSpace(raw)),
		})
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.ErrBackendUnavailable.WithCause(fmt.Errorf("read response: %w", err))
	}
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperror.ErrBackendUnavailable.WithCause(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func mapStatusError(err *StatusError) error {
	switch {
	case err.Status == http.StatusNotFound:
		return apperror.ErrNotFound.WithCause(err)
	case err.Status == http.StatusConflict:
		return restclienterrors.ErrConflict.WithCause(err)
	case err.Status >= http.StatusInternalServerError:
		return apperror.ErrBackendUnavailable.WithCause(err)
	default:
		return restclienterrors.ErrRejectedByBackend.WithCause(err)
	}
}

func retryable(err error) bool {
	return errors.Is(err, apperror.ErrBackendUnavailable)
}

func encodeWithoutID(item any) ([]byte, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	delete(fields, "id")
	return json.Marshal(fields)
}
