// Package ojclient talks to the primary OJ REST API (the /api/... one).
// That backend answers in the legacy envelope ({error,data}) with
// snake_case keys. Every response goes through httpjson.Unwrap and the
// entity adapters; nothing else in the console sees its wire shapes.
package ojclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/programme-lv/console/apierr"
	"github.com/programme-lv/console/entity"
	"github.com/programme-lv/console/httpjson"
	"github.com/programme-lv/console/logger"
	"github.com/programme-lv/console/session"
	"github.com/programme-lv/console/ttlcache"
)

const (
	profileTTL     = 60 * time.Second
	submissionsTTL = 30 * time.Second
)

type Client struct {
	baseURL string
	httpc   *http.Client
	sess    *session.Session

	// problem details are cached by display id without expiry; edits
	// invalidate explicitly
	problemDetails *ttlcache.Cache[string, entity.ProblemDetail]
	profile        *ttlcache.Cache[string, entity.Profile]
	submissions    *ttlcache.Cache[string, []entity.Submission]
}

type Option func(*Client)

// WithHTTPClient swaps the transport; tests hand in the httptest client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

func New(baseURL string, sess *session.Session, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpc:          &http.Client{Timeout: 10 * time.Second},
		sess:           sess,
		problemDetails: ttlcache.New[string, entity.ProblemDetail](0),
		profile:        ttlcache.New[string, entity.Profile](profileTTL),
		submissions:    ttlcache.New[string, []entity.Submission](submissionsTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do runs one request against the backend and returns the unwrapped,
// decoded payload. Transport errors bubble up wrapped and untouched; no
// retries happen here.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	if c.sess != nil && c.sess.Token() != "" {
		if err := c.sess.Authorize(req); err != nil {
			return nil, err
		}
	}

	log := logger.FromContext(ctx)
	log.Debug("oj api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, fmt.Errorf("read response of %s %s: %w", method, path, err)
	}

	data, err := httpjson.Unwrap(respBody)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		// envelope did not flag the failure, fall back to the status
		return nil, apierr.ErrRequestFailed(resp.Status).
			SetHttpStatusCode(resp.StatusCode)
	}
	return data, nil
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	// the backend paginates by offset, the console thinks in pages
	q.Set("offset", strconv.Itoa((page-1)*limit))
	return q
}
