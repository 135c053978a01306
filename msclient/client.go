// Package msclient talks to the secondary microservice backend serving
// /workbook, /organization, /user, /monitor and /auth. Its endpoints are
// not consistent with each other: some answer bare arrays, some
// {items,total}, some {data:{...}}, with mixed key casing. pagelist and
// the entity adapters absorb all of it here, at one boundary.
package msclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/programme-lv/console/apierr"
	"github.com/programme-lv/console/httpjson"
	"github.com/programme-lv/console/logger"
	"github.com/programme-lv/console/session"
)

type Client struct {
	baseURL string
	httpc   *http.Client
	sess    *session.Session
}

type Option func(*Client)

func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

func New(baseURL string, sess *session.Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
		sess:    sess,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

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

	logger.FromContext(ctx).Debug("microservice request",
		"method", method, "path", path, "request_id", requestID)

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
		return nil, apierr.ErrRequestFailed(resp.Status).
			SetHttpStatusCode(resp.StatusCode)
	}
	return data, nil
}
