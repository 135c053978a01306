package ojclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/wailsapp/mimetype"

	"github.com/programme-lv/console/apierr"
	"github.com/programme-lv/console/entity"
	"github.com/programme-lv/console/httpjson"
)

// UploadTestCases sends a test-case archive for a problem. The archive
// must actually be a zip (sniffed, not trusted from the filename); the
// body travels zstd-compressed since test data compresses well. Returns
// the backend-assigned test case id and the per-file score rows the
// editor shows.
func (c *Client) UploadTestCases(ctx context.Context, problemID int, archive []byte, spj bool) (string, []entity.TestCaseScore, error) {
	kind := mimetype.Detect(archive)
	if !kind.Is("application/zip") {
		return "", nil, apierr.ErrRequestFailed(
			fmt.Sprintf("testu arhīvam jābūt zip failam, saņemts %s", kind.String()))
	}

	var compressed bytes.Buffer
	enc, err := zstd.NewWriter(&compressed)
	if err != nil {
		return "", nil, fmt.Errorf("init zstd writer: %w", err)
	}
	if _, err := enc.Write(archive); err != nil {
		enc.Close()
		return "", nil, fmt.Errorf("compress archive: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", nil, fmt.Errorf("compress archive: %w", err)
	}

	fullURL := c.baseURL + "/admin/test_case"
	req, err := http.NewRequestWithContext(ctx, "POST", fullURL, &compressed)
	if err != nil {
		return "", nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/zip")
	req.Header.Set("Content-Encoding", "zstd")
	req.Header.Set("X-Request-Id", uuid.NewString())
	q := req.URL.Query()
	q.Set("problem_id", strconv.Itoa(problemID))
	q.Set("spj", strconv.FormatBool(spj))
	req.URL.RawQuery = q.Encode()
	if c.sess != nil && c.sess.Token() != "" {
		if err := c.sess.Authorize(req); err != nil {
			return "", nil, err
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("upload test cases: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", nil, fmt.Errorf("read upload response: %w", err)
	}
	data, err := httpjson.Unwrap(respBody)
	if err != nil {
		return "", nil, err
	}

	detail := entity.AdaptProblemDetail(data)
	return detail.TestCaseID, detail.TestCaseScore, nil
}
