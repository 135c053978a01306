package ojclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/programme-lv/console/entity"
	"github.com/programme-lv/console/pagelist"
)

// ProblemPage is one page of the admin problem table.
type ProblemPage struct {
	Problems []entity.Problem
	Total    int
	Offset   int
	Limit    int
}

// ListProblems fetches one page of problems, optionally filtered by a
// search keyword. Endpoints predating pagination dump the whole
// collection; pagelist slices those client-side.
func (c *Client) ListProblems(ctx context.Context, keyword string, page, limit int) (ProblemPage, error) {
	q := pageQuery(page, limit)
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	data, err := c.do(ctx, "GET", "/admin/problem", q, nil)
	if err != nil {
		return ProblemPage{}, err
	}
	l := pagelist.Normalize(data, page, limit)
	return ProblemPage{
		Problems: pagelist.Map(l, entity.AdaptProblem),
		Total:    l.Total,
		Offset:   l.Offset,
		Limit:    l.Limit,
	}, nil
}

// GetProblem returns the admin edit view of a problem, answering from
// the detail cache unless force is set.
func (c *Client) GetProblem(ctx context.Context, displayID string, force bool) (entity.ProblemDetail, error) {
	return c.problemDetails.GetOrFetch(ctx, displayID, force,
		func(ctx context.Context) (entity.ProblemDetail, error) {
			q := url.Values{}
			q.Set("problem_id", displayID)
			data, err := c.do(ctx, "GET", "/admin/problem", q, nil)
			if err != nil {
				return entity.ProblemDetail{}, err
			}
			return entity.AdaptProblemDetail(data), nil
		})
}

// ProblemParams is the payload of problem create and update calls. The
// backend wants snake_case.
type ProblemParams struct {
	ID            int                    `json:"id,omitempty"`
	DisplayID     string                 `json:"_id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Difficulty    string                 `json:"difficulty"`
	TimeLimitMs   int                    `json:"time_limit"`
	MemoryLimMb   int                    `json:"memory_limit"`
	Tags          []string               `json:"tags"`
	Languages     []string               `json:"languages"`
	Visible       bool                   `json:"visible"`
	Samples       []entity.Sample        `json:"samples"`
	TestCaseID    string                 `json:"test_case_id"`
	TestCaseScore []entity.TestCaseScore `json:"test_case_score"`
	Template      map[string]string      `json:"template"`
	SPJ           bool                   `json:"spj"`
	Hint          string                 `json:"hint"`
	Source        string                 `json:"source"`
}

func (c *Client) CreateProblem(ctx context.Context, params ProblemParams) (entity.ProblemDetail, error) {
	data, err := c.do(ctx, "POST", "/admin/problem", nil, params)
	if err != nil {
		return entity.ProblemDetail{}, err
	}
	detail := entity.AdaptProblemDetail(data)
	c.problemDetails.Put(detail.DisplayID, detail)
	return detail, nil
}

func (c *Client) UpdateProblem(ctx context.Context, params ProblemParams) (entity.ProblemDetail, error) {
	data, err := c.do(ctx, "PUT", "/admin/problem", nil, params)
	if err != nil {
		return entity.ProblemDetail{}, err
	}
	detail := entity.AdaptProblemDetail(data)
	// the edit may have changed the display id, drop the old entry too
	c.problemDetails.Invalidate(params.DisplayID)
	c.problemDetails.Put(detail.DisplayID, detail)
	return detail, nil
}

func (c *Client) DeleteProblem(ctx context.Context, id int, displayID string) error {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))
	if _, err := c.do(ctx, "DELETE", "/admin/problem", q, nil); err != nil {
		return fmt.Errorf("delete problem %d: %w", id, err)
	}
	c.problemDetails.Invalidate(displayID)
	return nil
}
