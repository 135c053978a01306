package msclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/programme-lv/console/entity"
	"github.com/programme-lv/console/pagelist"
	"github.com/programme-lv/console/reconcile"
)

type WorkbookPage struct {
	Workbooks []entity.Workbook
	Total     int
	Offset    int
	Limit     int
}

func (c *Client) ListWorkbooks(ctx context.Context, orgID int, page, limit int) (WorkbookPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if orgID != 0 {
		q.Set("orgId", strconv.Itoa(orgID))
	}
	data, err := c.do(ctx, "GET", "/workbook", q, nil)
	if err != nil {
		return WorkbookPage{}, err
	}
	l := pagelist.Normalize(data, page, limit)
	return WorkbookPage{
		Workbooks: pagelist.Map(l, entity.AdaptWorkbook),
		Total:     l.Total,
		Offset:    l.Offset,
		Limit:     l.Limit,
	}, nil
}

func (c *Client) GetWorkbook(ctx context.Context, id int) (entity.Workbook, error) {
	data, err := c.do(ctx, "GET", fmt.Sprintf("/workbook/%d", id), nil, nil)
	if err != nil {
		return entity.Workbook{}, err
	}
	return entity.AdaptWorkbook(data), nil
}

type WorkbookParams struct {
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Visible     bool   `json:"visible"`
	OrgID       int    `json:"orgId,omitempty"`
}

func (c *Client) CreateWorkbook(ctx context.Context, params WorkbookParams) (entity.Workbook, error) {
	data, err := c.do(ctx, "POST", "/workbook", nil, params)
	if err != nil {
		return entity.Workbook{}, err
	}
	return entity.AdaptWorkbook(data), nil
}

func (c *Client) UpdateWorkbook(ctx context.Context, params WorkbookParams) (entity.Workbook, error) {
	data, err := c.do(ctx, "PUT", fmt.Sprintf("/workbook/%d", params.ID), nil, params)
	if err != nil {
		return entity.Workbook{}, err
	}
	return entity.AdaptWorkbook(data), nil
}

func (c *Client) DeleteWorkbook(ctx context.Context, id int) error {
	if _, err := c.do(ctx, "DELETE", fmt.Sprintf("/workbook/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete workbook %d: %w", id, err)
	}
	return nil
}

// ListWorkbookProblems returns the ordered problems of a workbook. Order
// values are renumbered from list position on the way in, so a backend
// that returns sparse order values never leaks them into the UI.
func (c *Client) ListWorkbookProblems(ctx context.Context, workbookID int) ([]entity.WorkbookProblem, error) {
	data, err := c.do(ctx, "GET", fmt.Sprintf("/workbook/%d/problem", workbookID), nil, nil)
	if err != nil {
		return nil, err
	}
	l := pagelist.Normalize(data, 1, 0)
	return reconcile.Renumber(pagelist.Map(l, entity.AdaptWorkbookProblem)), nil
}

// AddWorkbookProblem appends a problem and returns the full renumbered
// list, so the caller can swap its view in one step.
func (c *Client) AddWorkbookProblem(ctx context.Context, workbookID, problemID int) ([]entity.WorkbookProblem, error) {
	body := map[string]any{"problemId": problemID}
	if _, err := c.do(ctx, "POST", fmt.Sprintf("/workbook/%d/problem", workbookID), nil, body); err != nil {
		return nil, err
	}
	return c.ListWorkbookProblems(ctx, workbookID)
}

func (c *Client) RemoveWorkbookProblem(ctx context.Context, workbookID, joinRowID int) ([]entity.WorkbookProblem, error) {
	path := fmt.Sprintf("/workbook/%d/problem/%d", workbookID, joinRowID)
	if _, err := c.do(ctx, "DELETE", path, nil, nil); err != nil {
		return nil, err
	}
	return c.ListWorkbookProblems(ctx, workbookID)
}
