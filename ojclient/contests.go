package ojclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/programme-lv/console/entity"
	"github.com/programme-lv/console/pagelist"
)

type ContestPage struct {
	Contests []entity.Contest
	Total    int
	Offset   int
	Limit    int
}

func (c *Client) ListContests(ctx context.Context, keyword string, page, limit int) (ContestPage, error) {
	q := pageQuery(page, limit)
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	data, err := c.do(ctx, "GET", "/admin/contest", q, nil)
	if err != nil {
		return ContestPage{}, err
	}
	l := pagelist.Normalize(data, page, limit)
	return ContestPage{
		Contests: pagelist.Map(l, entity.AdaptContest),
		Total:    l.Total,
		Offset:   l.Offset,
		Limit:    l.Limit,
	}, nil
}

func (c *Client) GetContest(ctx context.Context, id int) (entity.Contest, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))
	data, err := c.do(ctx, "GET", "/admin/contest", q, nil)
	if err != nil {
		return entity.Contest{}, err
	}
	return entity.AdaptContest(data), nil
}

// ContestParams is the payload of contest create and update calls.
type ContestParams struct {
	ID              int      `json:"id,omitempty"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	RuleType        string   `json:"rule_type"`
	Visible         bool     `json:"visible"`
	RealTimeRank    bool     `json:"real_time_rank"`
	AllowedIPRanges []string `json:"allowed_ip_ranges"`
	Password        *string  `json:"password"`
	ProblemIDs      []int    `json:"problem_ids"`
}

func (c *Client) CreateContest(ctx context.Context, params ContestParams) (entity.Contest, error) {
	data, err := c.do(ctx, "POST", "/admin/contest", nil, params)
	if err != nil {
		return entity.Contest{}, err
	}
	return entity.AdaptContest(data), nil
}

func (c *Client) UpdateContest(ctx context.Context, params ContestParams) (entity.Contest, error) {
	data, err := c.do(ctx, "PUT", "/admin/contest", nil, params)
	if err != nil {
		return entity.Contest{}, err
	}
	return entity.AdaptContest(data), nil
}
