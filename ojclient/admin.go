package ojclient

import (
	"context"
	"fmt"

	"github.com/programme-lv/console/entity"
	"github.com/programme-lv/console/pagelist"
)

type UserPage struct {
	Users []entity.User
	Total int
}

func (c *Client) ListUsers(ctx context.Context, keyword string, page, limit int) (UserPage, error) {
	q := pageQuery(page, limit)
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	data, err := c.do(ctx, "GET", "/admin/user", q, nil)
	if err != nil {
		return UserPage{}, err
	}
	l := pagelist.Normalize(data, page, limit)
	return UserPage{
		Users: pagelist.Map(l, entity.AdaptUser),
		Total: l.Total,
	}, nil
}

// ListJudgeServers returns the judge fleet, never paginated: the fleet
// is a handful of rows.
func (c *Client) ListJudgeServers(ctx context.Context) ([]entity.JudgeServer, error) {
	data, err := c.do(ctx, "GET", "/admin/judge_server", nil, nil)
	if err != nil {
		return nil, err
	}
	l := pagelist.Normalize(data, 1, 0)
	return pagelist.Map(l, entity.AdaptJudgeServer), nil
}

// ListSubmissions returns recent submissions of a user, cached for a
// short window since the my-page polls it while a submission judges.
func (c *Client) ListSubmissions(ctx context.Context, username string, page, limit int, force bool) ([]entity.Submission, error) {
	key := fmt.Sprintf("%s/%d/%d", username, page, limit)
	return c.submissions.GetOrFetch(ctx, key, force,
		func(ctx context.Context) ([]entity.Submission, error) {
			q := pageQuery(page, limit)
			if username != "" {
				q.Set("username", username)
			}
			data, err := c.do(ctx, "GET", "/submission", q, nil)
			if err != nil {
				return nil, err
			}
			l := pagelist.Normalize(data, page, limit)
			return pagelist.Map(l, entity.AdaptSubmission), nil
		})
}

// GetProfile answers from a 60 second cache; the profile header is
// rendered on every page of the console.
func (c *Client) GetProfile(ctx context.Context, username string, force bool) (entity.Profile, error) {
	return c.profile.GetOrFetch(ctx, username, force,
		func(ctx context.Context) (entity.Profile, error) {
			data, err := c.do(ctx, "GET", "/profile", nil, nil)
			if err != nil {
				return entity.Profile{}, err
			}
			return entity.AdaptProfile(data), nil
		})
}
