package msclient

import (
	"context"
	"fmt"

	"github.com/programme-lv/console/entity"
	"github.com/programme-lv/console/normalize"
	"github.com/programme-lv/console/pagelist"
)

func (c *Client) ListOrganizations(ctx context.Context, page, limit int) ([]entity.Organization, int, error) {
	data, err := c.do(ctx, "GET", "/organization", nil, nil)
	if err != nil {
		return nil, 0, err
	}
	l := pagelist.Normalize(data, page, limit)
	return pagelist.Map(l, entity.AdaptOrganization), l.Total, nil
}

func (c *Client) JoinOrganization(ctx context.Context, orgID int) error {
	if _, err := c.do(ctx, "POST", fmt.Sprintf("/organization/%d/join", orgID), nil, nil); err != nil {
		return fmt.Errorf("join organization %d: %w", orgID, err)
	}
	return nil
}

// GetUserProfile reads the microservice copy of the user profile; the
// my-page merges it with the primary API's.
func (c *Client) GetUserProfile(ctx context.Context, username string) (entity.Profile, error) {
	data, err := c.do(ctx, "GET", "/user/"+username, nil, nil)
	if err != nil {
		return entity.Profile{}, err
	}
	return entity.AdaptProfile(data), nil
}

type ProfileParams struct {
	School string `json:"school"`
	Major  string `json:"major"`
	Mood   string `json:"mood"`
}

func (c *Client) UpdateUserProfile(ctx context.Context, username string, params ProfileParams) (entity.Profile, error) {
	data, err := c.do(ctx, "PUT", "/user/"+username, nil, params)
	if err != nil {
		return entity.Profile{}, err
	}
	return entity.AdaptProfile(data), nil
}

// MonitorStatus is the judge fleet as the monitor sub-service sees it.
func (c *Client) MonitorStatus(ctx context.Context) ([]entity.JudgeServer, error) {
	data, err := c.do(ctx, "GET", "/monitor", nil, nil)
	if err != nil {
		return nil, err
	}
	l := pagelist.Normalize(data, 1, 0)
	return pagelist.Map(l, entity.AdaptJudgeServer), nil
}

// Login authenticates and returns the bearer token for the session.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	data, err := c.do(ctx, "POST", "/auth/login", nil, body)
	if err != nil {
		return "", err
	}
	// some deployments answer {token}, some a bare string
	if s, ok := data.(string); ok {
		return s, nil
	}
	if obj, ok := normalize.AsObject(data); ok {
		if v, ok := normalize.FirstPresent(obj, "token", "accessToken", "access_token"); ok {
			return normalize.StrOr(v, ""), nil
		}
	}
	return "", fmt.Errorf("login response carried no token")
}

func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	data, err := c.do(ctx, "POST", "/auth/refresh", nil, nil)
	if err != nil {
		return "", err
	}
	if obj, ok := normalize.AsObject(data); ok {
		if v, ok := normalize.FirstPresent(obj, "token", "accessToken", "access_token"); ok {
			return normalize.StrOr(v, ""), nil
		}
	}
	if s, ok := data.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("refresh response carried no token")
}
