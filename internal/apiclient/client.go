package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/brk3/habittracker/internal/server"
	"github.com/brk3/habittracker/pkg/versioninfo"
)

type Client struct {
	BaseURL   string
	AuthToken string
	HTTP      *http.Client
}

func New(base, token string) *Client {
	return &Client{
		BaseURL:   base,
		AuthToken: token,
		HTTP:      http.DefaultClient,
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	if c.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AuthToken)
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", path, res.Status)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) ListHabits(ctx context.Context) ([]string, error) {
	var response server.HabitListResponse
	if err := c.get(ctx, "/habits/", &response); err != nil {
		return nil, err
	}
	return response.Habits, nil
}

func (c *Client) HabitsAtRisk(ctx context.Context) ([]string, error) {
	var response server.HabitListResponse
	if err := c.get(ctx, "/streaks/at-risk", &response); err != nil {
		return nil, err
	}
	return response.Habits, nil
}

func (c *Client) BrokenStreaks(ctx context.Context) ([]string, error) {
	var response server.HabitListResponse
	if err := c.get(ctx, "/streaks/broken", &response); err != nil {
		return nil, err
	}
	return response.Habits, nil
}

func (c *Client) Version(ctx context.Context) (*versioninfo.VersionInfo, error) {
	var out versioninfo.VersionInfo
	if err := c.get(ctx, "/version", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
