package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lemonade/internal/game"
)

// ActionResponse is what every mutating endpoint returns: whether the
// action was accepted, the narration line and the full state after it.
type ActionResponse struct {
	OK      bool               `json:"ok"`
	Message string             `json:"message"`
	State   game.StateSnapshot `json:"state"`
}

// SimulateResponse adds the completed day's summary to the action shape.
type SimulateResponse struct {
	OK         bool               `json:"ok"`
	Message    string             `json:"message"`
	GameOver   bool               `json:"game_over"`
	DaySummary *game.DaySummary   `json:"day_summary"`
	State      game.StateSnapshot `json:"state"`
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Health(ctx context.Context) error {
	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.jsonRequest(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return err
	}
	if !out.OK {
		return fmt.Errorf("api reported not ok")
	}
	return nil
}

func (c *Client) State(ctx context.Context) (ActionResponse, error) {
	var out ActionResponse
	err := c.jsonRequest(ctx, http.MethodGet, "/state", nil, &out)
	return out, err
}

func (c *Client) Reset(ctx context.Context) (ActionResponse, error) {
	var out ActionResponse
	err := c.jsonRequest(ctx, http.MethodPost, "/reset", nil, &out)
	return out, err
}

func (c *Client) Buy(ctx context.Context, lemons, sugar, cups int) (ActionResponse, error) {
	var out ActionResponse
	err := c.jsonRequest(ctx, http.MethodPost, "/buy", map[string]any{
		"lemons": lemons,
		"sugar":  sugar,
		"cups":   cups,
	}, &out)
	return out, err
}

func (c *Client) SetPrice(ctx context.Context, price float64) (ActionResponse, error) {
	var out ActionResponse
	err := c.jsonRequest(ctx, http.MethodPost, "/set_price", map[string]any{
		"price": price,
	}, &out)
	return out, err
}

func (c *Client) Produce(ctx context.Context, qty int) (ActionResponse, error) {
	var out ActionResponse
	err := c.jsonRequest(ctx, http.MethodPost, "/produce", map[string]any{
		"qty": qty,
	}, &out)
	return out, err
}

func (c *Client) Simulate(ctx context.Context, adSpend float64) (SimulateResponse, error) {
	var out SimulateResponse
	err := c.jsonRequest(ctx, http.MethodPost, "/simulate", map[string]any{
		"advertising_spend": adSpend,
	}, &out)
	return out, err
}

func (c *Client) jsonRequest(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("api status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
