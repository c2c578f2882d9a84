package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	ngrokAttempts = 10
	ngrokInterval = 3 * time.Second
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL queries the ngrok local API and returns the first HTTPS tunnel URL.
// ngrok may still be starting, so it polls a few times before giving up.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	client := resty.New().
		SetBaseURL(ngrokAPIBase).
		SetTimeout(5 * time.Second)

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		url, err := fetchTunnelURL(ctx, client)
		if err == nil {
			return url, nil
		}
		lastErr = err

		if attempt < ngrokAttempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(ngrokInterval):
			}
		}
	}

	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokAttempts, lastErr)
}

func fetchTunnelURL(ctx context.Context, client *resty.Client) (string, error) {
	var tunnels ngrokTunnelsResponse
	resp, err := client.R().
		SetContext(ctx).
		SetResult(&tunnels).
		Get("/api/tunnels")
	if err != nil {
		return "", fmt.Errorf("ngrok API not reachable: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("ngrok API returned %d", resp.StatusCode())
	}

	// Prefer HTTPS tunnels
	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", fmt.Errorf("ngrok has no active tunnels")
}
