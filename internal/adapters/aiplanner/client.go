// Package aiplanner asks an OpenAI-compatible chat-completions endpoint for an
// itinerary.
package aiplanner

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"floripa_guide/internal/adapters/observability"
	"floripa_guide/internal/domain"
)

const (
	service     = "ai"
	endpoint    = "chat_completions"
	maxAttempts = 4
	temperature = 0.7
)

var (
	ErrUnauthorized = errors.New("ai: unauthorized")
	ErrBadContent   = errors.New("ai: response is not a valid itinerary")
)

type Client struct {
	base  string
	key   string
	model string
	hc    *http.Client
	rl    *rate.Limiter
}

func New(base, key, model string, rps float64) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 2
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		base:  strings.TrimRight(base, "/"),
		key:   key,
		model: model,
		hc:    &http.Client{Timeout: 60 * time.Second},
		rl:    rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// PlanItinerary implements domain.ItineraryPlanner.
func (c *Client) PlanItinerary(ctx context.Context, prefs domain.Preferences) (domain.Itinerary, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(prefs)},
		},
		Temperature: temperature,
	})
	if err != nil {
		return domain.Itinerary{}, err
	}

	var resp chatResponse
	if err := c.post(ctx, c.base+"/chat/completions", body, &resp); err != nil {
		return domain.Itinerary{}, err
	}
	if len(resp.Choices) == 0 {
		return domain.Itinerary{}, fmt.Errorf("%w: no choices", ErrBadContent)
	}
	return decodeItinerary(resp.Choices[0].Message.Content)
}

// post sends body with client-side rate limiting and retries on 429 and
// transient 5xx, honoring Retry-After when provided.
func (c *Client) post(ctx context.Context, url string, body []byte, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.key)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "floripa-guide/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal(service, endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < maxAttempts-1 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal(service, endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusUnauthorized, http.StatusForbidden:
			resp.Body.Close()
			return ErrUnauthorized

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < maxAttempts-1 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}
	return lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). 0 if absent or invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles from 200ms per attempt with up to +50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
