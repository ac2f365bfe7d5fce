package flavor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Remote asks an HTTP endpoint for milestone texts. The endpoint receives
// {"level": N, "prompt": "..."} and answers {"text": "..."}.
type Remote struct {
	URL    string
	Client *http.Client
}

type remoteRequest struct {
	Level  int    `json:"level"`
	Prompt string `json:"prompt"`
}

type remoteResponse struct {
	Text string `json:"text"`
}

// NewRemote creates a Remote with its own client bounded by timeout.
func NewRemote(url string, timeout time.Duration) *Remote {
	return &Remote{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

// Message implements Source.
func (r *Remote) Message(ctx context.Context, level int) (string, error) {
	body, err := json.Marshal(remoteRequest{Level: level, Prompt: Prompt(level)})
	if err != nil {
		return "", fmt.Errorf("flavor: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("flavor: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("flavor: request level %d: %w", level, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("flavor: request level %d: status %s", level, resp.Status)
	}

	var out remoteResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&out); err != nil {
		return "", fmt.Errorf("flavor: decode response: %w", err)
	}
	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
