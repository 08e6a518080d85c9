// Package provider holds the JSON-over-HTTP clients for the generation,
// image safety and prompt moderation services.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxErrorBody = 4 << 10

type jsonClient struct {
	name    string
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *http.Client
}

func newJSONClient(name, baseURL, apiKey string, timeout time.Duration, hc *http.Client) *jsonClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &jsonClient{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
		http:    hc,
	}
}

func (c *jsonClient) post(ctx context.Context, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(in)
	if err != nil {
		return &Error{Provider: c.name, Kind: KindMalformed, err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &Error{Provider: c.name, Kind: KindRejected, err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &Error{Provider: c.name, Kind: KindTimeout, err: err}
		}
		return &Error{Provider: c.name, Kind: KindUnavailable, err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &Error{
			Provider:   c.name,
			Kind:       kindForStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			err:        errors.New(strings.TrimSpace(string(snippet))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &Error{Provider: c.name, Kind: KindTimeout, err: err}
		}
		return &Error{Provider: c.name, Kind: KindMalformed, StatusCode: resp.StatusCode, err: err}
	}
	return nil
}

func malformed(name, msg string) error {
	return &Error{Provider: name, Kind: KindMalformed, err: errors.New(msg)}
}
