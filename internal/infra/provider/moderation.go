package provider

import (
	"context"
	"net/http"
	"strings"

	"dish-studio/internal/domain/creation"
	"dish-studio/internal/pkg/config"
)

// ModerationClient screens prompts and returns the English rendering sent to the image model.
type ModerationClient struct {
	c *jsonClient
}

func NewModerationClient(cfg config.Config, hc *http.Client) *ModerationClient {
	return &ModerationClient{
		c: newJSONClient("moderation", cfg.Provider.ModerationURL, cfg.Provider.APIKey, cfg.Provider.ModerationTimeout, hc),
	}
}

type moderateRequest struct {
	Prompt string `json:"prompt"`
}

func (m *ModerationClient) Moderate(ctx context.Context, prompt string) (creation.Moderation, error) {
	var out verdictResponse
	if err := m.c.post(ctx, "/v1/moderate", moderateRequest{Prompt: prompt}, &out); err != nil {
		return creation.Moderation{}, err
	}
	verdict, err := parseVerdict(m.c.name, out)
	if err != nil {
		return creation.Moderation{}, err
	}
	translated := strings.TrimSpace(out.TranslatedPrompt)
	if translated == "" {
		translated = prompt
	}
	return creation.Moderation{Verdict: verdict, TranslatedPrompt: translated}, nil
}
