package provider

import (
	"context"
	"net/http"
	"strings"

	"dish-studio/internal/domain/creation"
	"dish-studio/internal/pkg/config"
)

type SafetyClient struct {
	c *jsonClient
}

func NewSafetyClient(cfg config.Config, hc *http.Client) *SafetyClient {
	return &SafetyClient{
		c: newJSONClient("safety", cfg.Provider.SafetyURL, cfg.Provider.APIKey, cfg.Provider.SafetyTimeout, hc),
	}
}

type safetyRequest struct {
	Prompt   string `json:"prompt"`
	ImageURL string `json:"imageUrl"`
}

type verdictResponse struct {
	Decision         string `json:"decision"`
	Reason           string `json:"reason"`
	TranslatedPrompt string `json:"translatedPrompt,omitempty"`
}

func (s *SafetyClient) Check(ctx context.Context, prompt, imageURL string) (creation.Verdict, error) {
	var out verdictResponse
	if err := s.c.post(ctx, "/v1/safety", safetyRequest{Prompt: prompt, ImageURL: imageURL}, &out); err != nil {
		return creation.Verdict{}, err
	}
	return parseVerdict(s.c.name, out)
}

func parseVerdict(name string, out verdictResponse) (creation.Verdict, error) {
	switch d := creation.Decision(strings.ToUpper(strings.TrimSpace(out.Decision))); d {
	case creation.DecisionAllow, creation.DecisionBlock:
		return creation.Verdict{Decision: d, Reason: out.Reason}, nil
	default:
		return creation.Verdict{}, malformed(name, "unknown decision "+out.Decision)
	}
}
