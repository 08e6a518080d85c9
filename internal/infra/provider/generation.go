package provider

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"dish-studio/internal/pkg/config"
)

type GenerationClient struct {
	c *jsonClient
}

func NewGenerationClient(cfg config.Config, hc *http.Client) *GenerationClient {
	return &GenerationClient{
		c: newJSONClient("generation", cfg.Provider.GenerationURL, cfg.Provider.APIKey, cfg.Provider.GenerationTimeout, hc),
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	ImageURL string `json:"imageUrl"`
}

// Generate returns the URL of the rendered dish image.
func (g *GenerationClient) Generate(ctx context.Context, prompt string) (string, error) {
	var out generateResponse
	if err := g.c.post(ctx, "/v1/images", generateRequest{Prompt: prompt}, &out); err != nil {
		return "", err
	}
	imageURL := strings.TrimSpace(out.ImageURL)
	if imageURL == "" {
		return "", malformed(g.c.name, "empty imageUrl")
	}
	if u, err := url.Parse(imageURL); err != nil || u.Scheme == "" || u.Host == "" {
		return "", malformed(g.c.name, "imageUrl is not absolute")
	}
	return imageURL, nil
}
