package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/speakwise-team/speakwise/internal/usecase/scoring"
	"github.com/speakwise-team/speakwise/pkg/config"
)

// LanguageToolClient is a minimal client for a self-hosted LanguageTool server
type LanguageToolClient struct {
	baseURL  string
	language string
	client   *http.Client
}

// NewLanguageToolClient creates a LanguageTool client using the provided config.
func NewLanguageToolClient(cfg *config.LanguageToolConfig) *LanguageToolClient {
	language := cfg.Language
	if language == "" {
		language = "en-US"
	}
	return &LanguageToolClient{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		language: language,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// checkResponse is the minimal shape of /v2/check
type checkResponse struct {
	Matches []struct {
		Message string `json:"message"`
		Rule    struct {
			ID string `json:"id"`
		} `json:"rule"`
	} `json:"matches"`
}

// Check sends the text to the /v2/check endpoint and returns the rule matches.
func (c *LanguageToolClient) Check(ctx context.Context, text string) ([]scoring.RuleMatch, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", c.language)

	endpoint := c.baseURL + "/v2/check"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("languagetool returned status %d", resp.StatusCode)
	}

	var cr checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, err
	}

	matches := make([]scoring.RuleMatch, 0, len(cr.Matches))
	for _, m := range cr.Matches {
		matches = append(matches, scoring.RuleMatch{
			RuleID:  m.Rule.ID,
			Message: m.Message,
		})
	}
	return matches, nil
}
