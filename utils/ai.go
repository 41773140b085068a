package utils

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type AIConfig struct {
	APIKey   string
	GenModel string
}

func NewAIClient(ctx context.Context, cfg AIConfig) (*genai.Client, error) {
	return genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
}

// GenerateText returns the concatenated text of all candidates and the total
// token count reported by the model (0 when it reports none).
func GenerateText(ctx context.Context, client *genai.Client, model string, parts ...genai.Part) (string, int64, error) {
	m := client.GenerativeModel(model)
	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", 0, err
	}
	var b strings.Builder
	var tokens int64
	if resp != nil {
		for _, c := range resp.Candidates {
			if c == nil || c.Content == nil {
				continue
			}
			for _, p := range c.Content.Parts {
				if t, ok := p.(genai.Text); ok {
					b.WriteString(string(t))
				}
			}
		}
		if resp.UsageMetadata != nil {
			tokens = int64(resp.UsageMetadata.TotalTokenCount)
		}
	}
	return strings.TrimSpace(b.String()), tokens, nil
}

// StripFences removes a surrounding ``` block some models wrap answers in.
func StripFences(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if i := strings.IndexByte(t, '\n'); i >= 0 {
		t = t[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(t), "```"))
}
