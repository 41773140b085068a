package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/phuslu/log"

	"runwayplanner/backend/utils"
)

const (
	SourceRules = "rules"
	SourceModel = "model"
)

type Advice struct {
	Intent     Intent   `json:"intent"`
	Points     []string `json:"points"`
	Narrative  string   `json:"narrative"`
	Source     string   `json:"source"`
	TokensUsed int64    `json:"tokens_used"`
}

// Narrator rewrites a prompt into prose and reports the tokens it spent.
type Narrator interface {
	Narrate(ctx context.Context, prompt string) (string, int64, error)
}

// Rules answers a question from the facts alone.
func Rules(question string, f Facts) Advice {
	intent := Classify(question)
	build := generalAdvice
	if s, ok := lookup(intent); ok {
		build = s.advise
	}
	points := append(build(f), sanityPoints(f.Sanity)...)
	return Advice{
		Intent:    intent,
		Points:    points,
		Narrative: strings.Join(points, " "),
		Source:    SourceRules,
	}
}

// Advise builds rule-based advice and, when n is non-nil, asks it for a
// narrative grounded on those points. A narrator failure falls back to the
// rule text.
func Advise(ctx context.Context, n Narrator, question string, f Facts) Advice {
	a := Rules(question, f)
	if n == nil {
		return a
	}
	text, tokens, err := n.Narrate(ctx, prompt(question, f, a.Points))
	a.TokensUsed = tokens
	if err != nil || strings.TrimSpace(text) == "" {
		log.Warn().Err(err).Str("intent", string(a.Intent)).Msg("advisor narrative failed, using rules")
		return a
	}
	a.Narrative = utils.StripFences(text)
	a.Source = SourceModel
	return a
}

func prompt(question string, f Facts, points []string) string {
	var b strings.Builder
	b.WriteString("You are a startup finance advisor. Answer the founder's question in at most 120 words, ")
	b.WriteString("using only the facts below. Do not invent numbers.\n\n")
	fmt.Fprintf(&b, "Company: %s (%s, %s)\n", f.Company.Name, f.Company.Stage, f.Company.Sector)
	fmt.Fprintf(&b, "Question: %s\n\nFacts:\n", question)
	for _, p := range points {
		b.WriteString("- ")
		b.WriteString(p)
		b.WriteByte('\n')
	}
	return b.String()
}

// Gemini narrates with a Google generative model.
type Gemini struct {
	APIKey string
	Model  string
}

func (g Gemini) Narrate(ctx context.Context, p string) (string, int64, error) {
	client, err := utils.NewAIClient(ctx, utils.AIConfig{APIKey: g.APIKey, GenModel: g.Model})
	if err != nil {
		return "", 0, err
	}
	defer client.Close()
	return utils.GenerateText(ctx, client, g.Model, genai.Text(p))
}
