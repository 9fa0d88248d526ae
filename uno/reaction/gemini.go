package reaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var ErrMissingAPIKey = errors.New("gemini api key is not set")

const DefaultModel = "gemini-2.5-flash"

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey string, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, request Request) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(Prompt(request)), nil)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}

// Prompt is the instruction sent to the model for request.
func Prompt(request Request) string {
	lines := []string{
		fmt.Sprintf("Character persona: %s", request.Persona),
		"Context: we are playing a game of UNO.",
		fmt.Sprintf("Event: %s", request.Event),
	}
	if request.Card != nil {
		lines = append(lines, fmt.Sprintf("Card involved: %s", describeCard(request.Card)))
	}
	lines = append(lines, "Task: write a one-sentence reaction (max 10 words) to this event as your character.")
	return strings.Join(lines, "\n")
}
