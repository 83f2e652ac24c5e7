package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Settings is the fixed sampling configuration used for every call.
type Settings struct {
	Model           string
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}

// DefaultSettings mirrors what the forms have always used.
func DefaultSettings() Settings {
	return Settings{
		Model:           "gemini-2.0-flash",
		Temperature:     0.7,
		TopP:            1,
		TopK:            1,
		MaxOutputTokens: 4096,
	}
}

// blockedCategories are rejected at medium probability and above.
var blockedCategories = []genai.HarmCategory{
	genai.HarmCategoryHarassment,
	genai.HarmCategoryHateSpeech,
	genai.HarmCategorySexuallyExplicit,
	genai.HarmCategoryDangerousContent,
}

// GeminiClient is a Generator backed by the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	log    *slog.Logger
}

// NewGeminiClient configures a model with s and the fixed safety settings.
func NewGeminiClient(ctx context.Context, apiKey string, s Settings, log *slog.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	model := client.GenerativeModel(s.Model)
	model.SetTemperature(s.Temperature)
	model.SetTopP(s.TopP)
	model.SetTopK(s.TopK)
	model.SetMaxOutputTokens(s.MaxOutputTokens)
	model.SafetySettings = safetySettings()

	return &GeminiClient{
		client: client,
		model:  model,
		log:    log.With("component", "gemini", "model", s.Model),
	}, nil
}

// Close releases the underlying client.
func (g *GeminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

// Generate sends prompt as a single-turn request. It never retries.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return "", &GenerationError{Kind: KindBlocked, Err: err}
		}
		return "", &GenerationError{Kind: KindTransport, Err: err}
	}

	if resp.UsageMetadata != nil {
		g.log.Debug("generation call",
			"input_tokens", resp.UsageMetadata.PromptTokenCount,
			"output_tokens", resp.UsageMetadata.CandidatesTokenCount,
			"total_tokens", resp.UsageMetadata.TotalTokenCount)
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", &GenerationError{Kind: KindEmpty, Err: ErrEmptyResponse}
	}
	return text, nil
}

func safetySettings() []*genai.SafetySetting {
	out := make([]*genai.SafetySetting, 0, len(blockedCategories))
	for _, c := range blockedCategories {
		out = append(out, &genai.SafetySetting{
			Category:  c,
			Threshold: genai.HarmBlockMediumAndAbove,
		})
	}
	return out
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
