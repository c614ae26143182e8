// Package gemini expands and summarizes place stories with Gemini models
// served by Vertex AI (API key, express mode).
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"whatwashere/config"
	"whatwashere/internal/domain/service"
	"whatwashere/internal/errors"
	"whatwashere/internal/infra/gateway"

	aiplatform "google.golang.org/api/aiplatform/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const providerName = "gemini"

// Client implements StoryExpander and StorySummarizer.
type Client struct {
	models *aiplatform.PublishersModelsService
	model  string
	guard  *gateway.Guard
	logger *slog.Logger
}

// NewClient creates a Gemini client. An empty API key is rejected; callers
// treat a missing client as "expansion unavailable".
func NewClient(ctx context.Context, cfg *config.GeminiConfig, guard *gateway.Guard, logger *slog.Logger) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("gemini api key is not configured")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := aiplatform.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize gemini service")
	}

	return &Client{
		models: svc.Publishers.Models,
		model:  modelName(cfg.Model),
		guard:  guard,
		logger: logger.With(slog.String("provider", providerName)),
	}, nil
}

// ExpandStory asks the model for a 3 to 4 sentence narrative of the place.
func (c *Client) ExpandStory(ctx context.Context, req service.ExpandStoryRequest) (string, error) {
	story := strings.TrimSpace(req.Story)
	if story == "" {
		return "", nil
	}

	c.logger.DebugContext(ctx, "Expanding story", slog.String("place", req.Name))

	return c.generate(ctx, expandPrompt(req, story))
}

// SummarizeStory asks the model for a respectful summary.
func (c *Client) SummarizeStory(ctx context.Context, story string) (string, error) {
	return c.generate(ctx, summaryPrompt(strings.TrimSpace(story)))
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	return gateway.Do(ctx, c.guard, func(ctx context.Context) (string, error) {
		resp, err := c.models.GenerateContent(c.model, &aiplatform.GoogleCloudAiplatformV1GenerateContentRequest{
			Contents: []*aiplatform.GoogleCloudAiplatformV1Content{
				{
					Role:  "user",
					Parts: []*aiplatform.GoogleCloudAiplatformV1Part{{Text: prompt}},
				},
			},
		}).Context(ctx).Do()
		if err != nil {
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) {
				return "", &service.UpstreamError{Provider: providerName, Status: apiErr.Code, Body: apiErr.Message}
			}

			return "", errors.Wrap(err, "gemini generateContent")
		}

		text := responseText(resp)
		c.logger.DebugContext(ctx, "Gemini responded", slog.Int("chars", len(text)))

		return text, nil
	})
}

// responseText joins the text parts of the first candidate.
func responseText(resp *aiplatform.GoogleCloudAiplatformV1GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	return strings.TrimSpace(b.String())
}

// modelName qualifies a bare model ID with the Google publisher. Fully
// qualified names (projects/... or publishers/...) pass through.
func modelName(model string) string {
	if strings.Contains(model, "/") {
		return model
	}

	return "publishers/google/models/" + model
}

func expandPrompt(req service.ExpandStoryRequest, story string) string {
	communities := "—"
	if len(req.Communities) > 0 {
		communities = strings.Join(req.Communities, ", ")
	}

	details := strings.Join([]string{
		fmt.Sprintf("Place: %s, %s", req.Name, req.City),
		"Years: " + req.Years,
		"Communities: " + communities,
		"Reason / status context: " + req.Reason,
	}, "\n")

	return `You are expanding a brief description of a significant LGBTQ+ or queer cultural place into a fuller narrative. Use your knowledge of history, culture, and publicly available information to add accurate, respectful detail. Do not invent quotes or specific events unless they are well-documented. Preserve the original meaning and tone.

Context:
` + details + `

Short story to expand:
` + story + `

Write a longer narrative (about 3 to 4 sentences) that adds historical background, community significance, and cultural detail. Use plain text only, no bullet points or markdown.`
}

func summaryPrompt(story string) string {
	return `Summarize the following story respectfully, preserving cultural context,
community significance, and historical meaning. Avoid reducing it to
purely factual bullet points.

` + story
}
