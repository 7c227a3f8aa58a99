package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ItineraryGeneratorInterface is the narrow contract to the generative
// text service: one prompt in, free-form markdown-flavored text out.
type ItineraryGeneratorInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}

// GeminiItineraryClient implements ItineraryGeneratorInterface using
// Google's Gemini models.
type GeminiItineraryClient struct {
	client *genai.Client
	model  string
}

func NewGeminiItineraryClient(apiKey, model string) (ItineraryGeneratorInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiItineraryClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiItineraryClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.3)
	model.SetTopP(0.5)
	model.SetTopK(20)
	model.SetMaxOutputTokens(5000)

	// Bounded call: a hung generation must surface as a failed itinerary,
	// not a stuck request.
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := model.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
