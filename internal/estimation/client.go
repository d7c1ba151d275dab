package estimation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ajay-constructions/estimator/internal/models"
	"github.com/ajay-constructions/estimator/internal/providers"
)

// Client translates a project request into one call to the structured
// estimation service and deserializes the reply. It performs no caching and
// no retries: every submission is exactly one external call.
type Client struct {
	provider providers.TextGenerator
	model    string
}

// NewClient creates an estimation client backed by the given provider.
func NewClient(provider providers.TextGenerator) *Client {
	return &Client{
		provider: provider,
		model:    defaultModel(),
	}
}

func defaultModel() string {
	model := os.Getenv("ESTIMATOR_MODEL")
	if model == "" {
		return "gemini-3-pro-preview"
	}
	return model
}

// Estimate requests a cost and material breakdown for the given category and
// inputs. Any service error or non-conforming reply fails the call; a partial
// result is never returned.
func (c *Client) Estimate(ctx context.Context, category models.Category, inputs map[string]any) (*models.EstimateResult, error) {
	prompt, err := buildPrompt(category, inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to build estimation prompt: %w", err)
	}

	raw, err := c.provider.GenerateText(ctx, providers.Config{
		Model:       c.model,
		Temperature: 0.2, // low temperature for consistent pricing output
		Prompt:      prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("estimation service call failed: %w", err)
	}

	result, err := parseResult(raw)
	if err != nil {
		return nil, fmt.Errorf("estimation response rejected: %w", err)
	}

	return result, nil
}

func buildPrompt(category models.Category, inputs map[string]any) (string, error) {
	encoded, err := json.Marshal(inputs)
	if err != nil {
		return "", fmt.Errorf("failed to encode inputs: %w", err)
	}

	return fmt.Sprintf(`Act as a Senior Construction Estimator for the Hyderabad Real Estate Market.
Estimate for: %s
Inputs: %s

Rules:
- Return valid JSON only, no prose and no markdown.
- Include: materials (list of {name, quantity, unitPrice, totalPrice, brandSuggestion}),
  laborCost (number), estimatedDays (number), precautions (list of strings),
  totalEstimatedCost (number), expertTips (string),
  visualPrompt (string, descriptive for architecture).
- Optionally include: timeline (list of {week, activity, status}) and
  paintCodeSuggestions (list of strings) when relevant to the task.
- Use high-skilled daily wages for the given location zone.
- Account for material logistics from Troop Bazaar to the location zone.`, category, encoded), nil
}

// stripFences removes the markdown code fences the model sometimes wraps its
// JSON payload in.
func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// rawResult mirrors EstimateResult with pointer scalars so that absent
// required fields are detectable after decoding. Fail closed: a missing or
// mistyped field rejects the whole reply, nothing is default-filled.
type rawResult struct {
	Materials            []models.MaterialItem  `json:"materials"`
	LaborCost            *float64               `json:"laborCost"`
	EstimatedDays        *int                   `json:"estimatedDays"`
	Precautions          []string               `json:"precautions"`
	TotalEstimatedCost   *float64               `json:"totalEstimatedCost"`
	ExpertTips           string                 `json:"expertTips"`
	VisualPrompt         *string                `json:"visualPrompt"`
	Timeline             []models.TimelineEvent `json:"timeline"`
	PaintCodeSuggestions []string               `json:"paintCodeSuggestions"`
}

func parseResult(raw string) (*models.EstimateResult, error) {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty response payload")
	}

	var decoded rawResult
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	if len(decoded.Materials) == 0 {
		return nil, fmt.Errorf("missing required field: materials")
	}
	for i, item := range decoded.Materials {
		if strings.TrimSpace(item.Name) == "" {
			return nil, fmt.Errorf("material %d has no name", i)
		}
	}
	if decoded.LaborCost == nil {
		return nil, fmt.Errorf("missing required field: laborCost")
	}
	if decoded.EstimatedDays == nil {
		return nil, fmt.Errorf("missing required field: estimatedDays")
	}
	if decoded.TotalEstimatedCost == nil {
		return nil, fmt.Errorf("missing required field: totalEstimatedCost")
	}
	if decoded.VisualPrompt == nil || strings.TrimSpace(*decoded.VisualPrompt) == "" {
		return nil, fmt.Errorf("missing required field: visualPrompt")
	}

	return &models.EstimateResult{
		Materials:            decoded.Materials,
		LaborCost:            *decoded.LaborCost,
		EstimatedDays:        *decoded.EstimatedDays,
		Precautions:          decoded.Precautions,
		TotalEstimatedCost:   *decoded.TotalEstimatedCost,
		ExpertTips:           decoded.ExpertTips,
		VisualPrompt:         *decoded.VisualPrompt,
		Timeline:             decoded.Timeline,
		PaintCodeSuggestions: decoded.PaintCodeSuggestions,
	}, nil
}
