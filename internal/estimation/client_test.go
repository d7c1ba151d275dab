package estimation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ajay-constructions/estimator/internal/models"
	"github.com/ajay-constructions/estimator/internal/providers"
)

type fakeProvider struct {
	response   string
	err        error
	lastConfig providers.Config
}

func (f *fakeProvider) GenerateText(ctx context.Context, config providers.Config) (string, error) {
	f.lastConfig = config
	return f.response, f.err
}

const validResponse = `{
	"materials": [
		{"name": "Asian Paints Royale", "quantity": "40 Ltr", "unitPrice": 590, "totalPrice": 23600, "brandSuggestion": "Asian Paints"},
		{"name": "Putty", "quantity": "4 bags", "unitPrice": 800, "totalPrice": 3200}
	],
	"laborCost": 50000,
	"estimatedDays": 10,
	"precautions": ["Cover the flooring before priming"],
	"totalEstimatedCost": 250000,
	"expertTips": "Prefer two coats of primer on fresh plaster.",
	"visualPrompt": "premium painted living room"
}`

func TestEstimateParsesValidResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "plain JSON", response: validResponse},
		{name: "fenced JSON", response: "```json\n" + validResponse + "\n```"},
		{name: "bare fences", response: "```\n" + validResponse + "\n```"},
		{name: "surrounding whitespace", response: "\n\n  " + validResponse + "  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(&fakeProvider{response: tt.response})
			result, err := client.Estimate(context.Background(), models.CategoryPaint, map[string]any{"sqft": 1000})
			if err != nil {
				t.Fatalf("Estimate failed: %v", err)
			}

			if result.TotalEstimatedCost != 250000 {
				t.Errorf("Expected total 250000, got %v", result.TotalEstimatedCost)
			}
			if result.LaborCost != 50000 {
				t.Errorf("Expected labor cost 50000, got %v", result.LaborCost)
			}
			if result.EstimatedDays != 10 {
				t.Errorf("Expected 10 days, got %d", result.EstimatedDays)
			}
			if len(result.Materials) != 2 {
				t.Errorf("Expected 2 materials, got %d", len(result.Materials))
			}
			if result.VisualPrompt != "premium painted living room" {
				t.Errorf("Unexpected visual prompt: %q", result.VisualPrompt)
			}
		})
	}
}

func TestEstimateRejectsMalformedResponses(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "not JSON", response: "Sorry, I cannot help with that."},
		{name: "empty response", response: ""},
		{name: "fences only", response: "```json\n```"},
		{
			name:     "missing totalEstimatedCost",
			response: `{"materials": [{"name": "Cement"}], "laborCost": 1, "estimatedDays": 2, "visualPrompt": "x"}`,
		},
		{
			name:     "missing laborCost",
			response: `{"materials": [{"name": "Cement"}], "estimatedDays": 2, "totalEstimatedCost": 100, "visualPrompt": "x"}`,
		},
		{
			name:     "missing estimatedDays",
			response: `{"materials": [{"name": "Cement"}], "laborCost": 1, "totalEstimatedCost": 100, "visualPrompt": "x"}`,
		},
		{
			name:     "missing visualPrompt",
			response: `{"materials": [{"name": "Cement"}], "laborCost": 1, "estimatedDays": 2, "totalEstimatedCost": 100}`,
		},
		{
			name:     "empty materials",
			response: `{"materials": [], "laborCost": 1, "estimatedDays": 2, "totalEstimatedCost": 100, "visualPrompt": "x"}`,
		},
		{
			name:     "material without a name",
			response: `{"materials": [{"quantity": "2 bags"}], "laborCost": 1, "estimatedDays": 2, "totalEstimatedCost": 100, "visualPrompt": "x"}`,
		},
		{
			name:     "mistyped laborCost",
			response: `{"materials": [{"name": "Cement"}], "laborCost": "a lot", "estimatedDays": 2, "totalEstimatedCost": 100, "visualPrompt": "x"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(&fakeProvider{response: tt.response})
			if _, err := client.Estimate(context.Background(), models.CategoryPaint, nil); err == nil {
				t.Fatal("Expected estimation failure")
			}
		})
	}
}

func TestEstimateSurfacesProviderError(t *testing.T) {
	client := NewClient(&fakeProvider{err: errors.New("quota exceeded")})
	if _, err := client.Estimate(context.Background(), models.CategoryWholeBuild, nil); err == nil {
		t.Fatal("Expected provider error to surface")
	}
}

func TestEstimatePromptCarriesCategoryAndInputs(t *testing.T) {
	provider := &fakeProvider{response: validResponse}
	client := NewClient(provider)

	inputs := map[string]any{"sqft": 1500.0, "location": "Gachibowli"}
	if _, err := client.Estimate(context.Background(), models.CategoryWholeBuild, inputs); err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}

	prompt := provider.lastConfig.Prompt
	if !strings.Contains(prompt, string(models.CategoryWholeBuild)) {
		t.Errorf("Prompt missing category: %q", prompt)
	}
	if !strings.Contains(prompt, "Gachibowli") {
		t.Errorf("Prompt missing input values: %q", prompt)
	}
	if !strings.Contains(prompt, "visualPrompt") {
		t.Errorf("Prompt should mandate the reply fields: %q", prompt)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "json fence", raw: "```json\n{\"a\":1}\n```", expected: `{"a":1}`},
		{name: "bare fence", raw: "```\n{\"a\":1}\n```", expected: `{"a":1}`},
		{name: "no fence", raw: `{"a":1}`, expected: `{"a":1}`},
		{name: "whitespace only", raw: "  \n ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.raw); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
