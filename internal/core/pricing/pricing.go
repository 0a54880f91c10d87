package pricing

import "fmt"

// ModelPricing defines per-1000-token prices for an OpenAI model, split into
// prompt (input) and completion (output) rates.
type ModelPricing struct {
	Prompt     float64 `json:"prompt_per_1k"`
	Completion float64 `json:"completion_per_1k"`
}

// catalogMap stores the published per-1K prices for the common OpenAI models.
// The gpt-4 completion rate backs the estimator's 0.06 default.
var catalogMap = map[string]ModelPricing{
	"gpt-4": {
		Prompt:     0.03,
		Completion: 0.06,
	},
	"gpt-4-32k": {
		Prompt:     0.06,
		Completion: 0.12,
	},
	"gpt-3.5-turbo": {
		Prompt:     0.0015,
		Completion: 0.002,
	},
	"gpt-3.5-turbo-16k": {
		Prompt:     0.003,
		Completion: 0.004,
	},
	"text-embedding-ada-002": {
		Prompt:     0.0001,
		Completion: 0.0001,
	},
}

// GetPricing returns the pricing for a specific model.
func GetPricing(modelName string) (ModelPricing, error) {
	p, ok := catalogMap[modelName]
	if !ok {
		return ModelPricing{}, fmt.Errorf("unknown model: %s", modelName)
	}
	return p, nil
}

// GetAllPricings returns a copy of the full catalog.
func GetAllPricings() map[string]ModelPricing {
	out := make(map[string]ModelPricing, len(catalogMap))
	for name, p := range catalogMap {
		out[name] = p
	}
	return out
}
