package interaction

import (
	"bytes"
	"strings"
	"testing"

	"github.com/medwise/llmcost/internal/core/model"
	"github.com/medwise/llmcost/internal/core/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, input string) (model.CostInputs, string, error) {
	t.Helper()
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(input), &out, nil)
	inputs, err := p.Collect()
	return inputs, out.String(), err
}

func TestCollectAllDefaults(t *testing.T) {
	inputs, out, err := collect(t, "\n\n\n\n\n\n")
	require.NoError(t, err)

	assert.Equal(t, model.DefaultInputs(), inputs)
	assert.Contains(t, out, "Enter the number of prompts sent per doctor's shift [50]: ")
	assert.Contains(t, out, "Enter the OpenAI price per 1000 tokens (GPT-4=$0.06) (in $) [0.06]: ")
	assert.Contains(t, out, "Enter the number of shifts per day [3]: ")
}

func TestCollectExplicitValues(t *testing.T) {
	inputs, _, err := collect(t, "25\n2\n1500\n0.03\n4\n2\n")
	require.NoError(t, err)

	assert.Equal(t, 25.0, inputs.PromptsPerShift)
	assert.Equal(t, 2.0, inputs.ChainMultiplier)
	assert.Equal(t, 1500.0, inputs.TokensPerCall)
	assert.Equal(t, 0.03, inputs.PricePer1000Tokens)
	assert.Equal(t, 4.0, inputs.DoctorsPerShift)
	assert.Equal(t, 2.0, inputs.ShiftsPerDay)
}

func TestCollectRepromptsOnGarbage(t *testing.T) {
	inputs, out, err := collect(t, "abc\n40\n\n\n\n\n\n")
	require.NoError(t, err)

	assert.Equal(t, 40.0, inputs.PromptsPerShift)
	assert.Contains(t, out, `Invalid input: "abc" is not a number`)
	// Same prompt issued twice after the rejected entry.
	assert.Equal(t, 2, strings.Count(out, "Enter the number of prompts sent per doctor's shift [50]: "))
}

func TestCollectRepromptsOnNonPositive(t *testing.T) {
	inputs, out, err := collect(t, "\n0\n-3\n5\n\n\n\n\n")
	require.NoError(t, err)

	assert.Equal(t, 5.0, inputs.ChainMultiplier)
	assert.Equal(t, 2, strings.Count(out, "chain_multiplier must be a positive number"))
	assert.Equal(t, 3, strings.Count(out, "Enter the chain/interaction/augmentation multiplier [5]: "))
}

func TestCollectAcceptsZeroPrice(t *testing.T) {
	inputs, _, err := collect(t, "\n\n\n0\n\n\n")
	require.NoError(t, err)
	assert.Zero(t, inputs.PricePer1000Tokens)
}

func TestCollectRepromptsOnNonFinite(t *testing.T) {
	// ParseFloat accepts "nan" and "inf"; neither is a usable quantity.
	inputs, out, err := collect(t, "nan\n+inf\n30\n\n\n\n\n\n")
	require.NoError(t, err)

	assert.Equal(t, 30.0, inputs.PromptsPerShift)
	assert.Contains(t, out, `Invalid input: "nan" is not a number`)
	assert.Contains(t, out, `Invalid input: "+inf" is not a number`)
	assert.Equal(t, 3, strings.Count(out, "Enter the number of prompts sent per doctor's shift [50]: "))
}

func TestCollectRejectsNegativePrice(t *testing.T) {
	inputs, out, err := collect(t, "\n\n\n-0.06\n0.06\n\n\n")
	require.NoError(t, err)

	assert.Equal(t, 0.06, inputs.PricePer1000Tokens)
	assert.Contains(t, out, "price_per_1000_tokens must not be negative")
}

func TestCollectTrimsWhitespace(t *testing.T) {
	inputs, _, err := collect(t, "  60  \n\n\n\n\n\n")
	require.NoError(t, err)
	assert.Equal(t, 60.0, inputs.PromptsPerShift)
}

func TestCollectInputStreamClosed(t *testing.T) {
	_, _, err := collect(t, "50\n5\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input stream closed")
	assert.Contains(t, err.Error(), "tokens_per_call")
}

func TestCollectPrintsCatalogBeforePricePrompt(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n\n\n\n\n\n"), &out, pricing.NewStaticProvider())
	_, err := p.Collect()
	require.NoError(t, err)

	rendered := out.String()
	catalogAt := strings.Index(rendered, "Current OpenAI pricing")
	priceAt := strings.Index(rendered, "Enter the OpenAI price per 1000 tokens")
	tokensAt := strings.Index(rendered, "Enter the average tokens used per API call")

	require.GreaterOrEqual(t, catalogAt, 0)
	assert.Less(t, tokensAt, catalogAt)
	assert.Less(t, catalogAt, priceAt)
	assert.Contains(t, rendered, "gpt-4")
}
