package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFieldsOrder(t *testing.T) {
	fields := InputFields()
	require.Len(t, fields, 6)

	expected := []string{
		"prompts_per_shift",
		"chain_multiplier",
		"tokens_per_call",
		"price_per_1000_tokens",
		"doctors_per_shift",
		"shifts_per_day",
	}
	for i, name := range expected {
		assert.Equal(t, name, fields[i].Name)
	}
}

func TestDefaultInputs(t *testing.T) {
	in := DefaultInputs()

	assert.Equal(t, 50.0, in.PromptsPerShift)
	assert.Equal(t, 5.0, in.ChainMultiplier)
	assert.Equal(t, 2000.0, in.TokensPerCall)
	assert.Equal(t, 0.06, in.PricePer1000Tokens)
	assert.Equal(t, 10.0, in.DoctorsPerShift)
	assert.Equal(t, 3.0, in.ShiftsPerDay)

	assert.NoError(t, in.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CostInputs)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(in *CostInputs) {},
		},
		{
			name:   "zero price is valid",
			mutate: func(in *CostInputs) { in.PricePer1000Tokens = 0 },
		},
		{
			name:    "negative price rejected",
			mutate:  func(in *CostInputs) { in.PricePer1000Tokens = -0.01 },
			wantErr: "price_per_1000_tokens",
		},
		{
			name:    "zero prompts rejected",
			mutate:  func(in *CostInputs) { in.PromptsPerShift = 0 },
			wantErr: "prompts_per_shift",
		},
		{
			name:    "negative multiplier rejected",
			mutate:  func(in *CostInputs) { in.ChainMultiplier = -1 },
			wantErr: "chain_multiplier",
		},
		{
			name:    "zero tokens rejected",
			mutate:  func(in *CostInputs) { in.TokensPerCall = 0 },
			wantErr: "tokens_per_call",
		},
		{
			name:    "zero doctors rejected",
			mutate:  func(in *CostInputs) { in.DoctorsPerShift = 0 },
			wantErr: "doctors_per_shift",
		},
		{
			name:    "zero shifts rejected",
			mutate:  func(in *CostInputs) { in.ShiftsPerDay = 0 },
			wantErr: "shifts_per_day",
		},
		{
			name:    "NaN prompts rejected",
			mutate:  func(in *CostInputs) { in.PromptsPerShift = math.NaN() },
			wantErr: "prompts_per_shift",
		},
		{
			name:    "NaN price rejected",
			mutate:  func(in *CostInputs) { in.PricePer1000Tokens = math.NaN() },
			wantErr: "price_per_1000_tokens",
		},
		{
			name:    "infinite tokens rejected",
			mutate:  func(in *CostInputs) { in.TokensPerCall = math.Inf(1) },
			wantErr: "tokens_per_call",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultInputs()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
