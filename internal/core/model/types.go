package model

import (
	"fmt"
	"math"
)

// CostInputs holds the usage parameters for one estimation run. Values are
// set once by the prompter (or from defaults) and never mutated afterwards.
type CostInputs struct {
	PromptsPerShift    float64 `json:"prompts_per_shift"`
	ChainMultiplier    float64 `json:"chain_multiplier"`
	TokensPerCall      float64 `json:"tokens_per_call"`
	PricePer1000Tokens float64 `json:"price_per_1000_tokens"`
	DoctorsPerShift    float64 `json:"doctors_per_shift"`
	ShiftsPerDay       float64 `json:"shifts_per_day"`
}

// CostReport holds the derived cost figures plus the inputs they came from.
// All amounts are USD.
type CostReport struct {
	Inputs               CostInputs `json:"inputs"`
	CostPerShift         float64    `json:"cost_per_shift"`
	CostPerHospitalShift float64    `json:"cost_per_hospital_shift"`
	DailyCost            float64    `json:"daily_cost"`
	MonthlyCost          float64    `json:"monthly_cost"`
	AnnualCost           float64    `json:"annual_cost"`
}

// FieldSpec describes one collectable input field: its prompt text, default
// value, and whether zero is an acceptable entry. The prompter iterates these
// in order, so the slice order is the prompt order.
type FieldSpec struct {
	Name        string
	Prompt      string
	Default     float64
	AllowZero   bool
	ShowCatalog bool
	Assign      func(*CostInputs, float64)
}

// InputFields returns the six input fields in prompt order.
func InputFields() []FieldSpec {
	return []FieldSpec{
		{
			Name:    "prompts_per_shift",
			Prompt:  "Enter the number of prompts sent per doctor's shift",
			Default: 50,
			Assign:  func(in *CostInputs, v float64) { in.PromptsPerShift = v },
		},
		{
			Name:    "chain_multiplier",
			Prompt:  "Enter the chain/interaction/augmentation multiplier",
			Default: 5,
			Assign:  func(in *CostInputs, v float64) { in.ChainMultiplier = v },
		},
		{
			Name:    "tokens_per_call",
			Prompt:  "Enter the average tokens used per API call",
			Default: 2000,
			Assign:  func(in *CostInputs, v float64) { in.TokensPerCall = v },
		},
		{
			Name:        "price_per_1000_tokens",
			Prompt:      "Enter the OpenAI price per 1000 tokens (GPT-4=$0.06) (in $)",
			Default:     0.06,
			AllowZero:   true,
			ShowCatalog: true,
			Assign:      func(in *CostInputs, v float64) { in.PricePer1000Tokens = v },
		},
		{
			Name:    "doctors_per_shift",
			Prompt:  "Enter the number of doctors on shift per hospital",
			Default: 10,
			Assign:  func(in *CostInputs, v float64) { in.DoctorsPerShift = v },
		},
		{
			Name:    "shifts_per_day",
			Prompt:  "Enter the number of shifts per day",
			Default: 3,
			Assign:  func(in *CostInputs, v float64) { in.ShiftsPerDay = v },
		},
	}
}

// DefaultInputs returns a CostInputs populated with every field's default.
func DefaultInputs() CostInputs {
	var in CostInputs
	for _, spec := range InputFields() {
		spec.Assign(&in, spec.Default)
	}
	return in
}

// Validate checks the field constraints: every field must be positive except
// the token price, which may be zero.
func (in CostInputs) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"prompts_per_shift", in.PromptsPerShift},
		{"chain_multiplier", in.ChainMultiplier},
		{"tokens_per_call", in.TokensPerCall},
		{"doctors_per_shift", in.DoctorsPerShift},
		{"shifts_per_day", in.ShiftsPerDay},
	}
	for _, f := range positive {
		// Written so NaN fails too.
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be a positive number, got %v", f.name, f.value)
		}
	}
	if !(in.PricePer1000Tokens >= 0) || math.IsInf(in.PricePer1000Tokens, 0) {
		return fmt.Errorf("price_per_1000_tokens must be a non-negative number, got %v", in.PricePer1000Tokens)
	}
	return nil
}
