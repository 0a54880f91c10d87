package formatter

import (
	"fmt"
	"strconv"

	"github.com/medwise/llmcost/internal/core/model"
)

// ScenarioDescription renders the prose summary of the estimation inputs.
func ScenarioDescription(in model.CostInputs) string {
	return fmt.Sprintf(
		"The scenario involves an example app 'Doctor Diagnosis Assistant App', which utilizes the OpenAI API. "+
			"Each doctor's shift involves sending an average of %s prompts to the API. "+
			"The average chain callbacks/augmentation multiplier is set at %s, "+
			"with an average usage of %s tokens per API call. "+
			"The cost of using the OpenAI API is $%.2f per 1000 tokens. "+
			"In each shift, there are %s doctors working at the hospital, "+
			"and the hospital operates %s shifts per day.",
		formatInput(in.PromptsPerShift),
		formatInput(in.ChainMultiplier),
		formatInput(in.TokensPerCall),
		in.PricePer1000Tokens,
		formatInput(in.DoctorsPerShift),
		formatInput(in.ShiftsPerDay),
	)
}

// formatInput renders an input value without trailing zeros: 50 not 50.000000.
func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
