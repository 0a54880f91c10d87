// Package estimator derives the cost figures from a set of usage inputs.
// The computation is pure so it can be tested without console interaction.
package estimator

import "github.com/medwise/llmcost/internal/core/model"

const (
	daysPerMonth  = 30
	monthsPerYear = 12
)

// TokensPerShift returns the total tokens one doctor consumes in one shift.
func TokensPerShift(in model.CostInputs) float64 {
	return in.PromptsPerShift * in.ChainMultiplier * in.TokensPerCall
}

// Compute derives the five cost figures from the inputs. No rounding is
// applied; formatting rounds at presentation time.
func Compute(in model.CostInputs) model.CostReport {
	costPerShift := TokensPerShift(in) / 1000 * in.PricePer1000Tokens
	costPerHospitalShift := costPerShift * in.DoctorsPerShift
	dailyCost := costPerHospitalShift * in.ShiftsPerDay
	monthlyCost := dailyCost * daysPerMonth

	return model.CostReport{
		Inputs:               in,
		CostPerShift:         costPerShift,
		CostPerHospitalShift: costPerHospitalShift,
		DailyCost:            dailyCost,
		MonthlyCost:          monthlyCost,
		AnnualCost:           monthlyCost * monthsPerYear,
	}
}
