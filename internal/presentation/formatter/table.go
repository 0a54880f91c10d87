package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/medwise/llmcost/internal/core/model"
	"github.com/medwise/llmcost/internal/util"
)

const (
	tableTitle = "LLM Costing Analysis:"
	descHeader = "Description"
	costHeader = "Cost"
)

// TableFormatter renders the cost report as a fixed-width table, one row per
// derived figure.
type TableFormatter struct {
	out io.Writer
}

// NewTableFormatter creates a table formatter writing to out.
func NewTableFormatter(out io.Writer) *TableFormatter {
	return &TableFormatter{out: out}
}

type tableRow struct {
	label  string
	amount float64
}

func reportRows(report model.CostReport) []tableRow {
	return []tableRow{
		{"OpenAI Cost per shift", report.CostPerShift},
		{"Cost per hospital per shift", report.CostPerHospitalShift},
		{"Daily Costs of OpenAI API Calls", report.DailyCost},
		{"OpenAI API costs per hospital per month", report.MonthlyCost},
		{"Annual cost per hospital for OpenAI API", report.AnnualCost},
	}
}

// Format writes the title, header, separator rules and the five cost rows.
// Amounts are comma-grouped with two decimals and right-aligned within a
// shared column sized to the widest amount.
func (f *TableFormatter) Format(report model.CostReport) error {
	rows := reportRows(report)

	descWidth := util.GetDisplayWidth(descHeader)
	amountWidth := 0
	for _, row := range rows {
		if w := util.GetDisplayWidth(row.label); w > descWidth {
			descWidth = w
		}
		if w := util.GetDisplayWidth(util.FormatAmount(row.amount)); w > amountWidth {
			amountWidth = w
		}
	}
	// One leading pad slot between the $ and the widest amount.
	amountWidth++
	costWidth := amountWidth + 1 // "$" prefix

	if _, err := fmt.Fprintln(f.out, tableTitle); err != nil {
		return err
	}

	rule := "|" + strings.Repeat("-", descWidth+2) + "+" + strings.Repeat("-", costWidth+2) + "|"

	fmt.Fprintf(f.out, "| %-*s | %*s |\n", descWidth, descHeader, costWidth, costHeader)
	fmt.Fprintln(f.out, rule)
	for _, row := range rows {
		cell := fmt.Sprintf("$%*s", amountWidth, util.FormatAmount(row.amount))
		if _, err := fmt.Fprintf(f.out, "| %-*s | %s |\n", descWidth, row.label, cell); err != nil {
			return err
		}
	}
	fmt.Fprintln(f.out, rule)

	return nil
}
