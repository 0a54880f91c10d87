package commands

import (
	"fmt"
	"os"

	"github.com/medwise/llmcost/internal/core/model"
	"github.com/medwise/llmcost/internal/core/pricing"
	"github.com/medwise/llmcost/internal/estimator"
	"github.com/medwise/llmcost/internal/presentation/formatter"
	"github.com/medwise/llmcost/internal/presentation/interaction"
	"github.com/medwise/llmcost/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Logging related
	debug   bool
	logFile string

	// Input related
	useDefaults bool

	// Output related
	outputFormat string
	showPricing  bool

	rootCmd = &cobra.Command{
		Use:   "llmcost",
		Short: "Hospital LLM API cost estimator",
		Long: `llmcost estimates the cost of operating an LLM API inside a hospital workflow.

It prompts for six usage parameters (press Enter to accept each default),
derives the per-shift, per-hospital-shift, daily, monthly and annual costs,
and prints a scenario description followed by a cost table.

Examples:
  llmcost                      # Interactive prompts, table output
  llmcost --defaults           # Skip prompts, estimate with all defaults
  llmcost --output json        # Machine-readable report
  llmcost --pricing            # Print the OpenAI price catalog and exit
  echo "" | llmcost            # Piped input works; empty lines pick defaults`,
		RunE:         runEstimate,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.Flags().BoolVar(&useDefaults, "defaults", false,
		"Skip prompts and estimate with every field's default")
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json)")
	rootCmd.Flags().BoolVar(&showPricing, "pricing", false,
		"Print the OpenAI price catalog and exit")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"Append logs to this file")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	util.InitLogger(logLevel, logFile, debug)

	out := cmd.OutOrStdout()
	provider := pricing.NewStaticProvider()

	if showPricing {
		catalog, err := pricing.CatalogJSON(provider)
		if err != nil {
			return fmt.Errorf("failed to render pricing catalog: %w", err)
		}
		fmt.Fprintln(out, catalog)
		return nil
	}

	var inputs model.CostInputs
	if useDefaults {
		inputs = model.DefaultInputs()
	} else {
		// Echo the catalog mid-prompts only on a real terminal; piped
		// input keeps the output stream clean.
		var catalog pricing.CatalogProvider
		if term.IsTerminal(int(os.Stdin.Fd())) {
			catalog = provider
		}

		prompter := interaction.NewPrompter(cmd.InOrStdin(), out, catalog)
		collected, err := prompter.Collect()
		if err != nil {
			return fmt.Errorf("failed to collect inputs: %w", err)
		}
		inputs = collected
	}

	if err := inputs.Validate(); err != nil {
		return fmt.Errorf("invalid inputs: %w", err)
	}

	report := estimator.Compute(inputs)
	util.LogDebugf("computed report: daily=%.2f monthly=%.2f annual=%.2f",
		report.DailyCost, report.MonthlyCost, report.AnnualCost)

	f, err := formatter.NewFormatter(outputFormat, out)
	if err != nil {
		return err
	}

	if outputFormat != "json" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Scenario Description:")
		fmt.Fprintln(out, formatter.ScenarioDescription(inputs))
		fmt.Fprintln(out)
	}

	return f.Format(report)
}

func Execute() error {
	return rootCmd.Execute()
}
