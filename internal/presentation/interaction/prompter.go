// Package interaction collects the estimator inputs from an interactive
// stream. The reader and writer are injected so tests never touch the
// console.
package interaction

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/medwise/llmcost/internal/core/model"
	"github.com/medwise/llmcost/internal/core/pricing"
	"github.com/medwise/llmcost/internal/util"
)

// Prompter reads the six input fields line by line, falling back to each
// field's default on an empty line.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	catalog pricing.CatalogProvider
}

// NewPrompter creates a prompter over the given streams. The catalog is
// printed before the token-price prompt; pass nil to suppress it.
func NewPrompter(in io.Reader, out io.Writer, catalog pricing.CatalogProvider) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		catalog: catalog,
	}
}

// Collect prompts for every input field in order and returns the populated
// inputs. Malformed or out-of-range entries re-issue the same prompt; the
// only error path is the input stream closing mid-collection.
func (p *Prompter) Collect() (model.CostInputs, error) {
	var inputs model.CostInputs
	for _, spec := range model.InputFields() {
		if spec.ShowCatalog && p.catalog != nil {
			p.printCatalog()
		}

		value, err := p.promptFloat(spec)
		if err != nil {
			return model.CostInputs{}, err
		}
		spec.Assign(&inputs, value)
	}
	return inputs, nil
}

func (p *Prompter) promptFloat(spec model.FieldSpec) (float64, error) {
	defaultStr := strconv.FormatFloat(spec.Default, 'f', -1, 64)

	for {
		fmt.Fprintf(p.out, "%s [%s]: ", spec.Prompt, defaultStr)

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return 0, fmt.Errorf("reading %s: %w", spec.Name, err)
			}
			return 0, fmt.Errorf("reading %s: input stream closed", spec.Name)
		}

		line := strings.TrimSpace(p.scanner.Text())
		if line == "" {
			return spec.Default, nil
		}

		value, err := strconv.ParseFloat(line, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			util.LogDebugf("rejected input for %s: %q", spec.Name, line)
			fmt.Fprintf(p.out, "Invalid input: %q is not a number\n", line)
			continue
		}

		if value < 0 && spec.AllowZero {
			fmt.Fprintf(p.out, "Invalid input: %s must not be negative\n", spec.Name)
			continue
		}
		if value <= 0 && !spec.AllowZero {
			fmt.Fprintf(p.out, "Invalid input: %s must be a positive number\n", spec.Name)
			continue
		}

		return value, nil
	}
}

func (p *Prompter) printCatalog() {
	out, err := pricing.CatalogJSON(p.catalog)
	if err != nil {
		util.LogWarnf("cannot render pricing catalog: %v", err)
		return
	}
	fmt.Fprintf(p.out, "Current OpenAI pricing (per 1K tokens):\n%s\n", out)
}
