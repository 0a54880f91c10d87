package formatter

import (
	"fmt"
	"io"

	"github.com/medwise/llmcost/internal/core/model"
)

// ReportFormatter renders a cost report to its output stream.
type ReportFormatter interface {
	Format(report model.CostReport) error
}

// NewFormatter selects a formatter by name.
func NewFormatter(format string, out io.Writer) (ReportFormatter, error) {
	switch format {
	case "table", "":
		return NewTableFormatter(out), nil
	case "json":
		return NewJSONFormatter(out), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
