package formatter

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/medwise/llmcost/internal/core/model"
)

// JSONFormatter renders the cost report as indented JSON for scripting.
type JSONFormatter struct {
	out io.Writer
}

// NewJSONFormatter creates a JSON formatter writing to out.
func NewJSONFormatter(out io.Writer) *JSONFormatter {
	return &JSONFormatter{out: out}
}

func (f *JSONFormatter) Format(report model.CostReport) error {
	data, err := sonic.ConfigStd.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.out, string(data))
	return err
}
