// Package output handles output formatting.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hightemp/iso3166/codec"
	"github.com/hightemp/iso3166/country"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Result contains the result of a single lookup.
type Result struct {
	Input   string        `json:"input"`
	Code    codec.Country `json:"code"`
	Name    string        `json:"name"`
	Numeric string        `json:"numeric"`
	Error   string        `json:"error,omitempty"`
}

// NewResult builds a successful result for c.
func NewResult(input string, c country.Country) *Result {
	return &Result{
		Input:   input,
		Code:    codec.Wrap(c),
		Name:    c.Name(),
		Numeric: FormatNumeric(c),
	}
}

// NewErrorResult builds a failed result.
func NewErrorResult(input string, err error) *Result {
	return &Result{
		Input: input,
		Error: err.Error(),
	}
}

// FormatNumeric formats the numeric code as three digits.
func FormatNumeric(c country.Country) string {
	if c == country.Unspecified {
		return ""
	}
	return fmt.Sprintf("%03d", c.Numeric())
}

// FormatText formats result as tab-separated text.
func (r *Result) FormatText() string {
	if r.Error != "" {
		return fmt.Sprintf("%s\t-\t-\tERROR: %s", r.Input, r.Error)
	}

	return fmt.Sprintf("%s\t%s\t%s\t%s",
		r.Input,
		r.Code,
		r.Name,
		r.Numeric,
	)
}

// FormatJSON formats result as JSON.
func (r *Result) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// BatchResult contains results for batch processing.
type BatchResult struct {
	Results []*Result
}

// Failed returns the number of results with an error.
func (b *BatchResult) Failed() int {
	n := 0
	for _, r := range b.Results {
		if r.Error != "" {
			n++
		}
	}
	return n
}

// FormatText formats batch results as text (one line per result).
func (b *BatchResult) FormatText() string {
	var lines []string
	for _, r := range b.Results {
		lines = append(lines, r.FormatText())
	}
	return strings.Join(lines, "\n")
}

// FormatJSON formats batch results as JSON array.
func (b *BatchResult) FormatJSON() (string, error) {
	results := b.Results
	if results == nil {
		results = []*Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Table rendering styles.
const (
	StyleTable    = "table"
	StyleCSV      = "csv"
	StyleMarkdown = "markdown"
	StyleHTML     = "html"
)

// RenderTable writes the given countries as a table in the requested style.
func RenderTable(w io.Writer, countries []country.Country, style string) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Code", "Name", "Numeric"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Numeric", Align: text.AlignRight},
	})

	for _, c := range countries {
		t.AppendRow(table.Row{c.String(), c.Name(), FormatNumeric(c)})
	}

	switch style {
	case StyleTable, "":
		t.SetStyle(table.StyleLight)
		t.Render()
	case StyleCSV:
		t.RenderCSV()
	case StyleMarkdown:
		t.RenderMarkdown()
	case StyleHTML:
		t.RenderHTML()
	default:
		return fmt.Errorf("unknown table style %q", style)
	}
	return nil
}
