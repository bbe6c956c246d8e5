package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/de-tools/csv-reporter/pkg/models/domain"
)

// Style selects the table layout.
type Style string

const (
	// StyleSimple prints the header, a dashed rule per column and the body,
	// with two spaces between columns.
	StyleSimple Style = "simple"
	// StyleGrid prints a bordered grid.
	StyleGrid Style = "grid"
)

// ParseStyle validates a style name coming from a flag or profile.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleSimple, StyleGrid:
		return Style(s), nil
	}
	return "", fmt.Errorf("unsupported table style: %q", s)
}

// Reporter outputs reports to the console as aligned text tables. Cell values
// are written verbatim; the reporter never re-parses or re-formats them.
type Reporter struct {
	writer io.Writer
	style  Style
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer, style Style) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	if style == "" {
		style = StyleSimple
	}
	return &Reporter{writer: writer, style: style}
}

func (c *Reporter) Handle(report *domain.Report) error {
	if len(report.Headers) == 0 {
		return nil
	}

	widths := columnWidths(report)

	var sb strings.Builder
	switch c.style {
	case StyleGrid:
		renderGrid(&sb, report, widths)
	default:
		renderSimple(&sb, report, widths)
	}

	_, err := io.WriteString(c.writer, sb.String())
	return err
}

func renderSimple(sb *strings.Builder, report *domain.Report, widths []int) {
	write := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padRight(cell, widths[i])
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteByte('\n')
	}

	write(report.Headers)

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	write(rule)

	for _, row := range report.Rows {
		write(row)
	}
}

func renderGrid(sb *strings.Builder, report *domain.Report, widths []int) {
	separator := func() {
		for _, w := range widths {
			sb.WriteByte('+')
			sb.WriteString(strings.Repeat("-", w+2))
		}
		sb.WriteString("+\n")
	}
	write := func(cells []string) {
		for i, cell := range cells {
			sb.WriteString("| ")
			sb.WriteString(padRight(cell, widths[i]))
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}

	separator()
	write(report.Headers)
	separator()
	for _, row := range report.Rows {
		write(row)
	}
	separator()
}

// columnWidths sizes each column to its widest cell, counted in runes so
// multibyte headers such as the rank column align correctly.
func columnWidths(report *domain.Report) []int {
	widths := make([]int, len(report.Headers))
	for i, h := range report.Headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range report.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func padRight(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
