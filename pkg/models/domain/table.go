package domain

// Row is a single CSV record, positionally aligned with its table header.
type Row []string

// Table is an in-memory CSV dataset: a header row plus data rows. Every row
// is assumed to have as many fields as the header; this is not validated.
type Table struct {
	Header Row
	Rows   []Row
}

// Report is a fully formatted report result ready for rendering. Cell values
// are final strings (averages fixed to two decimals, ranks "1".."N").
type Report struct {
	Headers []string
	Rows    [][]string
}
