package report

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/de-tools/csv-reporter/pkg/models/domain"
	"github.com/montanaflynn/stats"
)

const (
	positionColumn    = "position"
	performanceColumn = "performance"
)

// Performance groups rows by the position column, averages the performance
// column per group and ranks the groups by descending average. Group keys are
// compared as exact strings: no trimming, no case folding.
func Performance(table domain.Table) (domain.Report, error) {
	posIdx, err := columnIndex(table.Header, positionColumn)
	if err != nil {
		return domain.Report{}, err
	}
	perfIdx, err := columnIndex(table.Header, performanceColumn)
	if err != nil {
		return domain.Report{}, err
	}

	observations := make(map[string][]float64)
	var order []string

	for i, row := range table.Rows {
		position := row[posIdx]
		value, err := strconv.ParseFloat(row[perfIdx], 64)
		if err != nil {
			return domain.Report{}, fmt.Errorf("%w: row %d column %q: %q",
				domain.ErrInvalidValue, i+1, performanceColumn, row[perfIdx])
		}
		if _, seen := observations[position]; !seen {
			order = append(order, position)
		}
		observations[position] = append(observations[position], value)
	}

	type group struct {
		position  string
		average   float64
		formatted string
	}

	groups := make([]group, 0, len(order))
	for _, position := range order {
		mean, err := stats.Mean(observations[position])
		if err != nil {
			return domain.Report{}, fmt.Errorf("failed to average group %q: %w", position, err)
		}
		formatted := strconv.FormatFloat(mean, 'f', 2, 64)
		// the sort key is the rounded value as displayed, so groups whose
		// averages agree to two decimals tie and keep first-occurrence order
		average, _ := strconv.ParseFloat(formatted, 64)
		groups = append(groups, group{position: position, average: average, formatted: formatted})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].average > groups[j].average
	})

	rows := make([][]string, 0, len(groups))
	for i, g := range groups {
		rows = append(rows, []string{strconv.Itoa(i + 1), g.position, g.formatted})
	}

	return domain.Report{
		Headers: []string{"№", positionColumn, performanceColumn},
		Rows:    rows,
	}, nil
}

func columnIndex(header domain.Row, name string) (int, error) {
	for i, col := range header {
		if col == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrMissingColumn, name)
}
