package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/vorsorge/pension-calculator/internal/calculation"
	"github.com/vorsorge/pension-calculator/internal/domain"
)

// CSVFormatter exports one summary row per product, ranked, for
// spreadsheet use. Amounts carry two decimals and no currency symbol.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := []string{
		"rank", "name", "total_paid", "gross_paid", "state_allowances",
		"tax_savings", "total_value", "gross_value", "profit",
		"return_percentage", "net_return", "total_costs",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	comparison := calculation.NewComparison(report.Results)
	for i, r := range comparison.Results {
		row := []string{
			strconv.Itoa(i + 1),
			r.Name,
			r.TotalPaid.StringFixed(2),
			r.GrossPaid.StringFixed(2),
			r.StateAllowances.StringFixed(2),
			r.TaxSavings.StringFixed(2),
			r.TotalValue.StringFixed(2),
			r.GrossValue.StringFixed(2),
			r.Profit().StringFixed(2),
			r.ReturnPercentage().StringFixed(2),
			r.NetReturn.StringFixed(4),
			r.TotalCosts.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
