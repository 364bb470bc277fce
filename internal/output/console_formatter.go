package output

import (
	"fmt"
	"strings"

	"github.com/vorsorge/pension-calculator/internal/calculation"
	"github.com/vorsorge/pension-calculator/internal/domain"
)

// ConsoleFormatter renders the comparison, delta report and recommendation
// as plain text, plus a withdrawal section when one was simulated.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var b strings.Builder

	comparison := calculation.NewComparison(report.Results)
	b.WriteString(comparison.Summary())
	if len(comparison.Results) > 1 {
		b.WriteString(comparison.DeltaReport())
	}
	b.WriteString(comparison.Recommendation())

	for _, w := range report.Withdrawals {
		b.WriteString("\n" + strings.Repeat("=", 80) + "\n")
		b.WriteString("ENTNAHMEPHASE\n")
		b.WriteString(strings.Repeat("=", 80) + "\n\n")
		fmt.Fprintf(&b, "Strategie:                %s\n", w.StrategyName)
		fmt.Fprintf(&b, "Startkapital:             %s\n", FormatCurrency(w.InitialCapital))
		fmt.Fprintf(&b, "Gesamtentnahmen:          %s\n", FormatCurrency(w.TotalWithdrawals))
		fmt.Fprintf(&b, "Restkapital:              %s\n", FormatCurrency(w.RemainingCapital))
		fmt.Fprintf(&b, "Durchschnittliche Rente:  %s/Monat\n", FormatCurrency(w.AvgMonthlyWithdrawal))
		if w.CapitalDepletedYear > 0 {
			fmt.Fprintf(&b, "Kapital aufgebraucht:     Jahr %d\n", w.CapitalDepletedYear)
		}
		fmt.Fprintf(&b, "Erfolgsquote:             %s\n", FormatPercentage(w.SuccessRate))
	}

	return []byte(b.String()), nil
}
