package calculation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vorsorge/pension-calculator/internal/domain"
	money "github.com/vorsorge/pension-calculator/pkg/decimal"
)

const separator = "================================================================================"

// Comparison ranks product results by their final value after taxes.
type Comparison struct {
	Results []domain.InvestmentResult
}

// NewComparison sorts the results descending by TotalValue. The sort is
// stable, so products with equal value keep their insertion order.
func NewComparison(results []domain.InvestmentResult) *Comparison {
	sorted := make([]domain.InvestmentResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalValue.GreaterThan(sorted[j].TotalValue)
	})
	return &Comparison{Results: sorted}
}

// Best returns the top-ranked result.
func (c *Comparison) Best() domain.InvestmentResult {
	return c.Results[0]
}

// Summary renders rank, contributions, benefits, final value, profit, ROI
// and annualized net return per product.
func (c *Comparison) Summary() string {
	var b strings.Builder

	b.WriteString("\n" + separator + "\n")
	b.WriteString("VERGLEICH ALTERSVORSORGE-PRODUKTE\n")
	b.WriteString(separator + "\n\n")

	for i, result := range c.Results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, result.Name)
		b.WriteString(strings.Repeat("-", 80) + "\n")
		fmt.Fprintf(&b, "   Eigene Einzahlungen:     %18s\n", money.FromDecimal(result.TotalPaid).Format())

		if result.TaxBenefit.IsPositive() {
			fmt.Fprintf(&b, "   Steuervorteile/Zulagen:  %18s\n", money.FromDecimal(result.TaxBenefit).Format())
			fmt.Fprintf(&b, "   Effektive Kosten:        %18s\n", money.FromDecimal(result.TotalPaid.Sub(result.TaxBenefit)).Format())
		}

		fmt.Fprintf(&b, "   Endwert (nach Steuern):  %18s\n", money.FromDecimal(result.TotalValue).Format())
		fmt.Fprintf(&b, "   Gewinn:                  %18s\n", money.FromDecimal(result.Profit()).Format())
		fmt.Fprintf(&b, "   Rendite:                 %17s%%\n", result.ReturnPercentage().StringFixed(2))
		fmt.Fprintf(&b, "   Jährliche Nettorendite:  %17s%%\n", result.NetReturn.Mul(hundred).StringFixed(2))
		b.WriteString("\n")
	}

	return b.String()
}

// DeltaReport shows each product's shortfall against the best one.
func (c *Comparison) DeltaReport() string {
	var b strings.Builder
	best := c.Best()

	b.WriteString("\n" + separator + "\n")
	b.WriteString("VERGLEICH ZUM BESTEN PRODUKT\n")
	b.WriteString(separator + "\n\n")

	for _, result := range c.Results[1:] {
		difference := best.TotalValue.Sub(result.TotalValue)
		percentage := difference.Div(best.TotalValue).Mul(hundred)
		fmt.Fprintf(&b, "%s:\n", result.Name)
		fmt.Fprintf(&b, "   Differenz zu %s: -%s (%s%%)\n\n",
			best.Name, money.FromDecimal(difference).Format(), percentage.StringFixed(2))
	}

	return b.String()
}

// YearlyComparison renders the year-by-year balances side by side.
func (c *Comparison) YearlyComparison() string {
	var b strings.Builder

	b.WriteString("\n" + separator + "\n")
	b.WriteString("ENTWICKLUNG ÜBER DIE JAHRE\n")
	b.WriteString(separator + "\n\n")

	fmt.Fprintf(&b, "%-6s", "Jahr")
	for _, result := range c.Results {
		name := result.Name
		if len(name) > 20 {
			name = name[:20]
		}
		fmt.Fprintf(&b, "%22s", name)
	}
	b.WriteString("\n" + strings.Repeat("-", 80) + "\n")

	maxYears := 0
	for _, r := range c.Results {
		if len(r.YearlyValues) > maxYears {
			maxYears = len(r.YearlyValues)
		}
	}

	for yearIdx := 0; yearIdx < maxYears; yearIdx++ {
		fmt.Fprintf(&b, "%-6d", yearIdx+1)
		for _, result := range c.Results {
			if yearIdx < len(result.YearlyValues) {
				fmt.Fprintf(&b, "%22s", money.FromDecimal(result.YearlyValues[yearIdx].Value).Format())
			} else {
				fmt.Fprintf(&b, "%22s", "")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Recommendation names the top-ranked product with the standard caveats.
func (c *Comparison) Recommendation() string {
	best := c.Best()

	var b strings.Builder
	b.WriteString("\n" + separator + "\n")
	b.WriteString("EMPFEHLUNG\n")
	b.WriteString(separator + "\n\n")

	fmt.Fprintf(&b, "Basierend auf den berechneten Werten bietet %s den höchsten Endwert von %s.\n\n",
		best.Name, money.FromDecimal(best.TotalValue).Format())

	b.WriteString("WICHTIGE HINWEISE:\n")
	b.WriteString("- Diese Berechnung ist eine Vereinfachung und ersetzt keine Beratung\n")
	b.WriteString("- Flexibilität: ETFs können jederzeit verkauft werden, Riester/Rürup nicht\n")
	b.WriteString("- Garantien: Riester garantiert Kapitalerhalt, ETFs unterliegen Schwankungen\n")
	b.WriteString("- Persönliche Situation: Steuervorteile variieren je nach Einkommen\n")
	b.WriteString("- Inflation wurde nicht berücksichtigt\n")

	return b.String()
}
