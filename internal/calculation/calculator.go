package calculation

import (
	"errors"

	"github.com/vorsorge/pension-calculator/internal/domain"
)

// Calculator is implemented by every product projection. Calculate is a
// pure function of the constructor inputs; it only fails on genuinely
// invalid configurations.
type Calculator interface {
	Name() string
	Calculate() (domain.InvestmentResult, error)
}

// ErrRebalancingCount rejects rebalancing counts that cannot be evenly
// spaced across the horizon.
var ErrRebalancingCount = errors.New("rebalancing count must be smaller than the horizon in years")
