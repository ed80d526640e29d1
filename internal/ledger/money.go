package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/account-ledger/internal/models"
)

// DefaultScale is the number of fractional digits kept for USD.
const DefaultScale int32 = 2

// roundHalfDown rounds d to places fractional digits. Exact halves go toward
// zero; everything else goes to the nearest value.
func roundHalfDown(d decimal.Decimal, places int32) decimal.Decimal {
	truncated := d.Truncate(places)
	rest := d.Sub(truncated).Abs()
	half := decimal.New(5, -(places + 1))
	if rest.LessThanOrEqual(half) {
		return truncated
	}
	unit := decimal.New(1, -places)
	if d.IsNegative() {
		return truncated.Sub(unit)
	}
	return truncated.Add(unit)
}

// adjust returns the balance account would hold after applying delta. Both
// sides are brought to the currency scale before summing. Nothing is mutated.
func (s *Service) adjust(account *models.Account, delta decimal.Decimal) decimal.Decimal {
	current := roundHalfDown(account.Balance, s.scale)
	change := roundHalfDown(delta, s.scale)
	return current.Add(change)
}
