package pricenorm

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Convention names the ledger's raw price scale. It is fixed per deployment
// via config and is never guessed from the magnitude of a value, since both
// scales can produce overlapping ranges.
type Convention string

const (
	// ConventionBase18 scales raw values by 10^18 (wei-style base units).
	ConventionBase18 Convention = "base18"
	// ConventionHundredths treats each unit after dividing by 10^16 as
	// 1/100 of the reference currency: displayPrice = (raw / 10^16) / 100.
	ConventionHundredths Convention = "hundredths"
)

func (c Convention) IsValid() bool {
	return c == ConventionBase18 || c == ConventionHundredths
}

type Normalizer interface {
	Normalize(raw *big.Int) (decimal.Decimal, error)
}
