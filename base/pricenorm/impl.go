package pricenorm

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

type impl struct {
	convention Convention
}

func New(convention Convention) (Normalizer, error) {
	if !convention.IsValid() {
		return nil, xerrors.Errorf("unknown price convention %q", convention)
	}
	return &impl{convention: convention}, nil
}

func (n *impl) Normalize(raw *big.Int) (decimal.Decimal, error) {
	if raw == nil {
		return decimal.Zero, xerrors.New("nil raw price")
	}
	switch n.convention {
	case ConventionBase18:
		return decimal.NewFromBigInt(raw, -18), nil
	case ConventionHundredths:
		// (raw / 10^16) / 100, kept exact by shifting the exponent
		// instead of dividing.
		return decimal.NewFromBigInt(raw, -16).Shift(-2), nil
	}
	return decimal.Zero, xerrors.Errorf("unknown price convention %q", n.convention)
}
