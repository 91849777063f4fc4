package algebra

import "github.com/shopspring/decimal"

// Decimal is the ring of arbitrary-precision decimal numbers.
//
// Addition and multiplication of decimals are exact, so, unlike float64,
// Decimal satisfies the ring laws. Additive[Decimal] is an abelian group
// suitable for money-like range sums.
type Decimal struct {
	D decimal.Decimal
}

// DecimalFromString parses a decimal number, e.g. "12.50".
func DecimalFromString(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{D: d}, nil
}

// DecimalFromInt creates an integral decimal.
func DecimalFromInt(n int64) Decimal {
	return Decimal{D: decimal.NewFromInt(n)}
}

func (x Decimal) Add(y Decimal) Decimal { return Decimal{D: x.D.Add(y.D)} }
func (x Decimal) Mul(y Decimal) Decimal { return Decimal{D: x.D.Mul(y.D)} }
func (x Decimal) Neg() Decimal          { return Decimal{D: x.D.Neg()} }
func (Decimal) Zero() Decimal           { return Decimal{D: decimal.Zero} }
func (Decimal) One() Decimal            { return Decimal{D: decimal.NewFromInt(1)} }

// Equal compares by numeric value, ignoring representation: 1.50 equals 1.5.
func (x Decimal) Equal(y Decimal) bool {
	return x.D.Equal(y.D)
}

func (x Decimal) String() string {
	return x.D.String()
}
