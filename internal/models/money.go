package models

import (
	"bytes"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in minor currency units (cents).
// On the wire it is a decimal number in major units.
type Amount int64

const minorUnitExp = 2

// MaxAmount caps a single donation or withdrawal at one billion major units.
const MaxAmount Amount = 100_000_000_000

var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
)

func NewAmountFromDecimal(d decimal.Decimal) (Amount, error) {
	shifted := d.Shift(minorUnitExp)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than %d fractional digits", d.String(), minorUnitExp)
	}
	if shifted.GreaterThan(maxMinorUnits) || shifted.LessThan(minMinorUnits) {
		return 0, fmt.Errorf("amount %s is out of range", d.String())
	}
	return Amount(shifted.IntPart()), nil
}

// CanAdd reports whether a+b stays within the int64 range for a non-negative b.
func (a Amount) CanAdd(b Amount) bool {
	return b <= 0 || a <= math.MaxInt64-b
}

func MajorUnits(units int64) Amount {
	return Amount(units * 100)
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -minorUnitExp)
}

func (a Amount) String() string {
	return a.Decimal().String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = 0
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	v, err := NewAmountFromDecimal(d)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
