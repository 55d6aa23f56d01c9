package models

import (
	"github.com/shopspring/decimal"
)

// AmountScale matches the numeric(20,8) ledger columns.
const AmountScale = 8

// Amount is a fixed-point ledger value. It scans from and stores to numeric
// columns through the embedded decimal and always renders with eight places.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d.Round(AmountScale)}
}

// ParseAmount parses a decimal string such as "2.5".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(d), nil
}

func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) String() string {
	return a.StringFixed(AmountScale)
}

func (a Amount) Add(b Amount) Amount {
	return NewAmount(a.Decimal.Add(b.Decimal))
}

func (a Amount) Sub(b Amount) Amount {
	return NewAmount(a.Decimal.Sub(b.Decimal))
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}
