package hindsight

import "github.com/shopspring/decimal"

// number lists the types accepted by the M and Q factories.
type number interface {
	int | int32 | int64 | uint | uint32 | uint64 | float32 | float64 | decimal.Decimal
}

// newDecimal converts value to a decimal.Decimal.
func newDecimal[T number](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	}
	panic("unsupported number type")
}

// Quantity is a number of shares. It is fractional: budgets are split
// exactly and never rounded to whole shares.
type Quantity struct {
	value decimal.Decimal
}

// Q returns the quantity value.
func Q[T number](value T) Quantity { return Quantity{value: newDecimal(value)} }

func (q Quantity) Add(p Quantity) Quantity         { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Mul(p Quantity) Quantity         { return Quantity{value: q.value.Mul(p.value)} }
func (q Quantity) Equal(p Quantity) bool           { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool                    { return q.value.IsZero() }
func (q Quantity) Decimal() decimal.Decimal        { return q.value }
func (q Quantity) Round(places int32) Quantity     { return Quantity{value: q.value.Round(places)} }
func (q Quantity) StringFixed(places int32) string { return q.value.StringFixed(places) }
func (q Quantity) String() string                  { return q.value.String() }

// MarshalJSON writes the quantity as a decimal string with all its digits.
func (q Quantity) MarshalJSON() ([]byte, error) { return q.value.MarshalJSON() }
