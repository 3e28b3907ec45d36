package hindsight

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Percent float64

var hundred = decimal.NewFromInt(100)

// percentOf returns part as a percentage of whole, or 0 when whole is zero.
func percentOf(part, whole Money) Percent {
	if whole.IsZero() {
		return 0
	}
	return Percent(part.value.Div(whole.value).Mul(hundred).InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
