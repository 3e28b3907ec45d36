package hindsight

import (
	"github.com/etnz/hindsight/date"
)

// Purchase is a single buy of an instrument.
type Purchase struct {
	On     date.Date `json:"on"`
	Price  Money     `json:"price"`
	Shares Quantity  `json:"shares"`
	Amount Money     `json:"amount"`
}

// buy spends amount at price. Price must be positive.
func buy(on date.Date, price, amount Money) (Purchase, error) {
	if !price.IsPositive() {
		return Purchase{}, ErrInvalidPrice
	}
	return Purchase{
		On:     on,
		Price:  price,
		Shares: amount.DivPrice(price),
		Amount: amount,
	}, nil
}

// Outcome is the result of simulating an investment strategy on one
// instrument: what was bought, and what it is worth at the end of the data.
type Outcome struct {
	ID         string     `json:"id"`
	Purchases  []Purchase `json:"purchases"`
	Shares     Quantity   `json:"shares"`
	Invested   Money      `json:"invested"`
	FinalDate  date.Date  `json:"final_date"`
	FinalPrice Money      `json:"final_price"`
	Profit     Money      `json:"profit"`
	ProfitPct  Percent    `json:"profit_pct"`
}

// Value returns the worth of the position at the final price.
func (o *Outcome) Value() Money { return o.FinalPrice.Mul(o.Shares) }

// settle computes the totals of an outcome out of its purchases, valued at
// the last point of the series.
func settle(s *Series, purchases []Purchase) *Outcome {
	last, q := s.Last()
	o := &Outcome{
		ID:         s.ID(),
		Purchases:  purchases,
		Invested:   M(0, q.Close.Currency()),
		FinalDate:  last,
		FinalPrice: q.Close,
	}
	if o.Purchases == nil {
		o.Purchases = []Purchase{}
	}
	for _, p := range purchases {
		o.Shares = o.Shares.Add(p.Shares)
		o.Invested = o.Invested.Add(p.Amount)
	}
	o.Profit = o.Value().Sub(o.Invested)
	o.ProfitPct = percentOf(o.Profit, o.Invested)
	return o
}
