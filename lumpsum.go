package hindsight

import (
	"fmt"

	"github.com/etnz/hindsight/date"
)

// LumpSum simulates buying amount worth of the instrument at the Low of day
// on, and holding it until the last day of the series.
//
// The purchase day must be a trading day of the series, otherwise a *Skip
// with reason PurchaseDateNotFound is returned.
func LumpSum(s *Series, amount Money, on date.Date) (*Outcome, error) {
	q, ok := s.OnExact(on)
	if !ok {
		return nil, &Skip{ID: s.ID(), Reason: PurchaseDateNotFound, Err: fmt.Errorf("%w: %v", ErrPurchaseDateNotFound, on)}
	}
	p, err := buy(on, q.Low, amount)
	if err != nil {
		return nil, &Skip{ID: s.ID(), Reason: InvalidPrice, Err: fmt.Errorf("%w: Low is %v on %v", err, q.Low, on)}
	}
	return settle(s, []Purchase{p}), nil
}
