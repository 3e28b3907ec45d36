package hindsight

import (
	"fmt"
	"iter"

	"github.com/etnz/hindsight/date"
)

// Anchor selects the monthly investment days of a recurring plan.
type Anchor int

const (
	// AnchorMonthStart invests on the first day of every month, starting with
	// the first month start on or after the first trading day.
	AnchorMonthStart Anchor = iota
	// AnchorFirstTrade invests on the first trading day, then on the same day
	// of every following month. Days past the end of a short month fall on
	// its last day.
	AnchorFirstTrade
)

// ParseAnchor parses "month-start" or "first-trade". The empty string is
// AnchorMonthStart.
func ParseAnchor(s string) (Anchor, error) {
	switch s {
	case "", "month-start":
		return AnchorMonthStart, nil
	case "first-trade":
		return AnchorFirstTrade, nil
	default:
		return 0, fmt.Errorf("unknown anchor %q: expected month-start or first-trade", s)
	}
}

func (a Anchor) String() string {
	switch a {
	case AnchorMonthStart:
		return "month-start"
	case AnchorFirstTrade:
		return "first-trade"
	default:
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
}

func (a Anchor) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Anchor) UnmarshalText(text []byte) (err error) {
	*a, err = ParseAnchor(string(text))
	return err
}

// Schedule returns the investment days within r.
func (a Anchor) Schedule(r date.Range) iter.Seq[date.Date] {
	if a == AnchorFirstTrade {
		return r.Monthly()
	}
	return r.MonthStarts()
}

// Recurring simulates investing amount every month, from the first trading
// day on or after start until the end of the series.
//
// Each investment day is resolved to the last trading day on or before it,
// searching the whole series, and bought at that day's Low. The purchase is
// recorded on the investment day. Days that cannot be resolved are skipped and
// contribute nothing.
func Recurring(s *Series, amount Money, start date.Date, anchor Anchor) (*Outcome, error) {
	window, ok := s.Since(start)
	if !ok {
		return nil, &Skip{ID: s.ID(), Reason: NoDataAfterStart, Err: fmt.Errorf("%w %v", ErrNoDataAfterStart, start)}
	}
	var purchases []Purchase
	for day := range anchor.Schedule(window) {
		on, q, ok := s.AtOrBefore(day)
		if !ok {
			continue
		}
		p, err := buy(day, q.Low, amount)
		if err != nil {
			return nil, &Skip{ID: s.ID(), Reason: InvalidPrice, Err: fmt.Errorf("%w: Low is %v on %v", err, q.Low, on)}
		}
		purchases = append(purchases, p)
	}
	return settle(s, purchases), nil
}
