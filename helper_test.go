package hindsight

import (
	"testing"

	"github.com/etnz/hindsight/date"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// bar is a row of a test series.
type bar struct {
	on         string
	low, close float64
}

// series builds a USD series out of bars.
func series(t *testing.T, id string, bars ...bar) *Series {
	t.Helper()
	s := NewSeries(id)
	for _, b := range bars {
		on, err := date.Parse(b.on)
		if err != nil {
			t.Fatalf("date.Parse(%q) unexpected error: %v", b.on, err)
		}
		s.Append(on, Quote{Low: USD(b.low), Close: USD(b.close)})
	}
	return s
}

// assertMoney checks that got equals want once rounded to cents.
func assertMoney(t *testing.T, want float64, got Money) {
	t.Helper()
	if !got.Round(2).Decimal().Equal(M(want, "").Decimal()) {
		t.Errorf("got %v, want %v", got.Round(2).Decimal(), want)
	}
}

// assertPercent checks that got is within delta of want.
func assertPercent(t *testing.T, want float64, got Percent, delta float64) {
	t.Helper()
	if d := float64(got) - want; d > delta || d < -delta {
		t.Errorf("got %v%%, want %v%%", float64(got), want)
	}
}

// assertSkip checks that err is a *Skip with the given reason.
func assertSkip(t *testing.T, err error, reason SkipReason) *Skip {
	t.Helper()
	skip, ok := err.(*Skip)
	if !ok {
		t.Fatalf("got error %v, want a *Skip", err)
	}
	if skip.Reason != reason {
		t.Errorf("skip reason is %v, want %v", skip.Reason, reason)
	}
	return skip
}
