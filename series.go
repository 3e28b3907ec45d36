package hindsight

import (
	"iter"

	"github.com/etnz/hindsight/date"
)

// Quote is the part of a daily bar the simulations need: purchases are made
// at the day's Low, positions are valued at the Close.
type Quote struct {
	Low   Money
	Close Money
}

// Series is the price history of one instrument, day by day.
//
// Days are unique and sorted. When the same day is appended twice, the last
// quote wins.
type Series struct {
	id     string
	prices date.History[Quote]
}

// NewSeries returns an empty price history for instrument id.
func NewSeries(id string) *Series { return &Series{id: id} }

// ID returns the instrument identifier.
func (s *Series) ID() string { return s.id }

// Len returns the number of trading days in the history.
func (s *Series) Len() int { return s.prices.Len() }

// Append records the quote of a trading day.
func (s *Series) Append(on date.Date, q Quote) *Series {
	s.prices.Append(on, q)
	return s
}

// Values iterates over trading days in chronological order.
func (s *Series) Values() iter.Seq2[date.Date, Quote] { return s.prices.Values() }

// OnExact returns the quote recorded exactly on day.
func (s *Series) OnExact(day date.Date) (Quote, bool) { return s.prices.Get(day) }

// AtOrBefore returns the last trading day on or before day, and its quote.
// It returns false if day is before the first trading day.
func (s *Series) AtOrBefore(day date.Date) (date.Date, Quote, bool) {
	return s.prices.ValueAsOf(day)
}

// First returns the first trading day.
func (s *Series) First() (date.Date, Quote) { return s.prices.Earliest() }

// Last returns the last trading day.
func (s *Series) Last() (date.Date, Quote) { return s.prices.Latest() }

// Since returns the range of trading days on or after start.
// It returns false when there is none.
func (s *Series) Since(start date.Date) (date.Range, bool) {
	from, ok := s.prices.FirstOnOrAfter(start)
	if !ok {
		return date.Range{}, false
	}
	to, _ := s.Last()
	return date.Range{From: from, To: to}, true
}
