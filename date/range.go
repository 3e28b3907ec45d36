package date

import "iter"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// MonthStarts returns an iterator over every first day of month within the range.
//
// The first value is r.From itself when it is a first of month, otherwise the
// first of the following month.
func (r Range) MonthStarts() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		d := r.From.StartOfMonth()
		if d.Before(r.From) {
			d = d.AddMonths(1)
		}
		for ; !d.After(r.To); d = d.AddMonths(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Monthly returns an iterator over r.From and the same day of month in each
// following month, up to r.To.
//
// Days missing from short months are clamped to the month end, without
// drifting the day used for later months.
func (r Range) Monthly() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for i := 0; ; i++ {
			d := r.From.AddMonths(i)
			if d.After(r.To) || !yield(d) {
				return
			}
		}
	}
}
