package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, each associated with a specific date.
// It ensures that dates are unique and the series is always sorted.
type History[T any] struct {
	days   []Date
	values []T
}

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero value.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, value
	}
	return h.days[last], h.values[last]
}

// Earliest returns the first date and value in the history.
// If the history is empty, it returns zero value.
func (h *History[T]) Earliest() (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, value
	}
	return h.days[0], h.values[0]
}

// Clear removes all items from the history.
func (h *History[T]) Clear() {
	h.days = h.days[:0]
	h.values = h.values[:0]
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// search returns the position of day in the history, and whether it is there.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}

// Append adds a point to the history.
//
// Existing value at that date are overwritten.
func (h *History[T]) Append(on Date, q T) *History[T] {
	// Sources are mostly chronological, so appending at the end is the common case.
	if n := len(h.days); n == 0 || h.days[n-1].Before(on) {
		h.days, h.values = append(h.days, on), append(h.values, q)
		return h
	}
	i, found := h.search(on)
	if found {
		// Found a point at that exact same instant.
		// We choose to replace, because it will give higher priority to the last data
		h.values[i] = q
		return h
	}
	h.days, h.values = slices.Insert(h.days, i, on), slices.Insert(h.values, i, q)
	return h
}

// Values returns an iterator over all date/value pairs in the history, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'day' and true or zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	var value T
	if i, found := h.search(day); found {
		return h.values[i], true
	}
	return value, false
}

// ValueAsOf returns the value on a given day, or the most recent value before it,
// together with the day it was recorded on.
// It returns false when the history has no entry on or before day.
func (h *History[T]) ValueAsOf(day Date) (Date, T, bool) {
	i, found := h.search(day)
	if found {
		return h.days[i], h.values[i], true
	}

	// Not found. `i` is the index where `day` would be inserted.
	// The value we want is at `i-1`, which is the last entry before the target date.
	if i == 0 {
		var zero T
		return Date{}, zero, false // No date on or before the given day.
	}
	return h.days[i-1], h.values[i-1], true
}

// FirstOnOrAfter returns the first day in the history that is not before day.
func (h *History[T]) FirstOnOrAfter(day Date) (Date, bool) {
	i, _ := h.search(day)
	if i == len(h.days) {
		return Date{}, false
	}
	return h.days[i], true
}
