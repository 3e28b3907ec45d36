package hindsight

import (
	"errors"
	"fmt"
)

// Errors that abort a whole run: no meaningful allocation can be computed.
var (
	ErrEmptyBasket = errors.New("basket is empty")
	ErrZeroBudget  = errors.New("budget must be positive")
	ErrNoDataDir   = errors.New("no price files found")
)

// Errors that only concern one instrument.
var (
	ErrNoData               = errors.New("no price history")
	ErrMissingColumns       = errors.New("required columns not found")
	ErrEmptySeries          = errors.New("no valid rows")
	ErrDateParse            = errors.New("unparsable date")
	ErrPriceParse           = errors.New("unparsable price")
	ErrPurchaseDateNotFound = errors.New("purchase date not found")
	ErrNoDataAfterStart     = errors.New("no data after start date")
	ErrInvalidPrice         = errors.New("price must be positive")
)

// RowError reports a row dropped while decoding a price history.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *RowError) Unwrap() error { return e.Err }

// SkipReason tells why an instrument has no outcome.
type SkipReason int

const (
	NoData SkipReason = iota
	MissingColumns
	EmptySeries
	PurchaseDateNotFound
	NoDataAfterStart
	InvalidPrice
)

func (r SkipReason) String() string {
	switch r {
	case NoData:
		return "no data"
	case MissingColumns:
		return "missing columns"
	case EmptySeries:
		return "empty series"
	case PurchaseDateNotFound:
		return "purchase date not found"
	case NoDataAfterStart:
		return "no data after start"
	case InvalidPrice:
		return "invalid price"
	default:
		return fmt.Sprintf("SkipReason(%d)", int(r))
	}
}

func (r SkipReason) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// Skip is the expected, non-fatal outcome of an instrument that cannot be
// simulated. It is returned as an error by the simulators so that callers
// can keep going with the rest of the basket.
type Skip struct {
	ID     string
	Reason SkipReason
	Err    error
}

func (s *Skip) Error() string {
	if s.Err == nil {
		return fmt.Sprintf("%s skipped: %v", s.ID, s.Reason)
	}
	return fmt.Sprintf("%s skipped: %v", s.ID, s.Err)
}

func (s *Skip) Unwrap() error { return s.Err }

// reasons maps instrument errors to their skip reason.
var reasons = []struct {
	err    error
	reason SkipReason
}{
	{ErrMissingColumns, MissingColumns},
	{ErrEmptySeries, EmptySeries},
	{ErrPurchaseDateNotFound, PurchaseDateNotFound},
	{ErrNoDataAfterStart, NoDataAfterStart},
	{ErrInvalidPrice, InvalidPrice},
}

// asSkip converts any instrument level error into a *Skip for id.
func asSkip(id string, err error) *Skip {
	var skip *Skip
	if errors.As(err, &skip) {
		return skip
	}
	reason := NoData
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			reason = r.reason
			break
		}
	}
	return &Skip{ID: id, Reason: reason, Err: err}
}
