package hindsight

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/hindsight/date"
	"github.com/shopspring/decimal"
)

// required columns of a price history file.
const (
	colDate  = "date"
	colLow   = "low"
	colClose = "close"
)

// DecodeSeries reads a daily price history in CSV format.
//
// The first row is a header. Columns Date, Low and Close are found by name,
// case-insensitively; any other column is ignored. Prices are in currency.
//
// Rows that cannot be parsed are dropped and reported as *RowError in the
// returned slice. The error return is only set when the history as a whole is
// unusable: ErrMissingColumns, ErrEmptySeries or a read error.
func DecodeSeries(id, currency string, r io.Reader) (*Series, []error, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptySeries
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}
	cols, err := locate(header)
	if err != nil {
		return nil, nil, err
	}

	s := NewSeries(id)
	var dropped []error
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				dropped = append(dropped, &RowError{Line: perr.Line, Err: err})
				continue
			}
			return nil, dropped, fmt.Errorf("reading %s: %w", id, err)
		}
		line, _ := cr.FieldPos(0)
		on, q, err := cols.parse(rec, currency)
		if err != nil {
			dropped = append(dropped, &RowError{Line: line, Err: err})
			continue
		}
		s.Append(on, q)
	}
	if s.Len() == 0 {
		return nil, dropped, ErrEmptySeries
	}
	return s, dropped, nil
}

// columns holds the index of each required column in a record.
type columns struct {
	date, low, close int
}

func locate(header []string) (columns, error) {
	c := columns{date: -1, low: -1, close: -1}
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		switch strings.ToLower(strings.TrimSpace(h)) {
		case colDate:
			c.date = i
		case colLow:
			c.low = i
		case colClose:
			c.close = i
		}
	}
	var missing []string
	if c.date < 0 {
		missing = append(missing, "Date")
	}
	if c.low < 0 {
		missing = append(missing, "Low")
	}
	if c.close < 0 {
		missing = append(missing, "Close")
	}
	if len(missing) > 0 {
		return c, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return c, nil
}

func (c columns) parse(rec []string, currency string) (date.Date, Quote, error) {
	field := func(i int) string {
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	on, err := date.ParseTimestamp(field(c.date))
	if err != nil {
		return date.Date{}, Quote{}, fmt.Errorf("%w %q", ErrDateParse, field(c.date))
	}
	low, err := decimal.NewFromString(field(c.low))
	if err != nil {
		return on, Quote{}, fmt.Errorf("%w: Low %q", ErrPriceParse, field(c.low))
	}
	closing, err := decimal.NewFromString(field(c.close))
	if err != nil {
		return on, Quote{}, fmt.Errorf("%w: Close %q", ErrPriceParse, field(c.close))
	}
	return on, Quote{Low: M(low, currency), Close: M(closing, currency)}, nil
}
