package hindsight

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"

	"github.com/etnz/hindsight/date"
	"golang.org/x/sync/errgroup"
)

// Plan describes one simulation over a basket.
//
// For LumpSumMode, Budget is the total amount invested once on day On.
// For RecurringMode, Budget is the amount invested every month from day On.
// In both cases Budget is split equally over the basket. Prices are read in
// the currency of Budget.
type Plan struct {
	Mode   Mode
	Basket []string
	Budget Money
	On     date.Date
	Anchor Anchor
}

// Validate checks that the plan can be simulated at all.
func (p Plan) Validate() error {
	if len(p.Basket) == 0 {
		return ErrEmptyBasket
	}
	if !p.Budget.IsPositive() {
		return ErrZeroBudget
	}
	if p.On.IsZero() {
		switch p.Mode {
		case LumpSumMode:
			return errors.New("purchase date is missing")
		default:
			return errors.New("start investment date is missing")
		}
	}
	return nil
}

// simulate runs the plan strategy on one series.
func (p Plan) simulate(s *Series, share Money) (*Outcome, error) {
	switch p.Mode {
	case LumpSumMode:
		return LumpSum(s, share, p.On)
	case RecurringMode:
		return Recurring(s, share, p.On, p.Anchor)
	default:
		return nil, fmt.Errorf("unknown mode %v", p.Mode)
	}
}

type runOptions struct {
	concurrency int
	progress    func(id string)
	verbose     bool
}

// RunOption configures Run.
type RunOption func(*runOptions)

// WithConcurrency sets the number of instruments processed at the same time.
func WithConcurrency(n int) RunOption {
	return func(o *runOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithProgress registers a callback invoked every time an instrument is done.
// It can be called from several goroutines at once.
func WithProgress(f func(id string)) RunOption {
	return func(o *runOptions) { o.progress = f }
}

// WithVerbose logs every row dropped while decoding price histories.
func WithVerbose(v bool) RunOption {
	return func(o *runOptions) { o.verbose = v }
}

// Run simulates plan on every instrument of its basket, reading price
// histories from src.
//
// Instruments that cannot be simulated are reported in Report.Skipped, they
// never fail the run. Run only fails on an invalid plan or when ctx is done.
func Run(ctx context.Context, src Source, plan Plan, opts ...RunOption) (*Report, error) {
	o := runOptions{concurrency: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	plan.Basket = Dedupe(plan.Basket)
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	alloc, err := Split(plan.Budget, plan.Basket)
	if err != nil {
		return nil, err
	}

	// one slot per instrument, in basket order.
	outcomes := make([]*Outcome, len(alloc.Basket))
	skips := make([]*Skip, len(alloc.Basket))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, id := range alloc.Basket {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := o.instrument(src, plan, id, alloc.Share)
			if err != nil {
				skips[i] = asSkip(id, err)
				log.Printf("warning: %v", skips[i])
			} else {
				outcomes[i] = out
			}
			if o.progress != nil {
				o.progress(id)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Aggregate(plan.Mode, alloc.Total, compact(outcomes), compact(skips)), nil
}

// instrument loads and simulates a single instrument.
func (o runOptions) instrument(src Source, plan Plan, id string, share Money) (*Outcome, error) {
	f, err := src.Open(id)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, dropped, err := DecodeSeries(id, plan.Budget.Currency(), f)
	if err != nil {
		return nil, err
	}
	if len(dropped) > 0 {
		log.Printf("warning: %s: %d rows dropped", id, len(dropped))
		if o.verbose {
			for _, err := range dropped {
				log.Printf("  %s: %v", id, err)
			}
		}
	}
	return plan.simulate(s, share)
}

// compact returns the non nil values of v, in order.
func compact[T any](v []*T) []*T {
	res := make([]*T, 0, len(v))
	for _, x := range v {
		if x != nil {
			res = append(res, x)
		}
	}
	return res
}
