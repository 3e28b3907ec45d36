package hindsight

import (
	"fmt"
	"slices"
)

// Mode is the investment strategy simulated by a run.
type Mode int

const (
	LumpSumMode Mode = iota
	RecurringMode
)

func (m Mode) String() string {
	switch m {
	case LumpSumMode:
		return "lumpsum"
	case RecurringMode:
		return "dca"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Report combines the outcomes of every instrument of a basket.
type Report struct {
	Mode Mode
	// Outcomes indexes outcomes by instrument id.
	Outcomes map[string]*Outcome
	// Ranked lists outcomes by decreasing profit. Equal profits keep the
	// basket order.
	Ranked  []*Outcome
	Skipped []*Skip

	TotalInvested Money
	TotalProfit   Money
	// Reference is the amount TotalProfitPct is relative to: the budget for a
	// lump sum, the total invested for a recurring plan.
	Reference      Money
	TotalProfitPct Percent
}

// Aggregate folds outcomes, given in basket order, into a Report.
//
// budget is only used as reference in LumpSumMode.
func Aggregate(mode Mode, budget Money, outcomes []*Outcome, skipped []*Skip) *Report {
	r := &Report{
		Mode:          mode,
		Outcomes:      make(map[string]*Outcome, len(outcomes)),
		Ranked:        slices.Clone(outcomes),
		Skipped:       skipped,
		TotalInvested: M(0, budget.Currency()),
		TotalProfit:   M(0, budget.Currency()),
	}
	if r.Ranked == nil {
		r.Ranked = []*Outcome{}
	}
	if r.Skipped == nil {
		r.Skipped = []*Skip{}
	}
	for _, o := range outcomes {
		r.Outcomes[o.ID] = o
		r.TotalInvested = r.TotalInvested.Add(o.Invested)
		r.TotalProfit = r.TotalProfit.Add(o.Profit)
	}
	r.Reference = r.TotalInvested
	if mode == LumpSumMode {
		r.Reference = budget
	}
	r.TotalProfitPct = percentOf(r.TotalProfit, r.Reference)

	slices.SortStableFunc(r.Ranked, func(a, b *Outcome) int {
		return b.Profit.Cmp(a.Profit)
	})
	return r
}

// Empty reports whether no instrument produced an outcome.
func (r *Report) Empty() bool { return len(r.Ranked) == 0 }
