package hindsight

import (
	"slices"
	"testing"
)

// outcome returns an outcome of id with the given investment and profit.
func outcome(id string, invested, profit float64) *Outcome {
	return &Outcome{ID: id, Invested: USD(invested), Profit: USD(profit)}
}

func ids(outcomes []*Outcome) []string {
	var res []string
	for _, o := range outcomes {
		res = append(res, o.ID)
	}
	return res
}

func TestAggregate_Ranking(t *testing.T) {
	outcomes := []*Outcome{
		outcome("A", 100, 5),
		outcome("B", 100, 20),
		outcome("C", 100, -3),
		outcome("D", 100, 5),
		outcome("E", 100, 20),
	}
	r := Aggregate(RecurringMode, USD(100), outcomes, nil)

	// ties keep the basket order.
	if got, want := ids(r.Ranked), []string{"B", "E", "A", "D", "C"}; !slices.Equal(got, want) {
		t.Errorf("ranked = %v, want %v", got, want)
	}
	for i := 1; i < len(r.Ranked); i++ {
		if r.Ranked[i].Profit.GreaterThan(r.Ranked[i-1].Profit) {
			t.Errorf("ranked[%d] profit %v is above ranked[%d] profit %v", i, r.Ranked[i].Profit, i-1, r.Ranked[i-1].Profit)
		}
	}
	// input is left untouched.
	if got, want := ids(outcomes), []string{"A", "B", "C", "D", "E"}; !slices.Equal(got, want) {
		t.Errorf("input reordered to %v", got)
	}
	if len(r.Outcomes) != 5 || r.Outcomes["B"] != outcomes[1] {
		t.Errorf("outcomes = %v, want all five by id", r.Outcomes)
	}
}

func TestAggregate_Totals(t *testing.T) {
	outcomes := []*Outcome{
		outcome("A", 300, 30),
		outcome("B", 300, -15),
	}

	t.Run("lumpsum", func(t *testing.T) {
		// one instrument skipped: the reference is still the whole budget.
		r := Aggregate(LumpSumMode, USD(900), outcomes, []*Skip{{ID: "C", Reason: PurchaseDateNotFound}})
		if !r.TotalInvested.Equal(USD(600)) {
			t.Errorf("invested %v, want $600", r.TotalInvested)
		}
		if !r.TotalProfit.Equal(USD(15)) {
			t.Errorf("profit %v, want $15", r.TotalProfit)
		}
		if !r.Reference.Equal(USD(900)) {
			t.Errorf("reference %v, want $900", r.Reference)
		}
		assertPercent(t, 15.0/900*100, r.TotalProfitPct, 1e-9)
		if len(r.Skipped) != 1 {
			t.Errorf("skipped = %v, want C", r.Skipped)
		}
		if _, ok := r.Outcomes["C"]; ok {
			t.Error("skipped instrument C has an outcome")
		}
	})

	t.Run("dca", func(t *testing.T) {
		r := Aggregate(RecurringMode, USD(100), outcomes, nil)
		if !r.Reference.Equal(USD(600)) {
			t.Errorf("reference %v, want $600", r.Reference)
		}
		assertPercent(t, 2.5, r.TotalProfitPct, 1e-9)
	})
}

func TestAggregate_Empty(t *testing.T) {
	r := Aggregate(RecurringMode, USD(100), nil, nil)
	if !r.Empty() {
		t.Error("Empty() = false, want true")
	}
	if r.Ranked == nil || r.Skipped == nil {
		t.Error("Ranked and Skipped must not be nil")
	}
	if !r.TotalProfit.IsZero() || r.TotalProfitPct != 0 {
		t.Errorf("total profit %v (%v%%), want zero", r.TotalProfit, r.TotalProfitPct)
	}
}
