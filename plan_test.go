package hindsight

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/etnz/hindsight/date"
)

// writePlan writes content to a plan file and returns its path.
func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPlanFile_Defaults(t *testing.T) {
	t.Setenv("HS_DATA_DIR", "")
	t.Setenv("HS_CURRENCY", "")
	for _, path := range []string{"", writePlan(t, ""), writePlan(t, "basket: [A]\n")} {
		cfg, err := LoadPlanFile(path)
		if err != nil {
			t.Fatalf("LoadPlanFile(%q) unexpected error: %v", path, err)
		}
		if cfg.DataDir != DefaultDataDir || cfg.Currency != "USD" {
			t.Errorf("LoadPlanFile(%q) = %s in %s, want %s in USD", path, cfg.DataDir, cfg.Currency, DefaultDataDir)
		}

		lump, err := cfg.LumpSum()
		if err != nil {
			t.Fatalf("LumpSum() unexpected error: %v", err)
		}
		if lump.Mode != LumpSumMode || !lump.Budget.Equal(USD(900)) || lump.On != date.New(2024, 3, 1) {
			t.Errorf("LoadPlanFile(%q).LumpSum() = %v %v on %v, want lumpsum $900 on 2024-03-01", path, lump.Mode, lump.Budget, lump.On)
		}

		dca, err := cfg.Recurring()
		if err != nil {
			t.Fatalf("Recurring() unexpected error: %v", err)
		}
		if dca.Mode != RecurringMode || !dca.Budget.Equal(USD(100)) || dca.Anchor != AnchorMonthStart {
			t.Errorf("LoadPlanFile(%q).Recurring() = %v %v %v, want dca $100 month-start", path, dca.Mode, dca.Budget, dca.Anchor)
		}
	}

	cfg, err := LoadPlanFile("")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(cfg.Basket, DefaultBasket) {
		t.Errorf("basket = %v, want the default basket", cfg.Basket)
	}
}

func TestLoadPlanFile(t *testing.T) {
	path := writePlan(t, `
data_dir: prices
currency: EUR
basket: [AIR, MC, AIR]
total_budget: 1200.5
monthly_budget: 250
purchase_date: 2023-01-02
start_investment_date: 2023-06-15
anchor: first-trade
`)
	t.Setenv("HS_DATA_DIR", "")
	t.Setenv("HS_CURRENCY", "")

	cfg, err := LoadPlanFile(path)
	if err != nil {
		t.Fatalf("LoadPlanFile() unexpected error: %v", err)
	}
	if cfg.DataDir != "prices" {
		t.Errorf("data dir = %q, want prices", cfg.DataDir)
	}

	lump, err := cfg.LumpSum()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"AIR", "MC"}; !slices.Equal(lump.Basket, want) {
		t.Errorf("basket = %v, want %v", lump.Basket, want)
	}
	if !lump.Budget.Equal(M(1200.5, "EUR")) {
		t.Errorf("budget = %v, want 1200.5 EUR", lump.Budget)
	}
	if lump.On != date.New(2023, 1, 2) {
		t.Errorf("purchase date = %v, want 2023-01-02", lump.On)
	}

	dca, err := cfg.Recurring()
	if err != nil {
		t.Fatal(err)
	}
	if !dca.Budget.Equal(M(250, "EUR")) || dca.On != date.New(2023, 6, 15) || dca.Anchor != AnchorFirstTrade {
		t.Errorf("Recurring() = %v from %v %v, want 250 EUR from 2023-06-15 first-trade", dca.Budget, dca.On, dca.Anchor)
	}
}

func TestLoadPlanFile_ZeroBudget(t *testing.T) {
	t.Setenv("HS_DATA_DIR", "")
	t.Setenv("HS_CURRENCY", "")
	cfg, err := LoadPlanFile(writePlan(t, "basket: [A]\ntotal_budget: 0\nmonthly_budget: 0\n"))
	if err != nil {
		t.Fatalf("LoadPlanFile() unexpected error: %v", err)
	}

	for _, build := range []func() (Plan, error){cfg.LumpSum, cfg.Recurring} {
		plan, err := build()
		if err != nil {
			t.Fatal(err)
		}
		if !plan.Budget.IsZero() {
			t.Errorf("%v budget = %v, want 0", plan.Mode, plan.Budget)
		}
		if err := plan.Validate(); !errors.Is(err, ErrZeroBudget) {
			t.Errorf("%v Validate() = %v, want %v", plan.Mode, err, ErrZeroBudget)
		}
	}
}

func TestLoadPlanFile_Env(t *testing.T) {
	t.Setenv("HS_DATA_DIR", "/srv/prices")
	t.Setenv("HS_CURRENCY", "EUR")
	cfg, err := LoadPlanFile(writePlan(t, "data_dir: prices\ncurrency: USD\n"))
	if err != nil {
		t.Fatalf("LoadPlanFile() unexpected error: %v", err)
	}
	if cfg.DataDir != "/srv/prices" || cfg.Currency != "EUR" {
		t.Errorf("got %s in %s, want /srv/prices in EUR", cfg.DataDir, cfg.Currency)
	}
}

func TestLoadPlanFile_Errors(t *testing.T) {
	tests := []string{
		filepath.Join(t.TempDir(), "absent.yaml"),
		writePlan(t, "basket: {"),
	}
	for _, path := range tests {
		if _, err := LoadPlanFile(path); err == nil {
			t.Errorf("LoadPlanFile(%q) expected an error", path)
		}
	}

	cfg := &PlanFile{PurchaseDate: "tomorrow", StartInvestmentDate: "2024-01-01", Anchor: "weekly"}
	if _, err := cfg.LumpSum(); err == nil {
		t.Error("LumpSum() expected an error for an invalid purchase date")
	}
	if _, err := cfg.Recurring(); err == nil {
		t.Error("Recurring() expected an error for an invalid anchor")
	}
}
