package hindsight

import (
	"fmt"
	"os"

	"github.com/etnz/hindsight/date"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultBasket is the basket used when none is configured.
var DefaultBasket = []string{"AAPL", "WMT", "GOOGL", "AMZN", "MSFT", "TSLA", "META", "NFLX", "BA", "DIS", "PYPL", "V", "MA", "INTC", "IBM", "AMD"}

// Configuration defaults.
const (
	DefaultDataDir       = "./data"
	DefaultCurrency      = "USD"
	DefaultTotalBudget   = 900
	DefaultMonthlyBudget = 100
	DefaultDate          = "2024-03-01"
)

// PlanFile is the YAML configuration of simulations.
type PlanFile struct {
	DataDir             string   `yaml:"data_dir"`
	Currency            string   `yaml:"currency"`
	Basket              []string `yaml:"basket"`
	TotalBudget         float64  `yaml:"total_budget"`
	MonthlyBudget       float64  `yaml:"monthly_budget"`
	PurchaseDate        string   `yaml:"purchase_date"`
	StartInvestmentDate string   `yaml:"start_investment_date"`
	Anchor              string   `yaml:"anchor"`
}

// LoadPlanFile reads a plan from a YAML file, then applies environment
// variable overrides and defaults. An empty path yields the defaults.
//
// Keys absent from the file keep their default value; a key set explicitly,
// even to zero, is kept as is so that Plan.Validate can reject it.
func LoadPlanFile(path string) (*PlanFile, error) {
	cfg := &PlanFile{
		TotalBudget:   DefaultTotalBudget,
		MonthlyBudget: DefaultMonthlyBudget,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read plan: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse plan %s: %w", path, err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("HS_CURRENCY"); v != "" {
		cfg.Currency = v
	}

	// Defaults
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	if len(cfg.Basket) == 0 {
		cfg.Basket = DefaultBasket
	}
	if cfg.PurchaseDate == "" {
		cfg.PurchaseDate = DefaultDate
	}
	if cfg.StartInvestmentDate == "" {
		cfg.StartInvestmentDate = DefaultDate
	}
	if cfg.Anchor == "" {
		cfg.Anchor = AnchorMonthStart.String()
	}
	return cfg, nil
}

// LumpSum returns the lump-sum plan described by the file.
func (c *PlanFile) LumpSum() (Plan, error) {
	on, err := date.Parse(c.PurchaseDate)
	if err != nil {
		return Plan{}, fmt.Errorf("purchase_date: %w", err)
	}
	return Plan{
		Mode:   LumpSumMode,
		Basket: Dedupe(c.Basket),
		Budget: M(decimal.NewFromFloat(c.TotalBudget), c.Currency),
		On:     on,
	}, nil
}

// Recurring returns the monthly plan described by the file.
func (c *PlanFile) Recurring() (Plan, error) {
	start, err := date.Parse(c.StartInvestmentDate)
	if err != nil {
		return Plan{}, fmt.Errorf("start_investment_date: %w", err)
	}
	anchor, err := ParseAnchor(c.Anchor)
	if err != nil {
		return Plan{}, fmt.Errorf("anchor: %w", err)
	}
	return Plan{
		Mode:   RecurringMode,
		Basket: Dedupe(c.Basket),
		Budget: M(decimal.NewFromFloat(c.MonthlyBudget), c.Currency),
		On:     start,
		Anchor: anchor,
	}, nil
}
