package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/hindsight"
	md "github.com/nao1215/markdown"
)

// Options holds configuration for rendering a report.
type Options struct {
	Purchases bool // Render the purchase history of every instrument.
}

// ReportMarkdown renders a simulation report to a markdown string.
func ReportMarkdown(r *hindsight.Report, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	switch r.Mode {
	case hindsight.LumpSumMode:
		doc.H1("Lump-Sum Investment Results")
	default:
		doc.H1("Dollar-Cost Averaging Results")
	}

	if r.Empty() {
		doc.PlainText("No results to display.")
	} else {
		doc.Table(resultsTable(r))
		doc.PlainText(fmt.Sprintf("Total Profit: %s (%s of %s)", r.TotalProfit.SignedString(), r.TotalProfitPct.SignedString(), r.Reference))
	}

	if opts.Purchases {
		for _, o := range r.Ranked {
			doc.H2(fmt.Sprintf("Purchases of %s", o.ID))
			doc.Table(purchasesTable(o))
		}
	}

	var b strings.Builder
	b.WriteString(doc.String())
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Skipped\n\n")
		for _, s := range r.Skipped {
			if s.Err != nil {
				fmt.Fprintf(w, "- %s: %v\n", s.ID, s.Err)
			} else {
				fmt.Fprintf(w, "- %s: %v\n", s.ID, s.Reason)
			}
		}
		return len(r.Skipped) > 0
	})
	return b.String()
}

func resultsTable(r *hindsight.Report) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Rows: [][]string{},
	}
	if r.Mode == hindsight.LumpSumMode {
		table.Header = []string{"Stock", "Shares Bought", "Purchase Price", "Selling Price", "Profit", "Profit %"}
		for _, o := range r.Ranked {
			purchase := ""
			if len(o.Purchases) > 0 {
				purchase = o.Purchases[0].Price.String()
			}
			table.Rows = append(table.Rows, []string{
				o.ID,
				o.Shares.StringFixed(4),
				purchase,
				o.FinalPrice.String(),
				o.Profit.SignedString(),
				o.ProfitPct.SignedString(),
			})
		}
		table.Rows = append(table.Rows, []string{
			md.Bold("Total"), "", "", "",
			md.Bold(r.TotalProfit.SignedString()),
			md.Bold(r.TotalProfitPct.SignedString()),
		})
		return table
	}

	table.Header = []string{"Stock", "Total Shares", "Total Investment", "Final Price", "Profit", "Profit %"}
	for _, o := range r.Ranked {
		table.Rows = append(table.Rows, []string{
			o.ID,
			o.Shares.StringFixed(4),
			o.Invested.String(),
			o.FinalPrice.String(),
			o.Profit.SignedString(),
			o.ProfitPct.SignedString(),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "",
		md.Bold(r.TotalInvested.String()), "",
		md.Bold(r.TotalProfit.SignedString()),
		md.Bold(r.TotalProfitPct.SignedString()),
	})
	return table
}

func purchasesTable(o *hindsight.Outcome) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Price", "Shares Bought", "Amount"},
		Rows:   [][]string{},
	}
	for _, p := range o.Purchases {
		table.Rows = append(table.Rows, []string{
			p.On.String(),
			p.Price.String(),
			p.Shares.StringFixed(4),
			p.Amount.String(),
		})
	}
	return table
}
