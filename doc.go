// Package hindsight computes what investing in a basket of instruments would
// have returned, given their daily price histories.
//
// Two strategies are simulated:
//   - Lump sum: the budget is split equally over the basket and spent on a
//     single day, at each instrument's Low. Positions are valued at the Close
//     of the last day of data.
//   - Recurring (dollar-cost averaging): a monthly budget is split the same
//     way and spent every month from a start date, each investment day being
//     resolved to the nearest prior trading day.
//
// Every instrument is simulated independently into an Outcome, or a Skip
// when it cannot be simulated. Aggregate folds them into a Report ranked by
// profit.
//
// Amounts are decimals: shares are fractional and never rounded, rounding is
// left to rendering.
//
// This package serves as the foundational logic for the `hs` command-line
// tool.
package hindsight
