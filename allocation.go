package hindsight

import (
	"strings"
)

// Allocation is an equal split of a budget over a basket of instruments.
type Allocation struct {
	Total  Money
	Share  Money
	Basket []string
}

// NewBasket parses a comma separated list of instrument ids.
// Blanks are ignored and duplicates removed, keeping the first occurrence.
func NewBasket(list string) []string {
	return Dedupe(strings.Split(list, ","))
}

// Dedupe trims ids, drops empty ones and duplicates. Order is kept.
func Dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	basket := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		basket = append(basket, id)
	}
	return basket
}

// Split gives every instrument in basket an equal share of total.
//
// The remainder of the division is not redistributed: shares add up to total
// within decimal division precision.
func Split(total Money, basket []string) (Allocation, error) {
	if len(basket) == 0 {
		return Allocation{}, ErrEmptyBasket
	}
	if !total.IsPositive() {
		return Allocation{}, ErrZeroBudget
	}
	return Allocation{
		Total:  total,
		Share:  total.Div(Q(len(basket))),
		Basket: basket,
	}, nil
}
