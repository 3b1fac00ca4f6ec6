package cycles

import "fmt"

// CycleOrderHistogram maps the tuple of per-cycle orders (rendered as
// decimal strings, joined by ",") to the total count of realizations across
// every surviving CycleCombination, summed over each combination's share
// patterns, per spec.md §6 ("a multiset mapping tuple of cycle orders ->
// total count (summed over share patterns)").
func CycleOrderHistogram(combinations []CycleCombination) map[string]int {
	hist := make(map[string]int)
	for _, c := range combinations {
		n := len(c.ShareOrders)
		if n == 0 {
			n = 1
		}
		hist[orderTupleKey(c)] += n
	}
	return hist
}

func orderTupleKey(c CycleCombination) string {
	s := ""
	for i, cyc := range c.Cycles {
		if i > 0 {
			s += ","
		}
		s += cyc.Order.String()
	}
	return fmt.Sprintf("(%s)", s)
}
