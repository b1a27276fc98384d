package domain

// CartItem is one marketplace line entry. Quantity is fixed at 1 per add;
// repeated adds of the same product create duplicate lines.
type CartItem struct {
	Name  string
	Price int
	Qty   int
}

// CartTotal sums price × quantity over all line entries.
func CartTotal(items []CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Price * it.Qty
	}
	return total
}
