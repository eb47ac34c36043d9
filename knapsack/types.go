package knapsack

// Item is one packable object.
type Item struct {
	// Weight is the capacity the item consumes.
	Weight uint64

	// Value is the objective contribution of packing the item.
	Value uint64
}
