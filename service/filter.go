package service

// filter keeps the items for which keep returns true. Filtering happens in
// memory after a full List, the tables are small.
func filter[T any](items []T, keep func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}
