// Package collection provides small generic slice helpers used by the
// mappers and the export job.
//
//	dtos := collection.Map(orders, mapper.OrderToDTO)
//	lines := collection.GroupBy(items, func(p models.ProductOrder) uint { return p.OrderID })
package collection

// Map transforms each element of slice s using fn. A nil input yields an
// empty, non-nil slice so JSON renders [] instead of null.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// GroupBy partitions s by the key returned by fn, keeping input order
// inside each group.
func GroupBy[T any, K comparable](s []T, fn func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, v := range s {
		k := fn(v)
		out[k] = append(out[k], v)
	}
	return out
}

// Reduce folds s into a single value using fn, starting with initial.
func Reduce[T, R any](s []T, initial R, fn func(carry R, item T) R) R {
	carry := initial
	for _, v := range s {
		carry = fn(carry, v)
	}
	return carry
}
