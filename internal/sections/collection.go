package sections

import "fmt"

// Every list-valued form edits its rows the same way: append an empty row,
// update or remove by explicit index, and drop incomplete rows when the
// form is serialized. The helpers below are that one shared implementation.

// Append adds item to the list and returns the new list together with the
// index of the appended row. Callers address the new row by this index
// instead of inferring it from the list length afterwards.
func Append[T any](list []T, item T) ([]T, int) {
	list = append(list, item)
	return list, len(list) - 1
}

// UpdateAt replaces the row at index i.
func UpdateAt[T any](list []T, i int, item T) error {
	if i < 0 || i >= len(list) {
		return fmt.Errorf("index %d out of range [0,%d)", i, len(list))
	}
	list[i] = item
	return nil
}

// RemoveAt deletes the row at index i, preserving order of the rest.
func RemoveAt[T any](list []T, i int) ([]T, error) {
	if i < 0 || i >= len(list) {
		return nil, fmt.Errorf("index %d out of range [0,%d)", i, len(list))
	}
	return append(list[:i:i], list[i+1:]...), nil
}

// FilterComplete returns only the rows satisfying the completeness
// predicate. Used on serialization so partially filled rows are dropped
// rather than persisted.
func FilterComplete[T any](list []T, complete func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if complete(item) {
			out = append(out, item)
		}
	}
	return out
}
