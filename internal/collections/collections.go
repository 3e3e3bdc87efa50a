package collections

// Contains reports whether elem is present in elements.
func Contains[T comparable](elem T, elements []T) bool {
	for _, e := range elements {
		if elem == e {
			return true
		}
	}
	return false
}

// Dedup returns elements with later duplicates removed. The order of first
// occurrence is preserved.
func Dedup[T comparable](elements []T) []T {
	seen := make(map[T]struct{}, len(elements))
	unique := make([]T, 0, len(elements))
	for _, e := range elements {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		unique = append(unique, e)
	}
	return unique
}
