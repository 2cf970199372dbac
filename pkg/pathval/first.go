package pathval

// First returns the first element of seq for which pred reports true, or
// fallback when nothing matches. The scan short-circuits: elements past the
// match are never passed to pred.
func First[T any](seq []T, pred func(T) bool, fallback T) T {
	for _, el := range seq {
		if pred(el) {
			return el
		}
	}
	return fallback
}
