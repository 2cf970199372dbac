package pathval

// Path addresses a location inside a nested JSON-shaped value.
// Each step is either a string (map key) or an integer (slice index).
type Path []any

// missing is a private sentinel distinguishing "lookup failed" from any
// value a caller could legitimately store, including nil.
var missing = &struct{}{}

// Get reads the value at path inside root, returning fallback as soon as a
// step cannot be resolved. An empty path returns root itself, even when root
// is nil.
//
// Each step performs an own-key existence check before descending:
//
//   - string key into map[string]any: comma-ok lookup
//   - integer key into []any: bounds check
//   - anything else (scalar, nil, mismatched key kind): lookup failure
//
// A key that is present with an explicit nil value is not absence: traversal
// descends into nil, so Get(m, Path{"k"}, fallback) on m = {"k": nil} returns
// nil, not fallback. Get never panics and never mutates root.
func Get(root any, path Path, fallback any) any {
	if len(path) == 0 {
		return root
	}
	switch node := root.(type) {
	case map[string]any:
		key, ok := path[0].(string)
		if !ok {
			return fallback
		}
		child, ok := node[key]
		if !ok {
			return fallback
		}
		return Get(child, path[1:], fallback)
	case []any:
		idx, ok := index(path[0])
		if !ok || idx < 0 || idx >= len(node) {
			return fallback
		}
		return Get(node[idx], path[1:], fallback)
	default:
		return fallback
	}
}

// Has reports whether path resolves to an owned location inside root.
// A location holding an explicit nil counts as present.
func Has(root any, path Path) bool {
	return Get(root, path, missing) != missing
}

// String reads a string at path, returning "" when the location is absent or
// holds a non-string value.
func String(root any, path Path) string {
	s, _ := Get(root, path, nil).(string)
	return s
}

// Slice reads a []any at path, returning nil when the location is absent or
// holds a non-slice value.
func Slice(root any, path Path) []any {
	s, _ := Get(root, path, nil).([]any)
	return s
}

// index coerces the integer key kinds callers and JSON decoders produce.
func index(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int64:
		return int(k), true
	case float64:
		return int(k), true
	default:
		return 0, false
	}
}
