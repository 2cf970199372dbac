/*
Package pathval provides safe navigation over JSON-shaped values
(map[string]any, []any, scalars) without panicking on missing keys,
out-of-range indices, or unexpected shapes.

It is deliberately schema-free: callers describe where a value should
be via a Path and supply the fallback they want when any step of the
lookup fails. Absence is always communicated through return values,
never through errors or panics.

# Key Functions

  - Get: resolve a Path inside a nested value, with fallback.
  - First: return the first element of a slice satisfying a predicate.
  - String, Slice: typed conveniences over Get with zero-value fallbacks.
*/
package pathval
