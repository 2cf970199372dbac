package pathval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	t.Run("returns first match", func(t *testing.T) {
		got := First([]int{1, 3, 4, 6}, func(n int) bool { return n%2 == 0 }, -1)
		assert.Equal(t, 4, got)
	})

	t.Run("no match returns fallback", func(t *testing.T) {
		got := First([]int{1, 3, 5}, func(n int) bool { return n%2 == 0 }, -1)
		assert.Equal(t, -1, got)
	})

	t.Run("empty sequence returns fallback", func(t *testing.T) {
		got := First(nil, func(string) bool { return true }, "none")
		assert.Equal(t, "none", got)
	})

	t.Run("short-circuits at the match", func(t *testing.T) {
		var seen []string
		got := First([]string{"a", "b", "c", "d"}, func(s string) bool {
			seen = append(seen, s)
			return s == "b"
		}, "")

		assert.Equal(t, "b", got)
		assert.Equal(t, []string{"a", "b"}, seen, "elements past the match must not reach the predicate")
	})
}
