package pathval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func nested() map[string]any {
	return map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": 5,
			},
		},
		"list":    []any{"zero", "one", map[string]any{"id": "x"}},
		"null":    nil,
		"scalar":  42,
		"present": "",
	}
}

func TestGet(t *testing.T) {
	root := nested()

	tests := []struct {
		name     string
		root     any
		path     Path
		fallback any
		want     any
	}{
		{"empty path returns root", root, Path{}, "fallback", root},
		{"empty path returns nil root", nil, Path{}, "fallback", nil},
		{"deep hit", root, Path{"a", "b", "c"}, nil, 5},
		{"missing leaf", root, Path{"a", "b", "x"}, nil, nil},
		{"missing branch", root, Path{"a", "x", "c"}, nil, nil},
		{"missing top-level key", root, Path{"nope"}, "dflt", "dflt"},
		{"present nil is not absence", root, Path{"null"}, "dflt", nil},
		{"traversal into nil", root, Path{"null", "deeper"}, "dflt", "dflt"},
		{"traversal into scalar", root, Path{"scalar", "deeper"}, "dflt", "dflt"},
		{"present empty string", root, Path{"present"}, "dflt", ""},
		{"slice index", root, Path{"list", 1}, nil, "one"},
		{"slice then map", root, Path{"list", 2, "id"}, nil, "x"},
		{"slice index out of range", root, Path{"list", 3}, "dflt", "dflt"},
		{"slice negative index", root, Path{"list", -1}, "dflt", "dflt"},
		{"float64 index", root, Path{"list", float64(0)}, nil, "zero"},
		{"string key into slice", root, Path{"list", "one"}, "dflt", "dflt"},
		{"int key into map", root, Path{0}, "dflt", "dflt"},
		{"nil root with path", nil, Path{"a"}, "dflt", "dflt"},
		{"scalar root with path", 7, Path{"a"}, "dflt", "dflt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Get(tc.root, tc.path, tc.fallback))
		})
	}
}

func TestGetDoesNotMutate(t *testing.T) {
	root := nested()
	Get(root, Path{"a", "b", "c"}, nil)
	Get(root, Path{"missing", "deep"}, "x")
	assert.Equal(t, nested(), root)
}

func TestHas(t *testing.T) {
	root := nested()

	assert.True(t, Has(root, Path{"a", "b", "c"}))
	assert.True(t, Has(root, Path{"null"}), "explicit nil counts as present")
	assert.True(t, Has(root, Path{}))
	assert.False(t, Has(root, Path{"a", "b", "x"}))
	assert.False(t, Has(root, Path{"null", "deeper"}))
}

func TestString(t *testing.T) {
	root := nested()

	assert.Equal(t, "one", String(root, Path{"list", 1}))
	assert.Equal(t, "", String(root, Path{"scalar"}), "non-string yields zero value")
	assert.Equal(t, "", String(root, Path{"missing"}))
}

func TestSlice(t *testing.T) {
	root := nested()

	assert.Len(t, Slice(root, Path{"list"}), 3)
	assert.Nil(t, Slice(root, Path{"a"}), "map is not a slice")
	assert.Nil(t, Slice(root, Path{"missing"}))
}
