package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxkit/slotwise/pkg/pathval"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadEnvelope(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeFixture(t, "envelope.json", `{"request": {"type": "IntentRequest", "intent": {"name": "PlanTrip"}}}`)

		env, err := LoadEnvelope(path)
		require.NoError(t, err)
		assert.Equal(t, "PlanTrip", pathval.String(env, pathval.Path{"request", "intent", "name"}))
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFixture(t, "envelope.yaml", "request:\n  type: IntentRequest\n  intent:\n    name: PlanTrip\n")

		env, err := LoadEnvelope(path)
		require.NoError(t, err)
		assert.Equal(t, "IntentRequest", pathval.String(env, pathval.Path{"request", "type"}))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadEnvelope(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeFixture(t, "broken.json", "{")
		_, err := LoadEnvelope(path)
		assert.ErrorContains(t, err, "parse json envelope")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFixture(t, "broken.yaml", "a: [1,")
		_, err := LoadEnvelope(path)
		assert.ErrorContains(t, err, "parse yaml envelope")
	})
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, map[string]any{"id": "123"}))
	assert.JSONEq(t, `{"id": "123"}`, buf.String())
}
