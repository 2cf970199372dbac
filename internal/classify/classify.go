// Package classify provides the default request-type classifier used when no
// platform SDK classifier is injected.
package classify

import (
	"github.com/voxkit/slotwise/pkg/pathval"
)

// Default reads the discriminator directly from the envelope's request.type
// field. Malformed envelopes classify as "" (never an intent request).
func Default(envelope map[string]any) string {
	return pathval.String(envelope, pathval.Path{"request", "type"})
}
