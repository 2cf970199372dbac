// Package cli holds shared plumbing for the slotwise command: envelope file
// loading, logger wiring, and output helpers.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/voxkit/slotwise/internal/logging"
)

// LoadEnvelope reads a request envelope from a JSON or YAML file, picking the
// decoder by extension (.yaml/.yml vs everything else).
func LoadEnvelope(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read envelope: %w", err)
	}

	var envelope map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &envelope); err != nil {
			return nil, fmt.Errorf("parse yaml envelope %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, fmt.Errorf("parse json envelope %s: %w", path, err)
		}
	}
	return envelope, nil
}

// NewLogger builds the command logger. Verbose enables debug tracing from the
// resolver; otherwise only warnings and errors surface.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// PrintJSON writes v to w as indented JSON.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
