package slotwise

import (
	"fmt"
	"log/slog"

	"github.com/mitchellh/mapstructure"

	"github.com/voxkit/slotwise/internal/classify"
	"github.com/voxkit/slotwise/internal/logging"
	"github.com/voxkit/slotwise/pkg/domain"
	"github.com/voxkit/slotwise/pkg/pathval"
	"github.com/voxkit/slotwise/pkg/ports"
)

// Resolver extracts resolved slot values from voice-platform request
// envelopes. The zero-config constructor wires the default request
// classifier and a no-op logger; both can be swapped via options.
//
// A Resolver is stateless and safe for concurrent use.
type Resolver struct {
	classifier ports.RequestClassifier
	logger     *slog.Logger
}

// Option defines a functional option for configuring the Resolver.
type Option func(*Resolver)

// WithClassifier injects a custom request-type classifier, typically backed
// by the platform SDK.
func WithClassifier(c ports.RequestClassifier) Option {
	return func(r *Resolver) {
		r.classifier = c
	}
}

// WithLogger sets a structured logger for debug tracing.
// Tracing never alters resolution results.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	if r.classifier == nil {
		r.classifier = ports.ClassifierFunc(classify.Default)
	}
	if r.logger == nil {
		r.logger = logging.NewNop()
	}
	return r
}

// resolutionsPath locates the authority list for a named slot.
func resolutionsPath(slot string) pathval.Path {
	return pathval.Path{"request", "intent", "slots", slot, "resolutions", "resolutionsPerAuthority"}
}

// SlotValuesFromMatch returns the values list of the first resolution
// authority reporting ER_SUCCESS_MATCH for the named slot. Authorities are
// scanned in envelope order; the returned slice aliases the envelope, it is
// not a copy.
//
// nil is returned when the envelope is not an intent request, the slot has no
// resolutions, no authority matched, or the matched authority carries no
// values. The method never panics and never mutates the envelope, however
// malformed it is.
func (r *Resolver) SlotValuesFromMatch(envelope map[string]any, slot string) []any {
	if rt := r.classifier.RequestType(envelope); rt != domain.RequestTypeIntent {
		r.logger.Debug("skipping non-intent request", "type", rt, "slot", slot)
		return nil
	}

	authorities := pathval.Slice(envelope, resolutionsPath(slot))
	if len(authorities) == 0 {
		return nil
	}

	match := pathval.First(authorities, func(auth any) bool {
		return pathval.String(auth, pathval.Path{"status", "code"}) == domain.CodeSuccessMatch
	}, nil)
	if match == nil {
		r.logger.Debug("no authority matched", "slot", slot)
		return nil
	}

	values, ok := pathval.Get(match, pathval.Path{"values"}, nil).([]any)
	if !ok {
		r.logger.Debug("matched authority has no values", "slot", slot)
		return nil
	}
	return values
}

// SlotValueID returns the id of the first matched value for the named slot.
// The second return is false when no authority matched, the matched values
// list is empty, or the first value lacks a string id.
func (r *Resolver) SlotValueID(envelope map[string]any, slot string) (string, bool) {
	values := r.SlotValuesFromMatch(envelope, slot)
	id, ok := pathval.Get(values, pathval.Path{0, "id"}, nil).(string)
	return id, ok
}

// DecodeSlotValues resolves the slot like SlotValuesFromMatch and decodes the
// raw value records into typed SlotValues. Records missing fields decode to
// zero values; non-map records produce an error. This is the only resolver
// operation that can fail.
func (r *Resolver) DecodeSlotValues(envelope map[string]any, slot string) ([]domain.SlotValue, error) {
	raw := r.SlotValuesFromMatch(envelope, slot)
	if len(raw) == 0 {
		return nil, nil
	}

	values := make([]domain.SlotValue, 0, len(raw))
	for i, entry := range raw {
		var v domain.SlotValue
		if err := mapstructure.Decode(entry, &v); err != nil {
			return nil, fmt.Errorf("slot %q: value %d: %w", slot, i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// defaultResolver backs the package-level helpers.
var defaultResolver = New()

// SlotValuesFromMatch resolves the named slot using a default Resolver.
func SlotValuesFromMatch(envelope map[string]any, slot string) []any {
	return defaultResolver.SlotValuesFromMatch(envelope, slot)
}

// SlotValueID returns the first matched value id using a default Resolver.
func SlotValueID(envelope map[string]any, slot string) (string, bool) {
	return defaultResolver.SlotValueID(envelope, slot)
}
