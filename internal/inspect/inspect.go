// Package inspect builds human-readable summaries of request envelopes for
// the CLI. It walks every slot of an intent request and collects the full
// resolution picture, not just the first match.
package inspect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/voxkit/slotwise/pkg/domain"
	"github.com/voxkit/slotwise/pkg/pathval"
)

// Report summarizes the slot-resolution state of one request envelope.
type Report struct {
	RequestType string
	Intent      string
	Slots       []SlotReport
}

// SlotReport covers a single named slot.
type SlotReport struct {
	Name        string
	RawValue    string
	Authorities []domain.Authority
}

// Build walks the envelope and collects every slot with its authorities,
// in slot-name order. It tolerates arbitrarily malformed envelopes; missing
// pieces simply produce an emptier report.
func Build(envelope map[string]any) Report {
	rep := Report{
		RequestType: pathval.String(envelope, pathval.Path{"request", "type"}),
		Intent:      pathval.String(envelope, pathval.Path{"request", "intent", "name"}),
	}

	slots, _ := pathval.Get(envelope, pathval.Path{"request", "intent", "slots"}, nil).(map[string]any)
	names := make([]string, 0, len(slots))
	for name := range slots {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		slot := slots[name]
		sr := SlotReport{
			Name:     name,
			RawValue: pathval.String(slot, pathval.Path{"value"}),
		}
		for _, auth := range pathval.Slice(slot, pathval.Path{"resolutions", "resolutionsPerAuthority"}) {
			a := domain.Authority{
				Name: pathval.String(auth, pathval.Path{"authority"}),
				Status: domain.AuthorityStatus{
					Code: pathval.String(auth, pathval.Path{"status", "code"}),
				},
			}
			for _, v := range pathval.Slice(auth, pathval.Path{"values"}) {
				a.Values = append(a.Values, domain.SlotValue{
					ID:   pathval.String(v, pathval.Path{"id"}),
					Name: pathval.String(v, pathval.Path{"name"}),
				})
			}
			sr.Authorities = append(sr.Authorities, a)
		}
		rep.Slots = append(rep.Slots, sr)
	}

	return rep
}

// Markdown renders the report for terminal display.
func (r Report) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Request Envelope\n\n")
	fmt.Fprintf(&b, "- **Type**: %s\n", orDash(r.RequestType))
	fmt.Fprintf(&b, "- **Intent**: %s\n", orDash(r.Intent))

	if len(r.Slots) == 0 {
		b.WriteString("\nNo slots present.\n")
		return b.String()
	}

	for _, slot := range r.Slots {
		fmt.Fprintf(&b, "\n## Slot `%s`\n\n", slot.Name)
		fmt.Fprintf(&b, "- Raw value: %s\n", orDash(slot.RawValue))

		if len(slot.Authorities) == 0 {
			b.WriteString("- No resolution authorities.\n")
			continue
		}

		for i, auth := range slot.Authorities {
			marker := ""
			if auth.Matched() {
				marker = " (matched)"
			}
			fmt.Fprintf(&b, "- Authority %d `%s`: %s%s\n", i, orDash(auth.Name), orDash(auth.Status.Code), marker)
			for _, v := range auth.Values {
				fmt.Fprintf(&b, "  - %s (`%s`)\n", v.Name, v.ID)
			}
		}
	}

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
