package domain

// Request-type discriminators the platform assigns to incoming events.
const (
	RequestTypeIntent       = "IntentRequest"
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Status codes a resolution authority reports for a slot.
const (
	CodeSuccessMatch   = "ER_SUCCESS_MATCH"
	CodeSuccessNoMatch = "ER_SUCCESS_NOMATCH"
	CodeErrorTimeout   = "ER_ERROR_TIMEOUT"
	CodeErrorException = "ER_ERROR_EXCEPTION"
)

// SlotValue is one canonical candidate a resolution authority produced for a
// slot.
type SlotValue struct {
	ID   string `json:"id" yaml:"id" mapstructure:"id"`
	Name string `json:"name" yaml:"name" mapstructure:"name"`
}

// AuthorityStatus carries the outcome code of a single authority.
type AuthorityStatus struct {
	Code string `json:"code" yaml:"code" mapstructure:"code"`
}

// Authority is the typed mirror of one resolutionsPerAuthority entry.
type Authority struct {
	Name   string          `json:"authority,omitempty" yaml:"authority,omitempty" mapstructure:"authority"`
	Status AuthorityStatus `json:"status" yaml:"status" mapstructure:"status"`
	Values []SlotValue     `json:"values,omitempty" yaml:"values,omitempty" mapstructure:"values"`
}

// Matched reports whether this authority successfully resolved the slot.
func (a Authority) Matched() bool {
	return a.Status.Code == CodeSuccessMatch
}
