package provider

// Outcome is the state of a single provider lookup.
type Outcome int

const (
	NotFound Outcome = iota
	Found
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Failed:
		return "failed"
	default:
		return "not_found"
	}
}

// Lookup is the result of one stage of a fallback chain. It keeps
// "the provider has no such item" apart from "the provider could not answer".
type Lookup[T any] struct {
	Outcome Outcome
	Value   *T
	Err     error
}

// LookupOf converts the (value, error) convention of the provider clients,
// where a nil value with a nil error means not found, into a Lookup.
func LookupOf[T any](v *T, err error) Lookup[T] {
	switch {
	case err != nil:
		return Lookup[T]{Outcome: Failed, Err: err}
	case v == nil:
		return Lookup[T]{Outcome: NotFound}
	default:
		return Lookup[T]{Outcome: Found, Value: v}
	}
}
