package events

// KindResponseDone identifies completion of an assistant response.
const KindResponseDone Kind = "response.done"

// ResponseDone marks the end of the current assistant response. Item
// finalisation arrives separately through history snapshots; this event
// only closes the response scope.
type ResponseDone struct{ Base }

// NewResponseDone creates a response done event.
func NewResponseDone() ResponseDone {
	return ResponseDone{Base: NewBase(KindResponseDone)}
}
