package app

// EventKind identifies emitted app events for Nakama dispatch.
type EventKind string

const (
	EventAuctionStarted EventKind = "auction_started"
	EventCallMade       EventKind = "call_made"
	EventCallRetracted  EventKind = "call_retracted"
	EventAuctionEnded   EventKind = "auction_ended"
	EventConventionNote EventKind = "convention_note"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type AuctionStartedPayload struct {
	Dealer      int    `json:"dealer"`
	PassoutRule string `json:"passout_rule"`
}

type CallMadePayload struct {
	Seat     int    `json:"seat"`
	Call     string `json:"call"`
	NextSeat int    `json:"next_seat"`
}

type CallRetractedPayload struct {
	Seat     int    `json:"seat"`
	Call     string `json:"call"`
	NextSeat int    `json:"next_seat"`
}

type AuctionEndedPayload struct {
	PassedOut    bool   `json:"passed_out"`
	Contract     string `json:"contract,omitempty"`
	DeclarerSeat int    `json:"declarer_seat"`
	CallCount    int    `json:"call_count"`
}

// ConventionNotePayload surfaces the authored meaning of the sequence that
// was just reached. Sent privately to the table owner.
type ConventionNotePayload struct {
	Path    []string `json:"path"`
	Label   string   `json:"label"`
	Meaning string   `json:"meaning"`
}
