package domain

import "fmt"

// CallKind discriminates the two call variants.
type CallKind int

const (
	// KindBid is a ranked bid call.
	KindBid CallKind = iota
	// KindPass is a pass call.
	KindPass
)

// PassLabel is the canonical label of a pass call.
const PassLabel = "PASS"

// Call is one turn's action: either a ranked bid or a pass. Double and
// redouble are not part of the call vocabulary.
type Call struct {
	Kind CallKind
	Bid  Bid // meaningful only when Kind == KindBid
}

// BidCall wraps a bid as a call.
func BidCall(b Bid) Call {
	return Call{Kind: KindBid, Bid: b}
}

// PassCall returns the pass call.
func PassCall() Call {
	return Call{Kind: KindPass}
}

// IsPass reports whether the call is a pass.
func (c Call) IsPass() bool {
	return c.Kind == KindPass
}

// Label returns the canonical text identity of the call: the bid label, or
// "PASS". Labels are the vocabulary convention trees are keyed by.
func (c Call) Label() string {
	if c.Kind == KindPass {
		return PassLabel
	}
	return c.Bid.Label()
}

// Symbol returns the display form of the call with suit glyphs.
func (c Call) Symbol() string {
	if c.Kind == KindPass {
		return PassLabel
	}
	return c.Bid.Symbol()
}

func (c Call) String() string { return c.Label() }

// ParseCall parses a canonical call label: "PASS" or a bid label.
func ParseCall(label string) (Call, error) {
	if label == PassLabel {
		return PassCall(), nil
	}
	b, err := ParseBid(label)
	if err != nil {
		return Call{}, fmt.Errorf("malformed call label %q", label)
	}
	return BidCall(b), nil
}

// CallRecord attributes a call to the seat that made it.
type CallRecord struct {
	Call Call
	Seat Seat
}
