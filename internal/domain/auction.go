package domain

import (
	"errors"
	"fmt"
)

// PassoutRule selects how an auction with no bids terminates. After at least
// one bid, three trailing passes always close the auction; the two rules
// differ only for an all-pass opening.
type PassoutRule int

const (
	// PassoutAfterFour ends a bid-less auction on the fourth pass, the
	// standard "passed out" rule. This is the default.
	PassoutAfterFour PassoutRule = iota
	// PassoutAfterThree ends a bid-less auction on the third pass, applying
	// the three-pass rule uniformly.
	PassoutAfterThree
)

// ParsePassoutRule maps a configuration value ("four" or "three") to a rule.
func ParsePassoutRule(name string) (PassoutRule, error) {
	switch name {
	case "four":
		return PassoutAfterFour, nil
	case "three":
		return PassoutAfterThree, nil
	}
	return 0, fmt.Errorf("unknown passout rule %q", name)
}

func (r PassoutRule) String() string {
	if r == PassoutAfterThree {
		return "three"
	}
	return "four"
}

var (
	// ErrDoesNotOutbid rejects a bid that does not strictly outrank the
	// current highest bid. Recoverable: the caller re-prompts.
	ErrDoesNotOutbid = errors.New("bid does not outbid the current highest bid")
	// ErrAuctionTerminated rejects any call made after termination.
	// Recoverable via Reset.
	ErrAuctionTerminated = errors.New("auction already terminated")
)

// Auction is the in-progress call sequence for one deal: who is on turn,
// what has been called, and whether the auction has closed. It is a plain
// in-memory state machine with no store or tree reference, owned by a single
// session and not safe for concurrent use.
type Auction struct {
	dealer  Seat
	rule    PassoutRule
	calls   []CallRecord
	current Seat
	highest Bid
	hasBid  bool
	passes  int // length of the trailing run of passes
	done    bool
}

// NewAuction returns an auction in its initial state: no calls, the dealer
// on turn, no highest bid.
func NewAuction(dealer Seat, rule PassoutRule) *Auction {
	return &Auction{dealer: dealer, current: dealer, rule: rule}
}

// SelectBid makes a bid call for the seat on turn. The bid must strictly
// outrank the current highest bid, if any.
func (a *Auction) SelectBid(b Bid) (CallRecord, error) {
	if a.done {
		return CallRecord{}, ErrAuctionTerminated
	}
	if a.hasBid && !b.Outbids(a.highest) {
		return CallRecord{}, ErrDoesNotOutbid
	}
	rec := CallRecord{Call: BidCall(b), Seat: a.current}
	a.calls = append(a.calls, rec)
	a.highest = b
	a.hasBid = true
	a.passes = 0
	a.current = a.current.Next()
	return rec, nil
}

// Pass makes a pass call for the seat on turn. Passing is always legal while
// the auction is in progress and never clears the highest bid.
func (a *Auction) Pass() (CallRecord, error) {
	if a.done {
		return CallRecord{}, ErrAuctionTerminated
	}
	rec := CallRecord{Call: PassCall(), Seat: a.current}
	a.calls = append(a.calls, rec)
	a.passes++
	a.current = a.current.Next()
	a.done = a.terminal()
	return rec, nil
}

// terminal applies the pass-termination rule to the current counters.
func (a *Auction) terminal() bool {
	if a.hasBid {
		return a.passes >= 3
	}
	if a.rule == PassoutAfterThree {
		return a.passes >= 3
	}
	return a.passes >= 4
}

// UndoLast removes the most recent call, if any, and reports whether one was
// removed. All derived state is recomputed from the remaining sequence, so a
// terminated auction reverts to in progress.
func (a *Auction) UndoLast() (CallRecord, bool) {
	if len(a.calls) == 0 {
		return CallRecord{}, false
	}
	last := a.calls[len(a.calls)-1]
	a.calls = a.calls[:len(a.calls)-1]
	a.current = a.current.Prev()

	a.passes = 0
	for i := len(a.calls) - 1; i >= 0; i-- {
		if !a.calls[i].Call.IsPass() {
			break
		}
		a.passes++
	}

	a.hasBid = false
	a.highest = Bid{}
	for i := len(a.calls) - 1; i >= 0; i-- {
		if a.calls[i].Call.Kind == KindBid {
			a.highest = a.calls[i].Call.Bid
			a.hasBid = true
			break
		}
	}

	a.done = a.terminal()
	return last, true
}

// LegalBids returns every bid that may be selected right now, in ascending
// rank order: all 35 when no bid has been made, those outranking the highest
// bid otherwise, and none once the auction has terminated.
func (a *Auction) LegalBids() []Bid {
	if a.done {
		return nil
	}
	all := AllBids()
	if !a.hasBid {
		return all
	}
	return all[a.highest.Rank()+1:]
}

// Reset returns the auction to its initial state with the given dealer. The
// passout rule is retained.
func (a *Auction) Reset(newDealer Seat) {
	a.dealer = newDealer
	a.current = newDealer
	a.calls = nil
	a.highest = Bid{}
	a.hasBid = false
	a.passes = 0
	a.done = false
}

// Dealer returns the seat that opened the auction.
func (a *Auction) Dealer() Seat { return a.dealer }

// CurrentSeat returns the seat on turn. Equal to the dealer advanced by one
// step per recorded call.
func (a *Auction) CurrentSeat() Seat { return a.current }

// Rule returns the configured passout rule.
func (a *Auction) Rule() PassoutRule { return a.rule }

// HighestBid returns the most recent bid call, independent of intervening
// passes, and whether any bid has been made.
func (a *Auction) HighestBid() (Bid, bool) { return a.highest, a.hasBid }

// ConsecutivePasses returns the length of the trailing run of passes.
func (a *Auction) ConsecutivePasses() int { return a.passes }

// Terminated reports whether the auction has closed.
func (a *Auction) Terminated() bool { return a.done }

// Calls returns a copy of the call history in temporal order.
func (a *Auction) Calls() []CallRecord {
	out := make([]CallRecord, len(a.calls))
	copy(out, a.calls)
	return out
}

// CallLabels returns the canonical labels of the call history in temporal
// order: the path a convention tree is keyed by.
func (a *Auction) CallLabels() []string {
	labels := make([]string, len(a.calls))
	for i, rec := range a.calls {
		labels[i] = rec.Call.Label()
	}
	return labels
}

// LastBid returns the most recent bid-variant call record. ok is false when
// the auction holds no bids, i.e. it is heading for (or ended in) a passout.
func (a *Auction) LastBid() (CallRecord, bool) {
	for i := len(a.calls) - 1; i >= 0; i-- {
		if a.calls[i].Call.Kind == KindBid {
			return a.calls[i], true
		}
	}
	return CallRecord{}, false
}
