package domain

import (
	"errors"
	"reflect"
	"testing"
)

// playCalls drives an auction through a sequence of call labels, failing the
// test on any rejection.
func playCalls(t *testing.T, a *Auction, labels ...string) {
	t.Helper()
	for _, label := range labels {
		call, err := ParseCall(label)
		if err != nil {
			t.Fatalf("bad call label %q: %v", label, err)
		}
		if call.IsPass() {
			if _, err := a.Pass(); err != nil {
				t.Fatalf("Pass() after %v: %v", a.CallLabels(), err)
			}
			continue
		}
		if _, err := a.SelectBid(call.Bid); err != nil {
			t.Fatalf("SelectBid(%s) after %v: %v", label, a.CallLabels(), err)
		}
	}
}

func TestAuctionRotationAndSeatAssignment(t *testing.T) {
	a := NewAuction(South, PassoutAfterFour)
	if got := a.CurrentSeat(); got != South {
		t.Fatalf("initial seat = %v, want dealer south", got)
	}

	playCalls(t, a, "1C", "PASS", "1H", "2C")

	wantSeats := []Seat{South, West, North, East}
	calls := a.Calls()
	if len(calls) != len(wantSeats) {
		t.Fatalf("expected %d calls, got %d", len(wantSeats), len(calls))
	}
	for i, rec := range calls {
		if rec.Seat != wantSeats[i] {
			t.Errorf("call %d seat = %v, want %v", i, rec.Seat, wantSeats[i])
		}
	}
	if got := a.CurrentSeat(); got != South {
		t.Errorf("after four calls seat = %v, want south again", got)
	}
}

func TestAuctionRejectsNonOutbiddingBid(t *testing.T) {
	a := NewAuction(South, PassoutAfterFour)
	playCalls(t, a, "1H")

	tests := []struct {
		name string
		bid  Bid
	}{
		{name: "equal bid", bid: Bid{Level: 1, Strain: Hearts}},
		{name: "lower strain", bid: Bid{Level: 1, Strain: Diamonds}},
		{name: "lower level", bid: Bid{Level: 1, Strain: Clubs}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := a.SelectBid(tt.bid); !errors.Is(err, ErrDoesNotOutbid) {
				t.Errorf("SelectBid(%v) err = %v, want ErrDoesNotOutbid", tt.bid, err)
			}
		})
	}

	// A rejected bid must not consume the turn.
	if got := a.CurrentSeat(); got != West {
		t.Errorf("seat after rejections = %v, want west", got)
	}
	if got := len(a.Calls()); got != 1 {
		t.Errorf("call count after rejections = %d, want 1", got)
	}
}

func TestAuctionHighestBidSurvivesPasses(t *testing.T) {
	a := NewAuction(South, PassoutAfterFour)
	playCalls(t, a, "1S", "PASS", "PASS")

	highest, ok := a.HighestBid()
	if !ok {
		t.Fatal("expected a highest bid")
	}
	if highest.Label() != "1S" {
		t.Errorf("highest = %s, want 1S", highest.Label())
	}
	if _, err := a.SelectBid(Bid{Level: 1, Strain: Hearts}); !errors.Is(err, ErrDoesNotOutbid) {
		t.Errorf("1H after passes err = %v, want ErrDoesNotOutbid", err)
	}
	playCalls(t, a, "2H")
}

func TestAuctionTerminatesAfterThreePassesFollowingBid(t *testing.T) {
	a := NewAuction(South, PassoutAfterFour)
	playCalls(t, a, "1NT", "PASS", "PASS")
	if a.Terminated() {
		t.Fatal("terminated after two trailing passes")
	}
	playCalls(t, a, "PASS")
	if !a.Terminated() {
		t.Fatal("expected termination after three trailing passes")
	}

	if _, err := a.SelectBid(Bid{Level: 2, Strain: Clubs}); !errors.Is(err, ErrAuctionTerminated) {
		t.Errorf("SelectBid err = %v, want ErrAuctionTerminated", err)
	}
	if _, err := a.Pass(); !errors.Is(err, ErrAuctionTerminated) {
		t.Errorf("Pass err = %v, want ErrAuctionTerminated", err)
	}
	if got := a.LegalBids(); got != nil {
		t.Errorf("LegalBids after termination = %d bids, want none", len(got))
	}
}

func TestAuctionInterveningBidResetsPassCount(t *testing.T) {
	a := NewAuction(South, PassoutAfterFour)
	playCalls(t, a, "1C", "PASS", "PASS", "2C", "PASS", "PASS")
	if a.Terminated() {
		t.Fatal("terminated too early, the second bid resets the pass run")
	}
	if got := a.ConsecutivePasses(); got != 2 {
		t.Fatalf("trailing passes = %d, want 2", got)
	}
	playCalls(t, a, "PASS")
	if !a.Terminated() {
		t.Fatal("expected termination")
	}
	last, ok := a.LastBid()
	if !ok || last.Call.Label() != "2C" {
		t.Errorf("LastBid = %v ok=%v, want 2C", last, ok)
	}
}

func TestAuctionPassout(t *testing.T) {
	tests := []struct {
		name       string
		rule       PassoutRule
		passes     int
		terminated bool
	}{
		{name: "three passes under four rule stay open", rule: PassoutAfterFour, passes: 3, terminated: false},
		{name: "four passes under four rule close", rule: PassoutAfterFour, passes: 4, terminated: true},
		{name: "three passes under three rule close", rule: PassoutAfterThree, passes: 3, terminated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAuction(West, tt.rule)
			for i := 0; i < tt.passes; i++ {
				if _, err := a.Pass(); err != nil {
					t.Fatalf("pass %d: %v", i+1, err)
				}
			}
			if got := a.Terminated(); got != tt.terminated {
				t.Errorf("Terminated() = %v, want %v", got, tt.terminated)
			}
			if _, ok := a.HighestBid(); ok {
				t.Error("passout should leave no highest bid")
			}
		})
	}
}

func TestAuctionLegalBids(t *testing.T) {
	a := NewAuction(South, PassoutAfterFour)
	if got := len(a.LegalBids()); got != 35 {
		t.Fatalf("fresh auction legal bids = %d, want 35", got)
	}

	playCalls(t, a, "1H")
	legal := a.LegalBids()
	if got := len(legal); got != 32 {
		t.Fatalf("legal bids after 1H = %d, want 32", got)
	}
	if legal[0].Label() != "1S" {
		t.Errorf("cheapest legal bid = %s, want 1S", legal[0].Label())
	}
	for _, b := range legal {
		if !b.Outbids(Bid{Level: 1, Strain: Hearts}) {
			t.Fatalf("%s listed as legal but does not outbid 1H", b.Label())
		}
	}

	playCalls(t, a, "7NT")
	if got := len(a.LegalBids()); got != 0 {
		t.Errorf("legal bids after 7NT = %d, want 0", got)
	}
	// Passing is still how such an auction ends.
	playCalls(t, a, "PASS", "PASS", "PASS")
	if !a.Terminated() {
		t.Error("expected termination after 7NT and three passes")
	}
}

func TestAuctionUndoRestoresState(t *testing.T) {
	a := NewAuction(North, PassoutAfterFour)
	playCalls(t, a, "1D", "1S")

	before := struct {
		labels  []string
		seat    Seat
		highest string
		passes  int
	}{a.CallLabels(), a.CurrentSeat(), "1S", a.ConsecutivePasses()}

	playCalls(t, a, "2C")
	rec, ok := a.UndoLast()
	if !ok {
		t.Fatal("UndoLast reported nothing to undo")
	}
	if rec.Call.Label() != "2C" {
		t.Errorf("undone call = %s, want 2C", rec.Call.Label())
	}

	if got := a.CallLabels(); !reflect.DeepEqual(got, before.labels) {
		t.Errorf("labels = %v, want %v", got, before.labels)
	}
	if got := a.CurrentSeat(); got != before.seat {
		t.Errorf("seat = %v, want %v", got, before.seat)
	}
	highest, hasBid := a.HighestBid()
	if !hasBid || highest.Label() != before.highest {
		t.Errorf("highest = %v hasBid=%v, want %s", highest, hasBid, before.highest)
	}
	if got := a.ConsecutivePasses(); got != before.passes {
		t.Errorf("passes = %d, want %d", got, before.passes)
	}
}

func TestAuctionUndoReopensTerminatedAuction(t *testing.T) {
	a := NewAuction(South, PassoutAfterFour)
	playCalls(t, a, "2NT", "PASS", "PASS", "PASS")
	if !a.Terminated() {
		t.Fatal("expected terminated auction")
	}

	if _, ok := a.UndoLast(); !ok {
		t.Fatal("undo failed")
	}
	if a.Terminated() {
		t.Error("auction should be live again after undoing the closing pass")
	}
	if got := a.CurrentSeat(); got != East {
		t.Errorf("seat = %v, want east back on turn", got)
	}
	if got := a.ConsecutivePasses(); got != 2 {
		t.Errorf("trailing passes = %d, want 2", got)
	}
}

func TestAuctionUndoPastLastBid(t *testing.T) {
	a := NewAuction(South, PassoutAfterFour)
	playCalls(t, a, "1C", "2D")

	a.UndoLast()
	highest, ok := a.HighestBid()
	if !ok || highest.Label() != "1C" {
		t.Fatalf("highest after undo = %v ok=%v, want 1C", highest, ok)
	}

	a.UndoLast()
	if _, ok := a.HighestBid(); ok {
		t.Error("highest bid should be cleared once all bids are undone")
	}
	if got := a.CurrentSeat(); got != South {
		t.Errorf("seat = %v, want dealer south", got)
	}

	if _, ok := a.UndoLast(); ok {
		t.Error("undo on an empty auction should report false")
	}
}

func TestAuctionReset(t *testing.T) {
	a := NewAuction(South, PassoutAfterThree)
	playCalls(t, a, "1C", "PASS", "PASS", "PASS")
	if !a.Terminated() {
		t.Fatal("expected terminated auction")
	}

	a.Reset(West)
	if a.Terminated() {
		t.Error("reset auction should be live")
	}
	if got := a.Dealer(); got != West {
		t.Errorf("dealer = %v, want west", got)
	}
	if got := a.CurrentSeat(); got != West {
		t.Errorf("seat = %v, want west", got)
	}
	if got := len(a.Calls()); got != 0 {
		t.Errorf("calls = %d, want 0", got)
	}
	if got := a.Rule(); got != PassoutAfterThree {
		t.Errorf("rule = %v, want three, reset must retain it", got)
	}
}

func TestAuctionCallsReturnsCopy(t *testing.T) {
	a := NewAuction(South, PassoutAfterFour)
	playCalls(t, a, "1C", "PASS")

	calls := a.Calls()
	calls[0] = CallRecord{Call: PassCall(), Seat: East}

	if got := a.Calls()[0].Call.Label(); got != "1C" {
		t.Errorf("internal history mutated through returned slice, first call = %s", got)
	}
}

func TestParsePassoutRule(t *testing.T) {
	if r, err := ParsePassoutRule("three"); err != nil || r != PassoutAfterThree {
		t.Errorf("ParsePassoutRule(three) = %v, %v", r, err)
	}
	if r, err := ParsePassoutRule("four"); err != nil || r != PassoutAfterFour {
		t.Errorf("ParsePassoutRule(four) = %v, %v", r, err)
	}
	if _, err := ParsePassoutRule("five"); err == nil {
		t.Error("ParsePassoutRule(five) expected error")
	}
}
