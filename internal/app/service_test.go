package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Nargog/TheBridgeSystem/internal/convention"
	"github.com/Nargog/TheBridgeSystem/internal/domain"
)

// recordingRecorder captures Record calls and serves canned meanings by path.
type recordingRecorder struct {
	calls    [][]string
	meanings map[string]string
	err      error
}

func (r *recordingRecorder) Record(ctx context.Context, userID string, path []string) (convention.Record, error) {
	r.calls = append(r.calls, append([]string(nil), path...))
	if r.err != nil {
		return convention.Record{}, r.err
	}
	label := path[len(path)-1]
	return convention.Record{
		ID:      "node-" + strings.Join(path, "/"),
		Label:   label,
		Meaning: r.meanings[strings.Join(path, "/")],
	}, nil
}

func mustBid(t *testing.T, label string) domain.Bid {
	t.Helper()
	b, err := domain.ParseBid(label)
	if err != nil {
		t.Fatalf("ParseBid(%q): %v", label, err)
	}
	return b
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestStartAuction_RequiresOccupiedSeat(t *testing.T) {
	service := NewService(nil)

	if _, _, err := service.StartAuction([]string{"", "", "", ""}, domain.South, domain.PassoutAfterFour); !errors.Is(err, ErrTooFewPlayers) {
		t.Fatalf("Expected ErrTooFewPlayers, got %v", err)
	}

	auction, events, err := service.StartAuction([]string{"user-1", "", "", ""}, domain.West, domain.PassoutAfterFour)
	if err != nil {
		t.Fatalf("StartAuction returned error: %v", err)
	}
	if auction.Dealer() != domain.West {
		t.Fatalf("Dealer = %v, want west", auction.Dealer())
	}
	if len(events) != 1 || events[0].Kind != EventAuctionStarted {
		t.Fatalf("Expected one auction_started event, got %v", kinds(events))
	}
	payload := events[0].Payload.(AuctionStartedPayload)
	if payload.Dealer != int(domain.West) || payload.PassoutRule != "four" {
		t.Fatalf("Unexpected payload %+v", payload)
	}
}

func TestSelectBid_EnforcesTurnOrder(t *testing.T) {
	service := NewService(nil)
	auction := domain.NewAuction(domain.South, domain.PassoutAfterFour)

	if _, err := service.SelectBid(context.Background(), "", auction, domain.North, mustBid(t, "1C")); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("Expected ErrNotYourTurn, got %v", err)
	}

	events, err := service.SelectBid(context.Background(), "", auction, domain.South, mustBid(t, "1C"))
	if err != nil {
		t.Fatalf("SelectBid returned error: %v", err)
	}
	if len(events) != 1 || events[0].Kind != EventCallMade {
		t.Fatalf("Expected one call_made event, got %v", kinds(events))
	}
	payload := events[0].Payload.(CallMadePayload)
	if payload.Seat != int(domain.South) || payload.Call != "1C" || payload.NextSeat != int(domain.West) {
		t.Fatalf("Unexpected payload %+v", payload)
	}
}

func TestSelectBid_RejectsInsufficientBid(t *testing.T) {
	service := NewService(nil)
	auction := domain.NewAuction(domain.South, domain.PassoutAfterFour)

	if _, err := service.SelectBid(context.Background(), "", auction, domain.South, mustBid(t, "1C")); err != nil {
		t.Fatalf("SelectBid returned error: %v", err)
	}
	if _, err := service.SelectBid(context.Background(), "", auction, domain.West, mustBid(t, "1C")); !errors.Is(err, domain.ErrDoesNotOutbid) {
		t.Fatalf("Expected ErrDoesNotOutbid, got %v", err)
	}
}

func TestSelectBid_RecordsPathAndEmitsNote(t *testing.T) {
	recorder := &recordingRecorder{meanings: map[string]string{
		"1C": "12+ hp, 3+ clubs",
	}}
	service := NewService(recorder)
	auction := domain.NewAuction(domain.South, domain.PassoutAfterFour)

	events, err := service.SelectBid(context.Background(), "owner-1", auction, domain.South, mustBid(t, "1C"))
	if err != nil {
		t.Fatalf("SelectBid returned error: %v", err)
	}

	if len(recorder.calls) != 1 || strings.Join(recorder.calls[0], "/") != "1C" {
		t.Fatalf("Expected recorded path [1C], got %v", recorder.calls)
	}

	if len(events) != 2 || events[1].Kind != EventConventionNote {
		t.Fatalf("Expected convention_note event, got %v", kinds(events))
	}
	note := events[1].Payload.(ConventionNotePayload)
	if note.Meaning != "12+ hp, 3+ clubs" {
		t.Fatalf("Note meaning = %q", note.Meaning)
	}
	if len(events[1].Recipients) != 1 || events[1].Recipients[0] != "owner-1" {
		t.Fatalf("Note recipients = %v, want [owner-1]", events[1].Recipients)
	}
}

func TestSelectBid_NoOwnerSkipsRecording(t *testing.T) {
	recorder := &recordingRecorder{}
	service := NewService(recorder)
	auction := domain.NewAuction(domain.South, domain.PassoutAfterFour)

	if _, err := service.SelectBid(context.Background(), "", auction, domain.South, mustBid(t, "1C")); err != nil {
		t.Fatalf("SelectBid returned error: %v", err)
	}
	if len(recorder.calls) != 0 {
		t.Fatalf("Expected no Record calls, got %d", len(recorder.calls))
	}
}

func TestSelectBid_RecorderFailureStillEmitsCall(t *testing.T) {
	recorder := &recordingRecorder{err: errors.New("storage down")}
	service := NewService(recorder)
	auction := domain.NewAuction(domain.South, domain.PassoutAfterFour)

	events, err := service.SelectBid(context.Background(), "owner-1", auction, domain.South, mustBid(t, "1C"))
	if err != nil {
		t.Fatalf("SelectBid returned error: %v", err)
	}
	if len(events) != 1 || events[0].Kind != EventCallMade {
		t.Fatalf("Expected only call_made, got %v", kinds(events))
	}
}

func TestPass_ThreePassesAfterBidEndAuction(t *testing.T) {
	service := NewService(nil)
	auction := domain.NewAuction(domain.South, domain.PassoutAfterFour)
	ctx := context.Background()

	if _, err := service.SelectBid(ctx, "", auction, domain.South, mustBid(t, "1C")); err != nil {
		t.Fatalf("SelectBid: %v", err)
	}
	for _, seat := range []domain.Seat{domain.West, domain.North} {
		if _, err := service.Pass(ctx, "", auction, seat); err != nil {
			t.Fatalf("Pass(%v): %v", seat, err)
		}
	}

	events, err := service.Pass(ctx, "", auction, domain.East)
	if err != nil {
		t.Fatalf("Pass returned error: %v", err)
	}
	if len(events) != 2 || events[1].Kind != EventAuctionEnded {
		t.Fatalf("Expected auction_ended event, got %v", kinds(events))
	}
	payload := events[1].Payload.(AuctionEndedPayload)
	if payload.PassedOut || payload.Contract != "1C" || payload.DeclarerSeat != int(domain.South) || payload.CallCount != 4 {
		t.Fatalf("Unexpected payload %+v", payload)
	}
}

func TestPass_PassedOutAuction(t *testing.T) {
	service := NewService(nil)
	auction := domain.NewAuction(domain.South, domain.PassoutAfterFour)
	ctx := context.Background()

	var events []Event
	for _, seat := range []domain.Seat{domain.South, domain.West, domain.North, domain.East} {
		var err error
		events, err = service.Pass(ctx, "", auction, seat)
		if err != nil {
			t.Fatalf("Pass(%v): %v", seat, err)
		}
	}

	if len(events) != 2 || events[1].Kind != EventAuctionEnded {
		t.Fatalf("Expected auction_ended after fourth pass, got %v", kinds(events))
	}
	payload := events[1].Payload.(AuctionEndedPayload)
	if !payload.PassedOut || payload.Contract != "" || payload.DeclarerSeat != -1 {
		t.Fatalf("Unexpected payload %+v", payload)
	}
}

func TestUndo_EmitsRetractionAndReopens(t *testing.T) {
	service := NewService(nil)
	auction := domain.NewAuction(domain.South, domain.PassoutAfterFour)
	ctx := context.Background()

	if _, err := service.SelectBid(ctx, "", auction, domain.South, mustBid(t, "1C")); err != nil {
		t.Fatalf("SelectBid: %v", err)
	}

	events, err := service.Undo(auction)
	if err != nil {
		t.Fatalf("Undo returned error: %v", err)
	}
	if len(events) != 1 || events[0].Kind != EventCallRetracted {
		t.Fatalf("Expected call_retracted, got %v", kinds(events))
	}
	payload := events[0].Payload.(CallRetractedPayload)
	if payload.Seat != int(domain.South) || payload.Call != "1C" || payload.NextSeat != int(domain.South) {
		t.Fatalf("Unexpected payload %+v", payload)
	}

	// Undoing an empty auction is a quiet no-op.
	events, err = service.Undo(auction)
	if err != nil || len(events) != 0 {
		t.Fatalf("Expected no events on empty undo, got %v, %v", events, err)
	}
}

func TestService_NilAuction(t *testing.T) {
	service := NewService(nil)
	ctx := context.Background()

	if _, err := service.SelectBid(ctx, "", nil, domain.South, mustBid(t, "1C")); !errors.Is(err, ErrNoActiveAuction) {
		t.Fatalf("Expected ErrNoActiveAuction, got %v", err)
	}
	if _, err := service.Pass(ctx, "", nil, domain.South); !errors.Is(err, ErrNoActiveAuction) {
		t.Fatalf("Expected ErrNoActiveAuction, got %v", err)
	}
	if _, err := service.Undo(nil); !errors.Is(err, ErrNoActiveAuction) {
		t.Fatalf("Expected ErrNoActiveAuction, got %v", err)
	}
}
