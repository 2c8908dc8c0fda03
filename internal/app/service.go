package app

import (
	"context"
	"errors"

	"github.com/Nargog/TheBridgeSystem/internal/convention"
	"github.com/Nargog/TheBridgeSystem/internal/domain"
)

// Recorder materializes the convention node for a call path after every
// successful call. The auction engine itself never sees it; the service is
// the seam between the two.
type Recorder interface {
	Record(ctx context.Context, userID string, path []string) (convention.Record, error)
}

// Service contains bridge-table use-cases operating on the auction engine.
type Service struct {
	recorder Recorder
}

// NewService constructs a Service. recorder may be nil, in which case call
// paths are not recorded.
func NewService(recorder Recorder) *Service {
	return &Service{recorder: recorder}
}

var (
	ErrNotYourTurn     = errors.New("actor is not the seat on turn")
	ErrTooFewPlayers   = errors.New("not enough players to start")
	ErrNoActiveAuction = errors.New("no auction in progress")
)

// StartAuction builds a fresh auction for the occupied table.
// seats holds user IDs in seat order, empty strings for empty seats.
func (s *Service) StartAuction(seats []string, dealer domain.Seat, rule domain.PassoutRule) (*domain.Auction, []Event, error) {
	occupied := 0
	for _, userID := range seats {
		if userID != "" {
			occupied++
		}
	}
	if occupied < MinPlayersToStartAuction {
		return nil, nil, ErrTooFewPlayers
	}

	auction := domain.NewAuction(dealer, rule)
	events := []Event{{
		Kind: EventAuctionStarted,
		Payload: AuctionStartedPayload{
			Dealer:      int(dealer),
			PassoutRule: rule.String(),
		},
	}}
	return auction, events, nil
}

// SelectBid makes a bid call for the given actor and emits resulting events.
// ownerID is the table owner whose convention tree records the sequence; an
// empty ownerID skips recording.
func (s *Service) SelectBid(ctx context.Context, ownerID string, auction *domain.Auction, actor domain.Seat, b domain.Bid) ([]Event, error) {
	if auction == nil {
		return nil, ErrNoActiveAuction
	}
	if auction.CurrentSeat() != actor {
		return nil, ErrNotYourTurn
	}

	rec, err := auction.SelectBid(b)
	if err != nil {
		return nil, err
	}
	return s.afterCall(ctx, ownerID, auction, rec), nil
}

// Pass makes a pass call for the given actor and emits resulting events.
func (s *Service) Pass(ctx context.Context, ownerID string, auction *domain.Auction, actor domain.Seat) ([]Event, error) {
	if auction == nil {
		return nil, ErrNoActiveAuction
	}
	if auction.CurrentSeat() != actor {
		return nil, ErrNotYourTurn
	}

	rec, err := auction.Pass()
	if err != nil {
		return nil, err
	}
	return s.afterCall(ctx, ownerID, auction, rec), nil
}

// Undo retracts the most recent call. The match handler restricts this to the
// table owner; the service only cares that an auction exists.
func (s *Service) Undo(auction *domain.Auction) ([]Event, error) {
	if auction == nil {
		return nil, ErrNoActiveAuction
	}
	rec, ok := auction.UndoLast()
	if !ok {
		return nil, nil
	}
	return []Event{{
		Kind: EventCallRetracted,
		Payload: CallRetractedPayload{
			Seat:     int(rec.Seat),
			Call:     rec.Call.Label(),
			NextSeat: int(auction.CurrentSeat()),
		},
	}}, nil
}

// afterCall assembles the events following a successful call: the broadcast
// call event, a private convention note when the reached node has an authored
// meaning, and the end-of-auction event on termination.
func (s *Service) afterCall(ctx context.Context, ownerID string, auction *domain.Auction, rec domain.CallRecord) []Event {
	events := []Event{{
		Kind: EventCallMade,
		Payload: CallMadePayload{
			Seat:     int(rec.Seat),
			Call:     rec.Call.Label(),
			NextSeat: int(auction.CurrentSeat()),
		},
	}}

	if s.recorder != nil && ownerID != "" {
		path := auction.CallLabels()
		if node, err := s.recorder.Record(ctx, ownerID, path); err == nil && node.Meaning != "" {
			events = append(events, Event{
				Kind: EventConventionNote,
				Payload: ConventionNotePayload{
					Path:    path,
					Label:   node.Label,
					Meaning: node.Meaning,
				},
				Recipients: []string{ownerID},
			})
		}
	}

	if auction.Terminated() {
		payload := AuctionEndedPayload{
			PassedOut:    true,
			DeclarerSeat: -1,
			CallCount:    len(auction.Calls()),
		}
		if last, ok := auction.LastBid(); ok {
			payload.PassedOut = false
			payload.Contract = last.Call.Label()
			payload.DeclarerSeat = int(last.Seat)
		}
		events = append(events, Event{Kind: EventAuctionEnded, Payload: payload})
	}

	return events
}
