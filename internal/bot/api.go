package bot

import (
	"github.com/Nargog/TheBridgeSystem/internal/domain"
)

// Move represents the call decided by a bot: a bid, or a pass.
type Move struct {
	Pass bool
	Bid  domain.Bid
}

// Brain is the interface that all bot strategies must implement. The auction
// is read-only from the strategy's point of view; the match handler applies
// the returned move through the app service.
type Brain interface {
	ChooseCall(auction *domain.Auction, seat domain.Seat) (Move, error)
}
