package bot

import (
	"github.com/Nargog/TheBridgeSystem/internal/domain"
)

// PasserBot passes at every turn. Useful as an inert fourth seat when the
// human only wants to rehearse their own side's sequences.
type PasserBot struct{}

func (b *PasserBot) ChooseCall(auction *domain.Auction, seat domain.Seat) (Move, error) {
	return Move{Pass: true}, nil
}

// SteadyBot keeps the auction moving: it takes the cheapest legal bid until
// the auction reaches its level ceiling, then passes. It never outbids its
// own side, so the human's sequences stay in charge. Deterministic on
// purpose; practice sessions should replay identically.
type SteadyBot struct {
	// MaxLevel is the highest level the bot will bid at. Zero means 2.
	MaxLevel int
}

func (b *SteadyBot) ChooseCall(auction *domain.Auction, seat domain.Seat) (Move, error) {
	ceiling := b.MaxLevel
	if ceiling <= 0 {
		ceiling = 2
	}

	if last, ok := auction.LastBid(); ok {
		if last.Seat == seat || last.Seat == seat.Partner() {
			return Move{Pass: true}, nil
		}
	}

	legal := auction.LegalBids()
	if len(legal) == 0 {
		return Move{Pass: true}, nil
	}
	cheapest := legal[0]
	if cheapest.Level > ceiling {
		return Move{Pass: true}, nil
	}
	return Move{Bid: cheapest}, nil
}
