package bot

import (
	"github.com/Nargog/TheBridgeSystem/internal/domain"
)

// Agent represents an autonomous practice partner occupying a seat.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Act asks the agent to choose its call for the seat it occupies. A nil or
// terminated auction yields a pass, which the caller should treat as "nothing
// to do" rather than submit.
func (a *Agent) Act(auction *domain.Auction, seat domain.Seat) (Move, error) {
	if auction == nil || auction.Terminated() {
		return Move{Pass: true}, nil
	}
	move, err := a.Strategy.ChooseCall(auction, seat)
	if err != nil {
		return Move{Pass: true}, err
	}
	return move, nil
}
