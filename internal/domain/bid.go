package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Strain is the denomination of a bid: one of the four suits or notrump.
type Strain int

// Strains in ascending bid order. Clubs is the cheapest, notrump the dearest.
const (
	Clubs Strain = iota
	Diamonds
	Hearts
	Spades
	NoTrump
)

const numStrains = 5

var strainLabels = [numStrains]string{"C", "D", "H", "S", "NT"}
var strainSymbols = [numStrains]string{"♣", "♦", "♥", "♠", "NT"}

// Label returns the canonical text form of the strain ("C", "D", "H", "S", "NT").
func (s Strain) Label() string {
	if s < Clubs || s > NoTrump {
		return "?"
	}
	return strainLabels[s]
}

// Symbol returns the display form of the strain with suit glyphs.
func (s Strain) Symbol() string {
	if s < Clubs || s > NoTrump {
		return "?"
	}
	return strainSymbols[s]
}

func (s Strain) String() string { return s.Label() }

// Bid is a level (1..7) and strain pairing. Bids are immutable values,
// totally ordered by Rank; two bids are equal iff level and strain match.
type Bid struct {
	Level  int
	Strain Strain
}

// Rank maps the bid onto [0,34]: level-major, then strain order. Higher rank
// outbids lower, and the mapping is a bijection over the 35 legal bids.
func (b Bid) Rank() int {
	return (b.Level-1)*numStrains + int(b.Strain)
}

// Outbids reports whether b strictly outranks other.
func (b Bid) Outbids(other Bid) bool {
	return b.Rank() > other.Rank()
}

// Label returns the canonical text form, e.g. "1C" or "7NT".
func (b Bid) Label() string {
	return strconv.Itoa(b.Level) + b.Strain.Label()
}

// Symbol returns the display form with suit glyphs, e.g. "1♣".
func (b Bid) Symbol() string {
	return strconv.Itoa(b.Level) + b.Strain.Symbol()
}

func (b Bid) String() string { return b.Label() }

// AllBids enumerates the 35 bids in ascending rank order: 1C, 1D, ... 7NT.
// The slice is freshly allocated on every call.
func AllBids() []Bid {
	bids := make([]Bid, 0, 7*numStrains)
	for level := 1; level <= 7; level++ {
		for strain := Clubs; strain <= NoTrump; strain++ {
			bids = append(bids, Bid{Level: level, Strain: strain})
		}
	}
	return bids
}

// ParseBid parses a canonical bid label such as "2NT" or "7S".
func ParseBid(label string) (Bid, error) {
	if len(label) < 2 {
		return Bid{}, fmt.Errorf("malformed bid label %q", label)
	}
	level, err := strconv.Atoi(label[:1])
	if err != nil || level < 1 || level > 7 {
		return Bid{}, fmt.Errorf("bid level out of range in %q", label)
	}
	suffix := strings.ToUpper(label[1:])
	for s, l := range strainLabels {
		if suffix == l {
			return Bid{Level: level, Strain: Strain(s)}, nil
		}
	}
	return Bid{}, fmt.Errorf("unknown strain in bid label %q", label)
}
