package domain

import "fmt"

// Seat is one of the four table positions.
type Seat int

// Seats in fixed rotation order: south acts first after dealing to itself,
// then west, north, east, and back to south.
const (
	South Seat = iota
	West
	North
	East
)

// NumSeats is the number of positions at the table.
const NumSeats = 4

var seatNames = [NumSeats]string{"south", "west", "north", "east"}

// Next returns the seat on turn after s.
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Prev returns the seat on turn before s; inverse of Next.
func (s Seat) Prev() Seat {
	return (s + NumSeats - 1) % NumSeats
}

// Partner returns the seat across the table from s.
func (s Seat) Partner() Seat {
	return (s + 2) % NumSeats
}

// Valid reports whether s is one of the four table positions.
func (s Seat) Valid() bool {
	return s >= South && s <= East
}

func (s Seat) String() string {
	if !s.Valid() {
		return fmt.Sprintf("seat(%d)", int(s))
	}
	return seatNames[s]
}

// ParseSeat maps a seat name ("south", "west", "north", "east") to its Seat.
func ParseSeat(name string) (Seat, error) {
	for i, n := range seatNames {
		if name == n {
			return Seat(i), nil
		}
	}
	return 0, fmt.Errorf("unknown seat %q", name)
}
