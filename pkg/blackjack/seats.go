package blackjack

// NumSeats is the number of seats at a table
const NumSeats = 5

// NoSeat is the seat index of a player who hasn't sat down
const NoSeat = -1

// Seat is a single position at the table
type Seat struct {
	PlayerID  string `json:"playerId"`
	HasPlayer bool   `json:"hasPlayer"`
}

// SeatTable maps seat indices to occupants
type SeatTable [NumSeats]Seat

// Assign seats the player at the given position
func (s *SeatTable) Assign(pos int, playerID string) error {
	if pos < 0 || pos >= NumSeats {
		return ErrInvalidSeat
	}

	if s[pos].HasPlayer {
		return ErrSeatTaken
	}

	s[pos] = Seat{PlayerID: playerID, HasPlayer: true}
	return nil
}

// Vacate clears the seat. Vacating an empty or out-of-range seat is a no-op.
func (s *SeatTable) Vacate(pos int) {
	if pos < 0 || pos >= NumSeats {
		return
	}

	s[pos] = Seat{}
}

// OccupantAt returns the occupant of the seat, if any
func (s *SeatTable) OccupantAt(pos int) (string, bool) {
	if pos < 0 || pos >= NumSeats {
		return "", false
	}

	return s[pos].PlayerID, s[pos].HasPlayer
}

// IsOccupied returns true if the seat is occupied
func (s *SeatTable) IsOccupied(pos int) bool {
	_, ok := s.OccupantAt(pos)
	return ok
}

// OccupiedCount returns the number of occupied seats
func (s *SeatTable) OccupiedCount() int {
	count := 0
	for pos := range s {
		if s[pos].HasPlayer {
			count++
		}
	}

	return count
}
