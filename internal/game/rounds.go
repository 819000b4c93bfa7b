package game

import "fmt"

// Round represents a betting round. Rounds only ever advance;
// Showdown is terminal.
type Round int

const (
	PreFlop Round = iota
	Flop
	Turn
	River
	Showdown
)

var roundNames = [...]string{"PRE_FLOP", "FLOP", "TURN", "RIVER", "SHOWDOWN"}

func (r Round) String() string {
	if r < PreFlop || r > Showdown {
		return "INVALID"
	}
	return roundNames[r]
}

// Next returns the round that follows r
func (r Round) Next() (Round, error) {
	if r >= Showdown {
		return r, fmt.Errorf("no round after %s", r)
	}
	return r + 1, nil
}

// ParseRound parses the wire name of a round
func ParseRound(s string) (Round, error) {
	for i, name := range roundNames {
		if name == s {
			return Round(i), nil
		}
	}
	return 0, fmt.Errorf("invalid round %q", s)
}

// Move represents a player move kind
type Move int

const (
	Fold Move = iota
	Check
	Call
	Bet
	Raise
)

var moveNames = [...]string{"FOLD", "CHECK", "CALL", "BET", "RAISE"}

func (m Move) String() string {
	if m < Fold || m > Raise {
		return "INVALID"
	}
	return moveNames[m]
}

// ParseMove parses the wire name of a move
func ParseMove(s string) (Move, error) {
	for i, name := range moveNames {
		if name == s {
			return Move(i), nil
		}
	}
	return 0, fmt.Errorf("invalid move %q", s)
}
