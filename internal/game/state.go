// Package game is the Texas Hold'em rule engine: it reconstructs the
// canonical operation sequence a move was required to produce from the
// previous public state, and verifies client claims against it.
package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/holdem-referee/internal/deck"
)

// Table stakes. Blinds are fixed for a table and posted in the
// initial deal.
const (
	SmallBlind = 100
	BigBlind   = 200
)

// Seat bounds for a hand
const (
	MinPlayers = 2
	MaxPlayers = 9
)

// Pot is a chip accumulator. A side pot arises when an all-in caps
// further contention among a subset of seats.
type Pot struct {
	// Chips is the total settled into this pot, including the
	// current round's contributions
	Chips int

	// CurrentPotBet is the amount each contesting seat must match in
	// this pot this round
	CurrentPotBet int

	// PlayersInPot are the seats still eligible to win this pot
	PlayersInPot []int

	// PlayerBets is the per-seat contribution ledger within this pot
	// for the current round
	PlayerBets []int
}

// clone returns a deep copy of the pot
func (p Pot) clone() Pot {
	out := Pot{Chips: p.Chips, CurrentPotBet: p.CurrentPotBet}
	out.PlayersInPot = append([]int(nil), p.PlayersInPot...)
	out.PlayerBets = append([]int(nil), p.PlayerBets...)
	return out
}

// contains reports whether the seat is eligible for the pot
func (p Pot) contains(seat int) bool {
	for _, s := range p.PlayersInPot {
		if s == seat {
			return true
		}
	}
	return false
}

// Snapshot is the in-memory form of the public table state,
// reconstructed fresh per verification call and never mutated in place
type Snapshot struct {
	PreviousMove      Move
	PreviousMoveAllIn bool
	NumberOfPlayers   int
	WhoseMove         int
	CurrentBetter     int
	CurrentRound      Round

	// Cards holds the value of each of the 52 card slots, or nil
	// where the slot is not visible to the verifier
	Cards [deck.Size]*deck.Card

	// Board holds the 5 card slot indices of the community cards
	Board []int

	// PlayersInHand is the ordered set of seats still contesting the
	// pot
	PlayersInHand []int

	// HoleCards holds the 2 card slot indices dealt to each seat
	HoleCards [][]int

	PlayerBets  []int
	PlayerChips []int
	Pots        []Pot
}

// InHand reports whether the seat is still contesting the pot
func (s *Snapshot) InHand(seat int) bool {
	for _, p := range s.PlayersInHand {
		if p == seat {
			return true
		}
	}
	return false
}

// RequiredBet returns the total amount a seat with no prior
// commitment must match this round, summed across all pots
func (s *Snapshot) RequiredBet() int {
	total := 0
	for _, pot := range s.Pots {
		total += pot.CurrentPotBet
	}
	return total
}

// seatName returns the wire name of a seat, e.g. "P3"
func seatName(seat int) string {
	return "P" + strconv.Itoa(seat)
}

// parseSeat parses the wire name of a seat
func parseSeat(s string) (int, error) {
	rest, ok := strings.CutPrefix(s, "P")
	if !ok {
		return 0, fmt.Errorf("invalid seat %q", s)
	}
	seat, err := strconv.Atoi(rest)
	if err != nil || seat < 0 || seat >= MaxPlayers {
		return 0, fmt.Errorf("invalid seat %q", s)
	}
	return seat, nil
}

// cardKey returns the state key of a card slot, e.g. "C12"
func cardKey(slot int) string {
	return "C" + strconv.Itoa(slot)
}

// zeros returns a fresh all-zero chip list of the given size
func zeros(n int) []int {
	return make([]int, n)
}

// removeSeat returns a copy of the seat list without the given seat
func removeSeat(list []int, seat int) []int {
	out := make([]int, 0, len(list))
	for _, s := range list {
		if s != seat {
			out = append(out, s)
		}
	}
	return out
}
