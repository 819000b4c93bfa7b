package game

import "github.com/lox/holdem-referee/internal/gameapi"

// Blind positions. Heads-up the dealer posts the small blind and acts
// first pre-flop.
func smallBlindSeat(numPlayers int) int {
	if numPlayers > 2 {
		return 1
	}
	return 0
}

func bigBlindSeat(numPlayers int) int {
	if numPlayers > 2 {
		return 2
	}
	return 1
}

func underTheGunSeat(numPlayers int) int {
	if numPlayers == 2 {
		return 0
	}
	return 3 % numPlayers
}

// nextTurnSeat walks clockwise from the acting seat and returns the
// first seat still in hand with chips behind, or -1 when everyone
// left is all-in
func nextTurnSeat(s *Snapshot, seat int, inHand, chips []int) int {
	for i := 1; i < s.NumberOfPlayers; i++ {
		p := (seat + i) % s.NumberOfPlayers
		if containsSeat(inHand, p) && chips[p] > 0 {
			return p
		}
	}
	return -1
}

// roundCloses reports whether the seat's move ends the betting round.
// Bets and raises reopen the action and never close. Otherwise the
// round closes when no seat with chips behind sits between the actor
// and the current better. Pre-flop the big blind keeps the option to
// act even once everyone has merely matched the blind.
func roundCloses(s *Snapshot, seat int, move Move, inHand, chips []int) bool {
	if move == Bet || move == Raise {
		return false
	}

	bb := bigBlindSeat(s.NumberOfPlayers)
	if s.CurrentRound == PreFlop && s.RequiredBet() == BigBlind {
		if seat == bb {
			return true
		}
		if containsSeat(inHand, bb) && chips[bb] > 0 {
			return false
		}
	}

	for i := 1; i < s.NumberOfPlayers; i++ {
		p := (seat + i) % s.NumberOfPlayers
		if p == s.CurrentBetter {
			return true
		}
		if containsSeat(inHand, p) && chips[p] > 0 {
			return false
		}
	}
	return true
}

// firstToActSeat returns the seat opening the next betting round:
// walking clockwise from the small blind, the first seat still in
// hand with chips behind. When every remaining seat is all-in the
// first seat in hand is forced to act anyway.
func firstToActSeat(s *Snapshot, inHand, chips []int) int {
	start := smallBlindSeat(s.NumberOfPlayers)
	for i := 0; i < s.NumberOfPlayers; i++ {
		p := (start + i) % s.NumberOfPlayers
		if containsSeat(inHand, p) && chips[p] > 0 {
			return p
		}
	}
	for i := 0; i < s.NumberOfPlayers; i++ {
		p := (start + i) % s.NumberOfPlayers
		if containsSeat(inHand, p) {
			return p
		}
	}
	return start
}

// boardRevealOps returns the visibility operations revealing the
// community cards dealt at the start of the given round
func boardRevealOps(s *Snapshot, round Round) []gameapi.Operation {
	var slots []int
	switch round {
	case Flop:
		slots = s.Board[0:3]
	case Turn:
		slots = s.Board[3:4]
	case River:
		slots = s.Board[4:5]
	}
	ops := make([]gameapi.Operation, len(slots))
	for i, slot := range slots {
		ops[i] = gameapi.SetVisibility{Key: cardKey(slot)}
	}
	return ops
}

func containsSeat(list []int, seat int) bool {
	for _, s := range list {
		if s == seat {
			return true
		}
	}
	return false
}
