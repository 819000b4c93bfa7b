package game

import (
	"fmt"
	"sort"

	"github.com/lox/holdem-referee/internal/deck"
	"github.com/lox/holdem-referee/internal/evaluator"
)

// settlement is the result of awarding the pots at hand end
type settlement struct {
	// Chips is the per-seat chip count after all awards
	Chips []int

	// Winner is the seat awarded the main pot, lowest seat on a tie
	Winner int
}

// settle awards every pot and returns the final chip counts. With a
// single contestant left there is no showdown and the seat takes
// everything. Otherwise each pot goes to the best hand among its
// eligible contestants, split equally on ties with odd chips to the
// lowest seat. A card needed for the showdown that is not disclosed
// in the state makes settlement impossible.
func settle(s *Snapshot, pots []Pot, remaining, chips []int) (*settlement, error) {
	out := &settlement{Chips: append([]int(nil), chips...)}

	if len(remaining) == 0 {
		return nil, fmt.Errorf("no contestants left to award the pots to")
	}

	if len(remaining) == 1 {
		winner := remaining[0]
		out.Chips[winner] += potTotal(pots)
		out.Winner = winner
		return out, nil
	}

	hands, err := showdownHands(s, remaining)
	if err != nil {
		return nil, err
	}

	for i, pot := range pots {
		if pot.Chips == 0 {
			continue
		}

		eligible := make([]int, 0, len(remaining))
		for _, seat := range remaining {
			if pot.contains(seat) {
				eligible = append(eligible, seat)
			}
		}
		if len(eligible) == 0 {
			eligible = remaining
		}

		winners := bestSeats(hands, eligible)
		share := pot.Chips / len(winners)
		odd := pot.Chips % len(winners)
		for _, seat := range winners {
			out.Chips[seat] += share
		}
		out.Chips[winners[0]] += odd

		if i == 0 {
			out.Winner = winners[0]
		}
	}

	return out, nil
}

// showdownHands evaluates the best 5-card hand of each remaining seat
func showdownHands(s *Snapshot, remaining []int) (map[int]*evaluator.Hand, error) {
	board := make([]deck.Card, 5)
	for i, slot := range s.Board {
		card := s.Cards[slot]
		if card == nil {
			return nil, fmt.Errorf("board card slot %d is not disclosed", slot)
		}
		board[i] = *card
	}

	hands := make(map[int]*evaluator.Hand, len(remaining))
	for _, seat := range remaining {
		hole := make([]deck.Card, 2)
		for i, slot := range s.HoleCards[seat] {
			card := s.Cards[slot]
			if card == nil {
				return nil, fmt.Errorf("hole card slot %d of seat %d is not disclosed", slot, seat)
			}
			hole[i] = *card
		}
		hand, err := evaluator.BestHand(board, hole)
		if err != nil {
			return nil, err
		}
		hands[seat] = hand
	}
	return hands, nil
}

// bestSeats returns the seats holding the strongest hand among the
// eligible ones, in ascending seat order
func bestSeats(hands map[int]*evaluator.Hand, eligible []int) []int {
	var winners []int
	var best evaluator.Ranking
	for _, seat := range eligible {
		ranking := hands[seat].Ranking()
		switch {
		case best == nil || evaluator.Compare(ranking, best) > 0:
			best = ranking
			winners = []int{seat}
		case evaluator.Compare(ranking, best) == 0:
			winners = append(winners, seat)
		}
	}
	sort.Ints(winners)
	return winners
}
