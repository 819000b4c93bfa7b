package evaluator

import (
	"fmt"

	"github.com/lox/holdem-referee/internal/deck"
)

// BestHand finds the strongest 5-card hand among the C(7,5)=21
// combinations of the 5 board cards and 2 hole cards
func BestHand(board, holeCards []deck.Card) (*Hand, error) {
	if len(board) != 5 {
		return nil, fmt.Errorf("expected 5 board cards, got %d", len(board))
	}
	if len(holeCards) != 2 {
		return nil, fmt.Errorf("expected 2 hole cards, got %d", len(holeCards))
	}

	cards := make([]deck.Card, 0, 7)
	cards = append(cards, board...)
	cards = append(cards, holeCards...)

	var best *Hand
	pick := make([]deck.Card, 0, 5)

	var combine func(start int) error
	combine = func(start int) error {
		if len(pick) == 5 {
			hand, err := NewHand(pick)
			if err != nil {
				return err
			}
			if best == nil || hand.BetterThan(best) {
				best = hand
			}
			return nil
		}
		for i := start; i < len(cards); i++ {
			pick = append(pick, cards[i])
			if err := combine(i + 1); err != nil {
				return err
			}
			pick = pick[:len(pick)-1]
		}
		return nil
	}

	if err := combine(0); err != nil {
		return nil, err
	}
	return best, nil
}
