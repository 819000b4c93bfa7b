// Package evaluator scores 5-card poker hands into totally ordered
// ranking tuples and finds the best 5-card hand from a board and hole
// cards.
package evaluator

import (
	"fmt"
	"sort"

	"github.com/lox/holdem-referee/internal/deck"
)

// Hand categories, the first element of a ranking tuple
const (
	HighCard = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Ranking is an ordered tuple describing the strength of a 5-card
// hand. Tuples are compared lexicographically, higher wins. The first
// element is the hand category; the rest are rank values (Two=2
// through Ace=14, except the wheel where the Ace ranks low).
type Ranking []int

// Compare returns -1 if r is weaker than other, 0 if equal,
// 1 if stronger.
func Compare(r, other Ranking) int {
	for i := 0; i < len(r) && i < len(other); i++ {
		if r[i] < other[i] {
			return -1
		}
		if r[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Hand is an immutable 5-card poker hand
type Hand struct {
	cards   [5]deck.Card
	values  [5]int // rank values sorted descending, wheel adjusted
	ranking Ranking
}

// NewHand creates a hand from exactly 5 cards
func NewHand(cards []deck.Card) (*Hand, error) {
	if len(cards) != 5 {
		return nil, fmt.Errorf("expected 5 cards, got %d", len(cards))
	}

	h := &Hand{}
	copy(h.cards[:], cards)
	for i, c := range cards {
		h.values[i] = c.Value()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(h.values[:])))

	// The wheel (A-2-3-4-5) ranks the ace low
	if h.values == [5]int{14, 5, 4, 3, 2} {
		h.values = [5]int{5, 4, 3, 2, 1}
	}

	h.ranking = h.calculateRanking()
	return h, nil
}

// Cards returns the cards of the hand
func (h *Hand) Cards() []deck.Card {
	return h.cards[:]
}

// Ranking returns the ordered ranking tuple of the hand
func (h *Hand) Ranking() Ranking {
	return h.ranking
}

// BetterThan reports whether h is at least as strong as other.
// Equal hands are not worse than each other, so ties return true.
func (h *Hand) BetterThan(other *Hand) bool {
	return Compare(h.ranking, other.ranking) >= 0
}

func (h *Hand) String() string {
	s := "["
	for i, c := range h.cards {
		if i > 0 {
			s += ", "
		}
		s += c.String()
	}
	return s + "]"
}

func (h *Hand) calculateRanking() Ranking {
	straight := h.straight()
	flush := h.flush()

	switch {
	case straight && flush:
		return Ranking{StraightFlush, h.values[0]}
	case h.kind(4) != 0:
		return Ranking{FourOfAKind, h.kind(4), h.kind(1)}
	case h.kind(3) != 0 && h.kind(2) != 0:
		return Ranking{FullHouse, h.kind(3), h.kind(2)}
	case flush:
		return append(Ranking{Flush}, h.values[:]...)
	case straight:
		return Ranking{Straight, h.values[0]}
	case h.kind(3) != 0:
		return append(Ranking{ThreeOfAKind, h.kind(3)}, h.values[:]...)
	default:
		if high, low, ok := h.twoPair(); ok {
			return append(Ranking{TwoPair, high, low}, h.values[:]...)
		}
		if pair := h.kind(2); pair != 0 {
			return append(Ranking{OnePair, pair}, h.values[:]...)
		}
		return append(Ranking{HighCard}, h.values[:]...)
	}
}

func (h *Hand) flush() bool {
	for i := 0; i < 4; i++ {
		if h.cards[i].Suit != h.cards[i+1].Suit {
			return false
		}
	}
	return true
}

func (h *Hand) straight() bool {
	for i := 0; i < 4; i++ {
		if h.values[i]-h.values[i+1] != 1 {
			return false
		}
	}
	return true
}

// kind returns the highest rank value occurring exactly n times,
// or 0 if there is none
func (h *Hand) kind(n int) int {
	for i := 0; i < 5; i++ {
		count := 0
		for j := 0; j < 5; j++ {
			if h.values[j] == h.values[i] {
				count++
			}
		}
		if count == n {
			return h.values[i]
		}
	}
	return 0
}

// twoPair returns the high and low pair ranks if the hand holds two
// distinct pairs
func (h *Hand) twoPair() (high, low int, ok bool) {
	high = h.kind(2)
	if high == 0 {
		return 0, 0, false
	}
	for i := 4; i >= 0; i-- {
		v := h.values[i]
		if v == high {
			continue
		}
		count := 0
		for j := 0; j < 5; j++ {
			if h.values[j] == v {
				count++
			}
		}
		if count == 2 {
			return high, v, true
		}
	}
	return 0, 0, false
}
